// Package render presents converted colors as text, JSON or YAML.
package render

import (
	"github.com/mmuldo/cowor/colorspace"
)

// Report describes one input color in one or more color spaces.
type Report struct {
	Input  string  `json:"input" yaml:"input"`
	Hex    string  `json:"hex,omitempty" yaml:"hex,omitempty"`
	Spaces []Entry `json:"spaces" yaml:"spaces"`
}

// Entry is a color in a single space.
type Entry struct {
	Space      string      `json:"space" yaml:"space"`
	Components []Component `json:"components" yaml:"components"`
}

// Component is one named coordinate of an Entry.
type Component struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// Describe reports c in every supported space.
func Describe(input string, c colorspace.SRGB, degrees bool) Report {
	r := Report{
		Input: input,
		Hex:   c.Hex(),
		Spaces: []Entry{
			SRGBEntry(c),
			XYZEntry(c.XYZ()),
			LabEntry(c.Lab()),
			LChEntry(c.LCh(), degrees),
		},
	}
	setDefaults(&r)
	return r
}

// SRGBEntry reports the 8-bit channels of c.
func SRGBEntry(c colorspace.SRGB) Entry {
	return Entry{Space: "srgb", Components: []Component{
		{"r", float64(c.Red8())},
		{"g", float64(c.Green8())},
		{"b", float64(c.Blue8())},
	}}
}

// XYZEntry reports c.
func XYZEntry(c colorspace.XYZ) Entry {
	return Entry{Space: "xyz", Components: []Component{
		{"x", c.X()},
		{"y", c.Y()},
		{"z", c.Z()},
	}}
}

// LabEntry reports c.
func LabEntry(c colorspace.Lab) Entry {
	return Entry{Space: "lab", Components: []Component{
		{"l", c.Lightness()},
		{"a", c.A()},
		{"b", c.B()},
	}}
}

// LChEntry reports c, with the hue in degrees when degrees is set and in
// radians otherwise.
func LChEntry(c colorspace.LCh, degrees bool) Entry {
	h := c.Hue()
	if degrees {
		h = c.HueDegrees()
	}
	return Entry{Space: "lch", Components: []Component{
		{"l", c.Lightness()},
		{"c", c.Chroma()},
		{"h", h},
	}}
}

func setDefaults(r *Report) {
	if r.Input == "" {
		r.Input = r.Hex
	}
}
