// Package palette resolves textual color literals to sRGB values and
// provides a reference conversion for cross-checking.
package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"

	"github.com/mmuldo/cowor/colorspace"
)

// ErrUnknownColor is returned by Parse for input that is neither a hex
// literal, a color name nor an r,g,b triple.
var ErrUnknownColor = errors.New("unknown color")

// Lookup returns the SVG 1.1 / CSS color with the given name, ignoring case.
func Lookup(name string) (colorspace.SRGB, bool) {
	c, ok := colornames.Map[cases.Fold().String(strings.TrimSpace(name))]
	if !ok {
		return colorspace.SRGB{}, false
	}
	return colorspace.NewSRGB(c.R, c.G, c.B), true
}

// Names returns every name Lookup accepts, sorted.
func Names() []string {
	return colornames.Names
}

// Parse resolves s to an sRGB color. Accepted forms:
//
//	#rgb, #rrggbb    hex literal, the # is optional
//	navy             a color name, see Lookup
//	20,33,61         8-bit channels
func Parse(s string) (colorspace.SRGB, error) {
	s = strings.TrimSpace(s)
	if c, ok := Lookup(s); ok {
		return c, nil
	}
	if strings.Contains(s, ",") {
		return parseTriple(s)
	}
	if c, err := parseHex(s); err == nil {
		return c, nil
	}
	return colorspace.SRGB{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

func parseHex(s string) (colorspace.SRGB, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return colorspace.SRGB{}, fmt.Errorf("hex color %q: want 3 or 6 digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return colorspace.SRGB{}, fmt.Errorf("hex color %q: %w", s, err)
	}
	return colorspace.NewSRGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func parseTriple(s string) (colorspace.SRGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return colorspace.SRGB{}, fmt.Errorf("%w: %q has %d channels, want 3", ErrUnknownColor, s, len(parts))
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return colorspace.SRGB{}, fmt.Errorf("channel %q: %w", p, err)
		}
		ch[i] = uint8(v)
	}
	return colorspace.SRGBFromBytes(ch), nil
}
