package colorspace

import (
	"fmt"
	"math"
)

// SRGB is a color in the gamma-compressed sRGB color space. Channels are
// stored normalized to [0,1].
//
// Two SRGB values are equal when their 8-bit representations are equal;
// compare with Equal, not ==.
type SRGB struct {
	r, g, b float64
}

const gamma = 2.4

// gamutTolerance is how far a compressed channel may sit outside [0,1]
// and still be accepted (then clamped). Rounding in the matrix round
// trip of an in-gamut color stays within about 5e-15.
const gamutTolerance = 1e-9

// xyzToSRGB maps XYZ to linear sRGB, row-major.
var xyzToSRGB = [9]float64{
	12831.0 / 3959, -329.0 / 214, -1974.0 / 3959,
	-851781.0 / 878810, 1648619.0 / 878810, 36519.0 / 878810,
	705.0 / 12673, -2585.0 / 12673, 705.0 / 667,
}

// GammaExpand linearizes a gamma-compressed sRGB channel.
func GammaExpand(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, gamma)
	}
	return v / 12.92
}

// GammaCompress gamma-compresses a linear sRGB channel.
func GammaCompress(v float64) float64 {
	if v > 0.0031308 {
		return 1.055*math.Pow(v, 1/gamma) - 0.055
	}
	return v * 12.92
}

// NewSRGB returns the color with the given 8-bit channels.
func NewSRGB(r, g, b uint8) SRGB {
	return SRGB{
		r: float64(r) / 255,
		g: float64(g) / 255,
		b: float64(b) / 255,
	}
}

// SRGBFromBytes is NewSRGB taking an [r, g, b] array.
func SRGBFromBytes(c [3]uint8) SRGB {
	return NewSRGB(c[0], c[1], c[2])
}

// SRGBFromArray returns the color with normalized channels [r, g, b]
// without checking them. Channels outside [0,1] are kept as is.
func SRGBFromArray(c [3]float64) SRGB {
	return SRGB{r: c[0], g: c[1], b: c[2]}
}

// SRGBFromArrayChecked is SRGBFromArray, but fails when a channel is
// outside [0,1].
func SRGBFromArrayChecked(c [3]float64) (SRGB, error) {
	names := [3]string{"red", "green", "blue"}
	for i, v := range c {
		if !inRange(v, 0, 1) {
			return SRGB{}, &SpecificationError{Space: spaceSRGB, Component: names[i], Value: v}
		}
	}
	return SRGBFromArray(c), nil
}

// Red returns the normalized red channel.
func (c SRGB) Red() float64 { return c.r }

// Green returns the normalized green channel.
func (c SRGB) Green() float64 { return c.g }

// Blue returns the normalized blue channel.
func (c SRGB) Blue() float64 { return c.b }

// Red8 returns the red channel as an 8-bit value.
func (c SRGB) Red8() uint8 { return quantize(c.r) }

// Green8 returns the green channel as an 8-bit value.
func (c SRGB) Green8() uint8 { return quantize(c.g) }

// Blue8 returns the blue channel as an 8-bit value.
func (c SRGB) Blue8() uint8 { return quantize(c.b) }

// LinearRed returns the gamma-expanded red channel.
func (c SRGB) LinearRed() float64 { return GammaExpand(c.r) }

// LinearGreen returns the gamma-expanded green channel.
func (c SRGB) LinearGreen() float64 { return GammaExpand(c.g) }

// LinearBlue returns the gamma-expanded blue channel.
func (c SRGB) LinearBlue() float64 { return GammaExpand(c.b) }

// Array returns the normalized channels as [r, g, b].
func (c SRGB) Array() [3]float64 {
	return [3]float64{c.r, c.g, c.b}
}

// Bytes returns the 8-bit channels as [r, g, b].
func (c SRGB) Bytes() [3]uint8 {
	return [3]uint8{c.Red8(), c.Green8(), c.Blue8()}
}

// Valid reports whether every channel is in [0,1].
func (c SRGB) Valid() bool {
	return inRange(c.r, 0, 1) && inRange(c.g, 0, 1) && inRange(c.b, 0, 1)
}

// Hex returns the color as #rrggbb.
func (c SRGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red8(), c.Green8(), c.Blue8())
}

// Equal reports whether c and o have the same 8-bit representation.
func (c SRGB) Equal(o SRGB) bool {
	return c.Bytes() == o.Bytes()
}

func (c SRGB) String() string {
	return fmt.Sprintf("SRGB(%d, %d, %d)", c.Red8(), c.Green8(), c.Blue8())
}

// XYZ converts c to CIEXYZ.
func (c SRGB) XYZ() XYZ { return xyzFromSRGB(c) }

// Lab converts c to CIELAB.
func (c SRGB) Lab() Lab { return labFromXYZ(c.XYZ()) }

// LCh converts c to CIELCh.
func (c SRGB) LCh() LCh { return lchFromLab(c.Lab()) }

// quantize rounds a normalized channel to 8 bits, half away from zero.
// Values outside [0,1] saturate; NaN maps to 0.
func quantize(v float64) uint8 {
	v = math.Round(v * 255)
	switch {
	case v >= 255:
		return 255
	case v > 0:
		return uint8(v)
	}
	return 0
}

// srgbFromXYZ applies the inverse matrix and compresses each channel.
// The conversion fails as a whole if any channel leaves [0,1].
func srgbFromXYZ(c XYZ, from string) (SRGB, error) {
	m := &xyzToSRGB
	lin := [3]float64{
		m[0]*c.x + m[1]*c.y + m[2]*c.z,
		m[3]*c.x + m[4]*c.y + m[5]*c.z,
		m[6]*c.x + m[7]*c.y + m[8]*c.z,
	}

	var out [3]float64
	ok := true
	for i, v := range lin {
		out[i] = GammaCompress(v)
		if !inRange(out[i], -gamutTolerance, 1+gamutTolerance) {
			ok = false
		}
	}
	if !ok {
		Logger().Debug("colorspace: conversion to sRGB out of gamut",
			"from", from, "r", out[0], "g", out[1], "b", out[2])
		return SRGB{}, &GamutError{Space: from, Channels: out}
	}
	for i := range out {
		out[i] = math.Min(math.Max(out[i], 0), 1)
	}
	return SRGBFromArray(out), nil
}
