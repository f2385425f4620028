package colorspace

import (
	"fmt"
	"math"
)

// Lab is a color in the CIE 1976 L*a*b* color space relative to D65.
type Lab struct {
	l, a, b float64
}

const (
	labDelta   = 6.0 / 29
	labEpsilon = labDelta * labDelta * labDelta
)

// NewLab returns the color (l, a, b). It fails unless 0 <= l <= 100.
func NewLab(l, a, b float64) (Lab, error) {
	if err := checkLightness(spaceLab, l); err != nil {
		return Lab{}, err
	}
	return Lab{l: l, a: a, b: b}, nil
}

// LabFromArray returns the color [l, a, b] without checking it.
func LabFromArray(c [3]float64) Lab {
	return Lab{l: c[0], a: c[1], b: c[2]}
}

// LabFromArrayChecked is NewLab taking an [l, a, b] array.
func LabFromArrayChecked(c [3]float64) (Lab, error) {
	return NewLab(c[0], c[1], c[2])
}

func checkLightness(space string, l float64) error {
	if !inRange(l, 0, 100) {
		return &SpecificationError{Space: space, Component: "lightness", Value: l}
	}
	return nil
}

// Lightness returns L*, in [0,100] for valid colors.
func (c Lab) Lightness() float64 { return c.l }

// A returns a*, the green-red axis.
func (c Lab) A() float64 { return c.a }

// B returns b*, the blue-yellow axis.
func (c Lab) B() float64 { return c.b }

// Array returns the components as [l, a, b].
func (c Lab) Array() [3]float64 {
	return [3]float64{c.l, c.a, c.b}
}

// Valid reports whether c would be accepted by NewLab.
func (c Lab) Valid() bool {
	return checkLightness(spaceLab, c.l) == nil
}

// Equal reports whether c and o have identical components.
func (c Lab) Equal(o Lab) bool {
	return c == o
}

func (c Lab) String() string {
	return fmt.Sprintf("Lab(%g, %g, %g)", c.l, c.a, c.b)
}

// SRGB converts c to sRGB. The error wraps ErrOutOfGamut when c cannot
// be displayed.
func (c Lab) SRGB() (SRGB, error) { return srgbFromXYZ(c.XYZ(), spaceLab) }

// XYZ converts c to CIEXYZ.
func (c Lab) XYZ() XYZ { return xyzFromLab(c) }

// LCh converts c to CIELCh.
func (c Lab) LCh() LCh { return lchFromLab(c) }

func labFromXYZ(c XYZ) Lab {
	fx := labCompress(c.x / D65.x)
	fy := labCompress(c.y / D65.y)
	fz := labCompress(c.z / D65.z)
	// The conversion rounds 116*fy before subtracting, so a fused
	// multiply-add cannot leave a residue for black.
	return Lab{
		l: float64(116*fy) - 16,
		a: 500 * (fx - fy),
		b: 200 * (fy - fz),
	}
}

func labFromLCh(c LCh) Lab {
	return Lab{
		l: c.l,
		a: c.c * math.Cos(c.h),
		b: c.c * math.Sin(c.h),
	}
}

// labCompress is the cube root with a linear segment near zero.
func labCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29
}
