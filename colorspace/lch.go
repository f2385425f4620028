package colorspace

import (
	"fmt"
	"math"
)

// LCh is the cylindrical form of Lab: lightness, chroma and hue in
// radians.
//
// Hue is meaningless when chroma is 0, so Equal ignores it there; compare
// with Equal, not ==.
type LCh struct {
	l, c, h float64
}

// NewLCh returns the color (l, c, h) with h in radians. It fails unless
// 0 <= l <= 100 and c >= 0.
func NewLCh(l, c, h float64) (LCh, error) {
	if err := checkLCh(l, c); err != nil {
		return LCh{}, err
	}
	return LCh{l: l, c: c, h: h}, nil
}

// LChFromArray returns the color [l, c, h] without checking it.
func LChFromArray(v [3]float64) LCh {
	return LCh{l: v[0], c: v[1], h: v[2]}
}

// LChFromArrayChecked is NewLCh taking an [l, c, h] array.
func LChFromArrayChecked(v [3]float64) (LCh, error) {
	return NewLCh(v[0], v[1], v[2])
}

func checkLCh(l, c float64) error {
	if err := checkLightness(spaceLCh, l); err != nil {
		return err
	}
	if !(c >= 0) {
		return &SpecificationError{Space: spaceLCh, Component: "chroma", Value: c}
	}
	return nil
}

// Lightness returns L*, in [0,100] for valid colors.
func (c LCh) Lightness() float64 { return c.l }

// Chroma returns the distance from the neutral axis.
func (c LCh) Chroma() float64 { return c.c }

// Hue returns the hue angle in radians.
func (c LCh) Hue() float64 { return c.h }

// HueDegrees returns the hue angle in degrees, normalized to [0,360).
func (c LCh) HueDegrees() float64 {
	d := math.Mod(c.h*180/math.Pi, 360)
	if d < 0 {
		d += 360
	}
	// Also folds -0 and the 360 that a tiny negative angle rounds up to.
	if d == 0 || d >= 360 {
		return 0
	}
	return d
}

// Array returns the components as [l, c, h].
func (c LCh) Array() [3]float64 {
	return [3]float64{c.l, c.c, c.h}
}

// Valid reports whether c would be accepted by NewLCh.
func (c LCh) Valid() bool {
	return checkLCh(c.l, c.c) == nil
}

// Equal reports whether c and o describe the same color. When both
// chromas are exactly 0 only lightness is compared.
func (c LCh) Equal(o LCh) bool {
	if c.c == 0 && o.c == 0 {
		return c.l == o.l
	}
	return c == o
}

func (c LCh) String() string {
	return fmt.Sprintf("LCh(%g, %g, %g)", c.l, c.c, c.h)
}

// SRGB converts c to sRGB. The error wraps ErrOutOfGamut when c cannot
// be displayed.
func (c LCh) SRGB() (SRGB, error) { return srgbFromXYZ(c.XYZ(), spaceLCh) }

// XYZ converts c to CIEXYZ.
func (c LCh) XYZ() XYZ { return xyzFromLab(c.Lab()) }

// Lab converts c to CIELAB.
func (c LCh) Lab() Lab { return labFromLCh(c) }

func lchFromLab(c Lab) LCh {
	return LCh{
		l: c.l,
		c: math.Hypot(c.a, c.b),
		h: math.Atan2(c.b, c.a),
	}
}
