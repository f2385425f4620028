package colorspace

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfSpecification is matched by every error returned from a
	// validating constructor.
	ErrOutOfSpecification = errors.New("color is out of specification")

	// ErrOutOfGamut is matched by every error returned from a conversion
	// into SRGB.
	ErrOutOfGamut = errors.New("color is out of gamut")
)

// Color space names used in errors and String output.
const (
	spaceSRGB = "sRGB"
	spaceXYZ  = "CIEXYZ"
	spaceLab  = "CIELAB"
	spaceLCh  = "CIELCh"
)

// SpecificationError reports a component outside the valid domain of
// its color space.
type SpecificationError struct {
	Space     string
	Component string
	Value     float64
}

func (e *SpecificationError) Error() string {
	return fmt.Sprintf("%s: %s %v is out of specification", e.Space, e.Component, e.Value)
}

// Is reports whether target is ErrOutOfSpecification.
func (e *SpecificationError) Is(target error) bool {
	return target == ErrOutOfSpecification
}

// GamutError reports a conversion into SRGB whose gamma-compressed
// channels do not all fall in [0,1]. Channels holds the rejected values.
type GamutError struct {
	Space    string
	Channels [3]float64
}

func (e *GamutError) Error() string {
	return fmt.Sprintf("%s: color is out of gamut (r=%g, g=%g, b=%g)",
		e.Space, e.Channels[0], e.Channels[1], e.Channels[2])
}

// Is reports whether target is ErrOutOfGamut.
func (e *GamutError) Is(target error) bool {
	return target == ErrOutOfGamut
}

// inRange reports whether lo <= v <= hi. NaN is never in range.
func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
