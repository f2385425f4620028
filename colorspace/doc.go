// Package colorspace converts single colors between sRGB, CIEXYZ, CIELAB
// and CIELCh.
//
// # Conversion graph
//
// Only three edges are implemented directly:
//
//	SRGB <-> XYZ   gamma curve and 3x3 matrix (IEC 61966-2-1)
//	XYZ  <-> Lab   CIE 1976 transform relative to D65
//	Lab  <-> LCh   Cartesian to polar
//
// Every other pair is composed through the intermediate type, so
// SRGB.Lab is SRGB.XYZ followed by XYZ.Lab, and so on.
//
// # Validity
//
// Each type has a validating constructor (NewXYZ, NewLab, ...) that
// returns an error wrapping ErrOutOfSpecification, and an unchecked
// array constructor (XYZFromArray, ...) that accepts anything. Conversions
// into SRGB fail with an error wrapping ErrOutOfGamut when the color
// cannot be displayed.
//
//	lab, err := colorspace.NewLab(53.24, 80.09, 67.2)
//	if err != nil {
//	    return err
//	}
//	rgb, err := lab.SRGB()
//	if errors.Is(err, colorspace.ErrOutOfGamut) {
//	    // pick another rendering intent
//	}
//
// All values are immutable and every function is safe for concurrent use.
package colorspace
