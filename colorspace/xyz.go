package colorspace

import "fmt"

// XYZ is a color in the CIE 1931 XYZ color space, with Y normalized so
// that the reference white has Y = 1.
type XYZ struct {
	x, y, z float64
}

// srgbToXYZ maps linear sRGB to XYZ, row-major.
var srgbToXYZ = [9]float64{
	506752.0 / 1228815, 87881.0 / 245763, 12673.0 / 70218,
	87098.0 / 409605, 175762.0 / 245763, 12673.0 / 175545,
	7918.0 / 409605, 87881.0 / 737289, 1001167.0 / 1053270,
}

// D65 is the reference white used by Lab and LCh. It is the row sums of
// the sRGB to XYZ matrix, summed in float64 so that it equals
// NewSRGB(255, 255, 255).XYZ() exactly.
var D65 = XYZ{
	x: srgbToXYZ[0] + srgbToXYZ[1] + srgbToXYZ[2],
	y: srgbToXYZ[3] + srgbToXYZ[4] + srgbToXYZ[5],
	z: srgbToXYZ[6] + srgbToXYZ[7] + srgbToXYZ[8],
}

// NewXYZ returns the color (x, y, z). It fails unless x >= 0, z >= 0 and
// 0 <= y <= 1.
func NewXYZ(x, y, z float64) (XYZ, error) {
	if err := checkXYZ(x, y, z); err != nil {
		return XYZ{}, err
	}
	return XYZ{x: x, y: y, z: z}, nil
}

// XYZFromArray returns the color [x, y, z] without checking it.
func XYZFromArray(c [3]float64) XYZ {
	return XYZ{x: c[0], y: c[1], z: c[2]}
}

// XYZFromArrayChecked is NewXYZ taking an [x, y, z] array.
func XYZFromArrayChecked(c [3]float64) (XYZ, error) {
	return NewXYZ(c[0], c[1], c[2])
}

func checkXYZ(x, y, z float64) error {
	switch {
	case !(x >= 0):
		return &SpecificationError{Space: spaceXYZ, Component: "x", Value: x}
	case !inRange(y, 0, 1):
		return &SpecificationError{Space: spaceXYZ, Component: "y", Value: y}
	case !(z >= 0):
		return &SpecificationError{Space: spaceXYZ, Component: "z", Value: z}
	}
	return nil
}

// X returns the X component.
func (c XYZ) X() float64 { return c.x }

// Y returns the luminance, 1 for the reference white.
func (c XYZ) Y() float64 { return c.y }

// Z returns the Z component.
func (c XYZ) Z() float64 { return c.z }

// Array returns the components as [x, y, z].
func (c XYZ) Array() [3]float64 {
	return [3]float64{c.x, c.y, c.z}
}

// Valid reports whether c would be accepted by NewXYZ.
func (c XYZ) Valid() bool {
	return checkXYZ(c.x, c.y, c.z) == nil
}

// Equal reports whether c and o have identical components.
func (c XYZ) Equal(o XYZ) bool {
	return c == o
}

func (c XYZ) String() string {
	return fmt.Sprintf("XYZ(%g, %g, %g)", c.x, c.y, c.z)
}

// SRGB converts c to sRGB. The error wraps ErrOutOfGamut when c cannot
// be displayed.
func (c XYZ) SRGB() (SRGB, error) { return srgbFromXYZ(c, spaceXYZ) }

// Lab converts c to CIELAB.
func (c XYZ) Lab() Lab { return labFromXYZ(c) }

// LCh converts c to CIELCh.
func (c XYZ) LCh() LCh { return lchFromLab(c.Lab()) }

func xyzFromSRGB(c SRGB) XYZ {
	r, g, b := c.LinearRed(), c.LinearGreen(), c.LinearBlue()
	m := &srgbToXYZ
	return XYZ{
		x: m[0]*r + m[1]*g + m[2]*b,
		y: m[3]*r + m[4]*g + m[5]*b,
		z: m[6]*r + m[7]*g + m[8]*b,
	}
}

func xyzFromLab(c Lab) XYZ {
	p := (c.l + 16) / 116
	return XYZ{
		x: D65.x * labUncompress(p+c.a/500),
		y: D65.y * labUncompress(p),
		z: D65.z * labUncompress(p-c.b/200),
	}
}

// labUncompress inverts labCompress.
func labUncompress(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return 3 * labDelta * labDelta * (t - 4.0/29)
}
