package palette

import (
	"math"

	"github.com/jkl1337/go-chromath"

	"github.com/mmuldo/cowor/colorspace"
)

// go-chromath transformers: sRGB in 0-255 to XYZ relative to the space's
// own white, then XYZ to Lab against D65.
var (
	rgb2Xyz = chromath.NewRGBTransformer(&chromath.SpaceSRGB, nil, nil, &chromath.Scaler8bClamping, 1.0, nil)
	lab2Xyz = chromath.NewLabTransformer(&chromath.IlluminantRefD65)
)

// ReferenceLab converts c to CIELAB with go-chromath, an implementation
// that shares no code or constants with package colorspace. Only the 8-bit
// channels of c are used.
func ReferenceLab(c colorspace.SRGB) colorspace.Lab {
	rgb := chromath.RGB{float64(c.Red8()), float64(c.Green8()), float64(c.Blue8())}
	lab := lab2Xyz.Invert(rgb2Xyz.Convert(rgb))
	return colorspace.LabFromArray([3]float64{lab.L(), lab.A(), lab.B()})
}

// Deviation returns the largest per-component difference between the
// colorspace conversion of c and ReferenceLab(c).
func Deviation(c colorspace.SRGB) float64 {
	ours, ref := c.Lab().Array(), ReferenceLab(c).Array()
	var worst float64
	for i := range ours {
		worst = math.Max(worst, math.Abs(ours[i]-ref[i]))
	}
	return worst
}
