package cmd

import (
	"fmt"
	"strings"

	"github.com/mmuldo/cowor/colorspace"
	"github.com/mmuldo/cowor/render"
)

type space int

const (
	spaceSRGB space = iota
	spaceXYZ
	spaceLab
	spaceLCh
)

var spaceNames = map[string]space{
	"srgb":   spaceSRGB,
	"rgb":    spaceSRGB,
	"xyz":    spaceXYZ,
	"ciexyz": spaceXYZ,
	"lab":    spaceLab,
	"cielab": spaceLab,
	"lch":    spaceLCh,
	"cielch": spaceLCh,
}

func parseSpace(s string) (space, error) {
	sp, ok := spaceNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown color space %q (want srgb, xyz, lab or lch)", s)
	}
	return sp, nil
}

func (s space) String() string {
	switch s {
	case spaceSRGB:
		return "srgb"
	case spaceXYZ:
		return "xyz"
	case spaceLab:
		return "lab"
	case spaceLCh:
		return "lch"
	}
	return fmt.Sprintf("space(%d)", int(s))
}

type (
	toSRGB interface {
		SRGB() (colorspace.SRGB, error)
	}
	toXYZ interface{ XYZ() colorspace.XYZ }
	toLab interface{ Lab() colorspace.Lab }
	toLCh interface{ LCh() colorspace.LCh }
)

// convert reports c, one of the four colorspace types, in space dst.
func convert(c interface{}, dst space, degrees bool) (render.Report, error) {
	switch dst {
	case spaceSRGB:
		s, ok := c.(colorspace.SRGB)
		if !ok {
			var err error
			if s, err = c.(toSRGB).SRGB(); err != nil {
				return render.Report{}, err
			}
		}
		return render.Report{Hex: s.Hex(), Spaces: []render.Entry{render.SRGBEntry(s)}}, nil
	case spaceXYZ:
		x, ok := c.(colorspace.XYZ)
		if !ok {
			x = c.(toXYZ).XYZ()
		}
		return render.Report{Spaces: []render.Entry{render.XYZEntry(x)}}, nil
	case spaceLab:
		l, ok := c.(colorspace.Lab)
		if !ok {
			l = c.(toLab).Lab()
		}
		return render.Report{Spaces: []render.Entry{render.LabEntry(l)}}, nil
	case spaceLCh:
		l, ok := c.(colorspace.LCh)
		if !ok {
			l = c.(toLCh).LCh()
		}
		return render.Report{Spaces: []render.Entry{render.LChEntry(l, degrees)}}, nil
	}
	return render.Report{}, fmt.Errorf("unsupported target space %v", dst)
}
