package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmuldo/cowor/colorspace"
	"github.com/mmuldo/cowor/palette"
)

func newConvertCmd(o *options) *cobra.Command {
	var (
		from, to string
		degrees  bool
	)

	cmd := &cobra.Command{
		Use:   "convert <c1> [<c2> <c3>]",
		Short: "Convert one color between color spaces",
		Long: `Convert one color from the --from space to the --to space.

Components are validated in the source space. sRGB input is either a
single literal (#rrggbb, #rgb, a color name or r,g,b), three 8-bit
integers or three floats in [0,1]. LCh hue is in radians unless
--degrees is set.`,
		Example: `  cowor convert --to lab '#14213d'
  cowor convert --from lab --to srgb 53.24 80.09 67.2
  cowor convert --from lch --to xyz --degrees 50 30 120`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseSpace(from)
			if err != nil {
				return err
			}
			dst, err := parseSpace(to)
			if err != nil {
				return err
			}

			c, err := parseColor(src, args, degrees)
			if err != nil {
				return err
			}
			rep, err := convert(c, dst, degrees)
			if err != nil {
				return fmt.Errorf("convert %s to %s: %w", src, dst, err)
			}
			rep.Input = strings.Join(args, " ")

			r, err := o.renderer()
			if err != nil {
				return err
			}
			return r.Render(cmd.OutOrStdout(), rep)
		},
	}

	cmd.Flags().StringVar(&from, "from", "srgb", "source color space: srgb, xyz, lab or lch")
	cmd.Flags().StringVar(&to, "to", "lab", "target color space: srgb, xyz, lab or lch")
	cmd.Flags().BoolVar(&degrees, "degrees", false, "LCh hue in degrees instead of radians")
	return cmd
}

// parseColor builds a color in space src from command-line components.
func parseColor(src space, args []string, degrees bool) (interface{}, error) {
	if src == spaceSRGB {
		return parseSRGB(args)
	}
	if len(args) != 3 {
		return nil, fmt.Errorf("%s color needs 3 components, got %d", src, len(args))
	}

	var v [3]float64
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%s component %q: %w", src, a, err)
		}
		v[i] = f
	}

	switch src {
	case spaceXYZ:
		return colorspace.NewXYZ(v[0], v[1], v[2])
	case spaceLab:
		return colorspace.NewLab(v[0], v[1], v[2])
	case spaceLCh:
		h := v[2]
		if degrees {
			h = h * math.Pi / 180
		}
		return colorspace.NewLCh(v[0], v[1], h)
	}
	return nil, fmt.Errorf("unsupported source space %v", src)
}

func parseSRGB(args []string) (colorspace.SRGB, error) {
	switch len(args) {
	case 1:
		return palette.Parse(args[0])
	case 3:
	default:
		return colorspace.SRGB{}, fmt.Errorf("srgb color needs 1 literal or 3 channels, got %d arguments", len(args))
	}

	if strings.ContainsAny(strings.Join(args, ""), ".eE") {
		var v [3]float64
		for i, a := range args {
			f, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return colorspace.SRGB{}, fmt.Errorf("srgb channel %q: %w", a, err)
			}
			v[i] = f
		}
		return colorspace.SRGBFromArrayChecked(v)
	}

	var ch [3]uint8
	for i, a := range args {
		n, err := strconv.ParseUint(a, 10, 8)
		if err != nil {
			return colorspace.SRGB{}, fmt.Errorf("srgb channel %q: %w", a, err)
		}
		ch[i] = uint8(n)
	}
	return colorspace.SRGBFromBytes(ch), nil
}
