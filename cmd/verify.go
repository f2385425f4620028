package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmuldo/cowor/colorspace"
	"github.com/mmuldo/cowor/palette"
)

// verifyResult summarizes a walk over the sRGB grid.
type verifyResult struct {
	Checked    int
	MaxDev     float64
	Worst      colorspace.SRGB
	Mismatches int
}

func newVerifyCmd(o *options) *cobra.Command {
	var (
		step      int
		tolerance float64
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check conversions over a grid of sRGB colors",
		Long: `Walk a grid of 8-bit sRGB colors. For each color, compare the Lab value
against an independent reference conversion and check that the color
survives the trip through XYZ, Lab and LCh back to the same 8-bit sRGB.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if step < 1 || step > 255 {
				return fmt.Errorf("step %d out of range [1, 255]", step)
			}

			res := verifyGrid(step, o.log)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "checked %d colors\n", res.Checked)
			fmt.Fprintf(out, "max Lab deviation from reference: %.6g at %s\n", res.MaxDev, res.Worst.Hex())
			fmt.Fprintf(out, "round-trip mismatches: %d\n", res.Mismatches)

			if res.MaxDev > tolerance || res.Mismatches > 0 {
				return fmt.Errorf("verification failed: deviation %.6g (tolerance %g), %d round-trip mismatches",
					res.MaxDev, tolerance, res.Mismatches)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&step, "step", 15, "grid spacing in 8-bit units")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0.1, "largest accepted Lab deviation")
	return cmd
}

// gridValues returns 0, step, 2*step, ... and always ends with 255.
func gridValues(step int) []uint8 {
	var vs []uint8
	for v := 0; v < 255; v += step {
		vs = append(vs, uint8(v))
	}
	return append(vs, 255)
}

func verifyGrid(step int, log *slog.Logger) verifyResult {
	var res verifyResult
	vs := gridValues(step)
	for _, r := range vs {
		for _, g := range vs {
			for _, b := range vs {
				c := colorspace.NewSRGB(r, g, b)
				res.Checked++

				if d := palette.Deviation(c); d > res.MaxDev {
					res.MaxDev, res.Worst = d, c
				}
				if !roundTrips(c) {
					log.Debug("round trip mismatch", "color", c.Hex())
					res.Mismatches++
				}
			}
		}
	}
	return res
}

// roundTrips reports whether c converts back to itself from XYZ, Lab and
// LCh.
func roundTrips(c colorspace.SRGB) bool {
	for _, via := range []toSRGB{c.XYZ(), c.Lab(), c.LCh()} {
		back, err := via.SRGB()
		if err != nil || !back.Equal(c) {
			return false
		}
	}
	return true
}
