package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mmuldo/cowor/palette"
	"github.com/mmuldo/cowor/render"
)

func newInspectCmd(o *options) *cobra.Command {
	var degrees bool

	cmd := &cobra.Command{
		Use:   "inspect <color>...",
		Short: "Show sRGB colors in every color space",
		Long: `Show each sRGB color as hex, XYZ, Lab and LCh. A color is a hex
literal (#rrggbb or #rgb), a CSS color name or an r,g,b triple.`,
		Example: `  cowor inspect navy '#14213d' 255,128,0
  cowor inspect -f json --degrees tomato`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := o.renderer()
			if err != nil {
				return err
			}

			reports := make([]render.Report, 0, len(args))
			for _, a := range args {
				c, err := palette.Parse(a)
				if err != nil {
					return err
				}
				reports = append(reports, render.Describe(a, c, degrees))
			}
			return r.Render(cmd.OutOrStdout(), reports...)
		},
	}

	cmd.Flags().BoolVar(&degrees, "degrees", false, "show LCh hue in degrees instead of radians")
	return cmd
}
