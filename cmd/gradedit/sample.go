package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gradedit/internal/colorspace"
	"github.com/alexisbeaulieu97/gradedit/internal/raster"
)

func newSampleCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample FILE POSITION...",
		Short: "Print the rendered color at positions along a gradient",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}

			positions := make([]float64, 0, len(args)-1)
			for _, arg := range args[1:] {
				pos, err := strconv.ParseFloat(arg, 64)
				if err != nil || pos < 0 || pos > 1 {
					return fmt.Errorf("position %q must be a number between 0 and 1", arg)
				}
				positions = append(positions, pos)
			}

			path := args[0]
			_, stops, substituted, err := openGradient(path, cfg)
			if err != nil {
				return err
			}
			if substituted {
				warnSubstituted(commandLogger(cmd, root, cfg, "sample"), path)
			}

			r := raster.New(cfg.CanvasSize())
			if err := r.Render(stops); err != nil {
				return err
			}

			for _, pos := range positions {
				rgb := r.SampleColorAt(pos)
				color := colorspace.ToExternal(colorspace.UniformFromRGB255(rgb.R, rgb.G, rgb.B), cfg.Space())
				fmt.Fprintf(cmd.OutOrStdout(), "%.2f %s\n", pos, color.CSS())
			}
			return nil
		},
	}

	return cmd
}
