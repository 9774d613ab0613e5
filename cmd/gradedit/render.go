package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gradedit/internal/config"
	"github.com/alexisbeaulieu97/gradedit/internal/raster"
	"github.com/alexisbeaulieu97/gradedit/internal/store"
)

func newRenderCmd(root *rootFlags) *cobra.Command {
	var (
		output  string
		dataURL bool
		width   int
		height  int
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a gradient to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			if width > 0 {
				cfg.Canvas.Width = width
			}
			if height > 0 {
				cfg.Canvas.Height = height
			}
			if err := config.ValidateConfig(cfg); err != nil {
				return err
			}

			log := commandLogger(cmd, root, cfg, "render")
			path := args[0]
			_, stops, substituted, err := openGradient(path, cfg)
			if err != nil {
				return err
			}
			if substituted {
				warnSubstituted(log, path)
			}

			r := raster.New(cfg.CanvasSize())
			if err := r.Render(stops); err != nil {
				return err
			}

			if dataURL {
				url, err := r.Snapshot()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), url)
				return nil
			}

			if output == "" {
				output = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
			}
			if err := store.WriteAtomic(output, r.EncodePNG); err != nil {
				return err
			}
			log.Debug("rendered gradient", "stops", len(stops), "output", output)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n", output, r.Width(), r.Height())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG file to write (defaults to FILE with a .png extension)")
	cmd.Flags().BoolVar(&dataURL, "data-url", false, "Print a data: URL instead of writing a file")
	cmd.Flags().IntVar(&width, "width", 0, "Override the canvas width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "Override the canvas height in pixels")

	return cmd
}
