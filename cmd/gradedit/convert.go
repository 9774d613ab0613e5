package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gradedit/internal/colorspace"
)

func newConvertCmd(root *rootFlags) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert COLOR...",
		Short: "Convert colors between rgb, hsv and hex notation",
		Example: `  gradedit convert '#ff8000' --to hsv
  gradedit convert 'hsv(30, 100, 100)' --to rgb`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			space := colorspace.ParseSpace(to)
			if to == "" {
				cfg, err := loadConfig(root)
				if err != nil {
					return err
				}
				space = cfg.Space()
			}

			for _, arg := range args {
				c, err := colorspace.ParseColor(arg)
				if err != nil {
					return err
				}
				converted, err := colorspace.Convert(c, space)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), converted.CSS())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Target notation: rgb, hsv or hex (defaults to the configured space)")

	return cmd
}
