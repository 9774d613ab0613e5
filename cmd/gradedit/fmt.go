package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gradedit/internal/binding"
	"github.com/alexisbeaulieu97/gradedit/internal/store"
	"github.com/alexisbeaulieu97/gradedit/pkg/diff"
)

func newFmtCmd(root *rootFlags) *cobra.Command {
	var (
		write    bool
		showDiff bool
	)

	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Rewrite a gradient in the configured space and shape",
		Long: `Read FILE the way the editor does and print it in normalized form: every
color in the configured space, positions clamped to [0, 1] and the value in
the configured shape. With --write the file is replaced instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}

			path := args[0]
			doc, stops, substituted, err := openGradient(path, cfg)
			if err != nil {
				return err
			}
			if substituted {
				return fmt.Errorf("%s does not describe a gradient", path)
			}

			value := binding.Write(stops, cfg.BoundVariant())
			normalized, err := store.Encode(doc.Format(), value)
			if err != nil {
				return err
			}

			if showDiff {
				current, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), diff.Unified(current, normalized, path, path+" (normalized)"))
			}

			switch {
			case write:
				if err := doc.Save(value); err != nil {
					return err
				}
				commandLogger(cmd, root, cfg, "fmt").Debug("normalized document", "path", path, "space", cfg.Space().String())
			case !showDiff:
				_, err := cmd.OutOrStdout().Write(normalized)
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back to FILE")
	cmd.Flags().BoolVarP(&showDiff, "diff", "d", false, "Print a diff against the current content")

	return cmd
}
