package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gradedit/internal/binding"
	"github.com/alexisbeaulieu97/gradedit/internal/store"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check that documents hold well-formed gradients",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			log := commandLogger(cmd, root, cfg, "validate")

			var failed int
			for _, path := range args {
				if err := validateDocument(path); err != nil {
					failed++
					log.Error(err, "invalid gradient", "path", path)
					fmt.Fprintf(cmd.OutOrStdout(), "✗ %s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", path)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed validation", failed, len(args))
			}
			return nil
		},
	}

	return cmd
}

func validateDocument(path string) error {
	raw, err := store.Open(path).Load()
	if err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("document is missing or empty")
	}

	stops, err := binding.Decode(raw)
	if err != nil {
		return err
	}
	return stops.Validate()
}
