package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gradedit/internal/colorspace"
	"github.com/alexisbeaulieu97/gradedit/internal/config"
	"github.com/alexisbeaulieu97/gradedit/internal/logger"
)

type rootFlags struct {
	verbose    bool
	configPath string
	space      string
	variant    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gradedit",
		Short:         "Edit color gradients stored in YAML or JSON documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to editor configuration file")
	cmd.PersistentFlags().StringVar(&flags.space, "space", "", "Color representation for stops (rgb, hsv or hex)")
	cmd.PersistentFlags().StringVar(&flags.variant, "variant", "", "Shape of the stored value (object or list)")

	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newSampleCmd(flags))
	cmd.AddCommand(newConvertCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newFmtCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig reads the configuration file, when given, and applies flag
// overrides on top of it.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg := config.Default()
	if strings.TrimSpace(flags.configPath) != "" {
		parsed, err := config.ParseConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = parsed
	}

	if flags.space != "" {
		cfg.ColorSpace = colorspace.ParseSpace(flags.space).String()
	}
	if flags.variant != "" {
		cfg.Variant = flags.variant
		if err := config.ValidateConfig(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func newLogger(flags *rootFlags, cfg *config.Config, w io.Writer, human bool, component string) (*logger.Logger, error) {
	level := cfg.LogLevel()
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: human,
		Writer:        w,
		Component:     component,
	})
}
