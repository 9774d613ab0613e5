package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gradedit/internal/binding"
	"github.com/alexisbeaulieu97/gradedit/internal/config"
	"github.com/alexisbeaulieu97/gradedit/internal/logger"
	"github.com/alexisbeaulieu97/gradedit/internal/store"
	"github.com/alexisbeaulieu97/gradedit/internal/tui"
)

type editOptions struct {
	Path     string
	LogFile  string
	NoWatch  bool
	Debounce time.Duration
}

var editCmdRunner = runEdit

func newEditCmd(root *rootFlags) *cobra.Command {
	opts := editOptions{}

	cmd := &cobra.Command{
		Use:   "edit FILE",
		Short: "Open the interactive gradient editor",
		Long: `Open the interactive gradient editor on FILE. Every edit is written back
immediately; a missing file is created on the first edit. Changes made to the
file by other programs are picked up while the editor runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			if !isTerminal(cmd.OutOrStdout()) {
				return fmt.Errorf("edit needs an interactive terminal; use render or sample in scripts")
			}

			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			return editCmdRunner(root, cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "Append diagnostics to this file while the editor runs")
	cmd.Flags().BoolVar(&opts.NoWatch, "no-watch", false, "Do not reload the file when other programs change it")
	cmd.Flags().DurationVar(&opts.Debounce, "debounce", store.DefaultWatchDebounce, "Delay before reloading after an external change")

	return cmd
}

func runEdit(root *rootFlags, cfg *config.Config, opts editOptions) error {
	log := logger.Nop()
	if opts.LogFile != "" {
		file, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer file.Close()

		log, err = newLogger(root, cfg, file, cfg.Log.Human, "editor")
		if err != nil {
			return err
		}
	}

	doc := store.Open(opts.Path)
	raw, err := doc.Load()
	if err != nil {
		return err
	}
	if !binding.Accept(raw) {
		return fmt.Errorf("%s: stops are malformed; run validate for details", opts.Path)
	}

	model, err := tui.NewModel(tui.Options{Document: doc, Raw: raw, Config: cfg, Logger: log})
	if err != nil {
		return err
	}
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if !opts.NoWatch {
		watcher, err := tui.WatchDocument(doc, opts.Debounce, program.Send)
		if err != nil {
			log.Warn("file watching disabled", "error", err.Error())
		} else {
			defer watcher.Stop()
		}
	}

	log.Info("editor started", "path", doc.Path(), "space", cfg.Space().String(), "variant", cfg.BoundVariant().String())
	if _, err := program.Run(); err != nil {
		log.Error(err, "editor exited")
		return err
	}
	return nil
}
