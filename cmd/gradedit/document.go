package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/gradedit/internal/binding"
	"github.com/alexisbeaulieu97/gradedit/internal/config"
	"github.com/alexisbeaulieu97/gradedit/internal/gradient"
	"github.com/alexisbeaulieu97/gradedit/internal/logger"
	"github.com/alexisbeaulieu97/gradedit/internal/store"
)

// openGradient loads the document at path and reads it in the configured
// space. substituted reports that the default gradient stands in for it.
func openGradient(path string, cfg *config.Config) (doc *store.Document, stops gradient.Stops, substituted bool, err error) {
	doc = store.Open(path)
	raw, err := doc.Load()
	if err != nil {
		return nil, nil, false, err
	}
	stops, substituted = binding.Read(raw, cfg.Params())
	return doc, stops, substituted, nil
}

// commandLogger logs to the command's error stream.
func commandLogger(cmd *cobra.Command, flags *rootFlags, cfg *config.Config, component string) *logger.Logger {
	log, err := newLogger(flags, cfg, cmd.ErrOrStderr(), true, component)
	if err != nil {
		return logger.Nop()
	}
	return log
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

func warnSubstituted(log *logger.Logger, path string) {
	log.Warn(fmt.Sprintf("%s does not describe a gradient, using the default", path))
}
