// Package logging builds the process-wide zap logger.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"
)

// New returns the logger for a run. Verbose mode uses the development config
// so skipped files, symlinks, and per-entry errors show up on the console;
// otherwise only errors surface.
func New(verbose bool) (*zap.Logger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	return cfg.Build()
}

// Sync flushes the logger. Syncing stderr fails with "invalid argument" on
// some platforms when it is neither a terminal nor a regular file, so that
// case is ignored.
func Sync(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if err := logger.Sync(); err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			logger.Error("logger sync failed", zap.Error(err))
		}
	}
}

func isRegularFile(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
