package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-towers/internal/config"
	"github.com/vovakirdan/tui-towers/internal/core"
	"github.com/vovakirdan/tui-towers/internal/games/towerdefense"
	"github.com/vovakirdan/tui-towers/internal/storage"
)

// resolveMode picks the mode named by the first argument, or the one for
// --difficulty when there is none.
func resolveMode(args []string) (towerdefense.Mode, error) {
	if len(args) > 0 {
		mode, ok := towerdefense.ModeByID(args[0])
		if !ok {
			return towerdefense.Mode{}, fmt.Errorf("unknown mode %q, run 'towers list' to see available modes", args[0])
		}
		return mode, nil
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return towerdefense.Mode{}, err
	}
	return towerdefense.ModeFor(preset), nil
}

// runtimeConfig sizes the screen from the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}

// openStore opens the session database. Games still run without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open session database, sessions will not be recorded", "error", err)
		return nil
	}
	return store
}

// newLogger returns the logger for headless commands, writing to stderr.
func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.GetLevel(),
	})
}

// sessionLogger returns the logger for full-screen sessions. Writing to
// the terminal would corrupt the view, so logs go to --log-file or nowhere.
func sessionLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "towers",
		Level:           log.GetLevel(),
	})
	return logger, func() { f.Close() }, nil
}
