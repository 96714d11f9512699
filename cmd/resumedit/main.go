package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"resumedit/internal/adapters/clipboard"
	"resumedit/internal/adapters/editor"
	"resumedit/internal/adapters/tui"
	"resumedit/internal/bootstrap"
	"resumedit/internal/config"
	"resumedit/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so logs only go to a file
	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	rt, err := bootstrap.Open(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer rt.Close()

	// Initialize adapters
	editorOpener := editor.NewOpener()

	// Create and run TUI app
	app := tui.NewApp(rt.Store, editorOpener, clipboard.System{}, cfg.ExportFile, logger)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
