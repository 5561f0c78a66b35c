package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/dmitrijs2005/contentdesk/internal/client/api"
	"github.com/dmitrijs2005/contentdesk/internal/client/config"
	"github.com/dmitrijs2005/contentdesk/internal/client/guard"
	"github.com/dmitrijs2005/contentdesk/internal/client/services"
	"github.com/dmitrijs2005/contentdesk/internal/client/session"
	"github.com/dmitrijs2005/contentdesk/internal/client/tui"
	"github.com/dmitrijs2005/contentdesk/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("contentdesk requires an interactive terminal")
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	credPath := cfg.CredentialFile
	if credPath == "" {
		credPath, err = session.DefaultCredentialPath()
		if err != nil {
			return err
		}
	}

	sessions := session.NewManager(session.NewFileStorage(credPath), logger)
	sessions.Restore()

	client := api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, sessions.Token, logger)
	app := tui.NewApp(
		context.Background(),
		sessions,
		guard.New(sessions),
		services.NewContentService(client),
		client,
		logger,
	)

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// newLogger builds the process logger. The TUI owns the terminal, so logs go
// to the configured file, or nowhere.
func newLogger(path string) (logging.Logger, func(), error) {
	if path == "" {
		return logging.NewTextLogger(io.Discard, slog.LevelInfo), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.NewTextLogger(f, slog.LevelDebug), func() { f.Close() }, nil
}
