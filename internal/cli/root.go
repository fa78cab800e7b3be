package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tabdeck/internal/browser"
	"tabdeck/internal/config"
	"tabdeck/internal/dashboard"
	"tabdeck/internal/storage"
	"tabdeck/internal/ui"
)

type App struct {
	ConfigPath string
	DBPath     string

	opener browser.Opener
}

type session struct {
	cfg     config.Config
	store   *storage.Store
	deck    *dashboard.Dashboard
	log     *slog.Logger
	closers []io.Closer
}

func (s *session) Close() error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{opener: browser.System{}})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "tabdeck",
		Short:        "Terminal new-tab dashboard: clock, tasks, links and search",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive dashboard
  tabdeck

  # Scriptable commands
  tabdeck tasks add "buy milk"
  tabdeck links add example.com
  tabdeck links open 1
  tabdeck search "bubble tea"
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.open()
			if err != nil {
				return err
			}
			defer s.Close()
			return ui.Run(s.deck, s.cfg, ui.Options{Opener: app.opener, Logger: s.log})
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to config.toml (default: $TABDECK_CONFIG or the user config dir)")
	cmd.PersistentFlags().StringVar(&app.DBPath, "db", "", "Path to the database (overrides db_path)")

	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newLinksCmd(app))
	cmd.AddCommand(newSearchCmd(app))
	return cmd
}

func (a *App) open() (*session, error) {
	path := a.ConfigPath
	if path == "" {
		path = config.ResolveConfigPath()
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if a.DBPath != "" {
		cfg.DBPath = a.DBPath
	}

	s := &session{cfg: cfg}
	log, logFile, err := newLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	if logFile != nil {
		s.closers = append(s.closers, logFile)
	}
	s.log = log

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}
	s.closers = append(s.closers, store)
	s.store = store
	s.deck = dashboard.New(store, cfg, log)
	log.Debug("session opened", "config", path, "db", cfg.DBPath)
	return s, nil
}

// newLogger writes to path so the TUI keeps the terminal to itself. An empty
// path discards logs.
func newLogger(path, level string) (*slog.Logger, io.Closer, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, opts)), f, nil
}
