package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joacominatel/dbmeta/internal/app"
	"github.com/joacominatel/dbmeta/internal/config"
	"github.com/joacominatel/dbmeta/internal/database"
	"github.com/joacominatel/dbmeta/internal/tui"
	"github.com/spf13/cobra"
)

const lookupTimeout = 30 * time.Second

// rootOptions holds the persistent flags shared by all commands.
type rootOptions struct {
	dsn        string
	connection string
	logLevel   string
	output     string
	configDir  string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	var logFile string

	rootCmd := &cobra.Command{
		Use:           "dbmeta",
		Short:         "Inspect primary keys and SQL type codes of database tables",
		Long:          "dbmeta reads primary keys and standard SQL type codes from PostgreSQL, MySQL, SQLite and DuckDB.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(opts, logFile)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.dsn, "dsn", "", "connection string (postgresql://, mysql://, sqlite://, duckdb:// or a database file)")
	pf.StringVarP(&opts.connection, "connection", "c", "", "name of a saved connection")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")
	pf.StringVarP(&opts.output, "output", "o", "yaml", "output format: yaml or json")
	pf.StringVar(&opts.configDir, "config-dir", "", "configuration directory (default ~/.dbmeta)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse tables, keys and type codes interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(opts, logFile)
		},
	}
	for _, c := range []*cobra.Command{rootCmd, tuiCmd} {
		c.Flags().StringVar(&logFile, "log-file", "", "write TUI logs to this file")
	}

	rootCmd.AddCommand(
		tuiCmd,
		newPKCmd(opts),
		newTypeCmd(opts),
		newConnectionsCmd(opts),
	)

	return rootCmd
}

func (o *rootOptions) init(stderr io.Writer) error {
	var err error
	if o.configDir != "" {
		o.cfg, err = config.LoadFrom(o.configDir)
	} else {
		o.cfg, err = config.Load()
	}
	if err != nil {
		return &app.ErrConfig{Cause: err}
	}

	if o.output != "yaml" && o.output != "json" {
		return fmt.Errorf("unsupported output format %q", o.output)
	}

	levelName := o.logLevel
	if levelName == "" {
		levelName = o.cfg.Preferences.LogLevel
	}
	level, err := parseLevel(levelName)
	if err != nil {
		return err
	}
	o.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if name == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return level, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}

// target resolves which connection to use: --dsn, then --connection, then
// the configured default. ok is false when none applies.
func (o *rootOptions) target() (conn config.Connection, ok bool, err error) {
	switch {
	case o.dsn != "":
		conn, err = config.ParseDSN(o.dsn)
		if err != nil {
			return conn, false, &app.ErrConfig{Cause: err}
		}
		return conn, true, nil
	case o.connection != "":
		saved, found := o.cfg.Connection(o.connection)
		if !found {
			return conn, false, &app.ErrConfig{Cause: fmt.Errorf("no saved connection named %q", o.connection)}
		}
		conn = *saved
	default:
		saved := config.DefaultConnection(o.cfg)
		if saved == nil {
			return conn, false, nil
		}
		conn = *saved
	}

	if err := config.ResolvePassword(&conn); err != nil {
		return conn, false, &app.ErrConfig{Cause: err}
	}
	return conn, true, nil
}

func (o *rootOptions) newService() *app.Service {
	return app.NewService(database.New, app.WithLogger(o.logger))
}

// connect opens a service on the resolved connection for a one-shot command.
func (o *rootOptions) connect(ctx context.Context) (*app.Service, error) {
	conn, ok, err := o.target()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("no connection: pass --dsn or --connection, or save one from the TUI")
	}

	svc := o.newService()
	if err := svc.Connect(ctx, conn.Driver, conn.DSN()); err != nil {
		return nil, err
	}
	return svc, nil
}

func runTUI(opts *rootOptions, logFile string) error {
	logger := slog.New(slog.DiscardHandler)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	var initial *config.Connection
	if opts.dsn != "" || opts.connection != "" {
		conn, _, err := opts.target()
		if err != nil {
			return err
		}
		initial = &conn
	}

	service := app.NewService(database.New, app.WithLogger(logger))
	model := tui.NewModel(service, opts.cfg, initial, logger)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return service.Disconnect()
}
