package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/fuzzyclock/internal/config"
	"github.com/faizmokh/fuzzyclock/internal/files"
	"github.com/faizmokh/fuzzyclock/internal/logger"
	"github.com/faizmokh/fuzzyclock/internal/ui"
	"github.com/faizmokh/fuzzyclock/internal/version"
)

// skipConfig marks commands that must run even when the config is broken.
const skipConfig = "skip-config"

// app carries what every subcommand needs once flags are parsed.
type app struct {
	ctx        context.Context
	paths      *files.Paths
	configFile string
	cfg        config.Config
	log        *logger.Logger
}

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, paths *files.Paths) *cobra.Command {
	a := &app{ctx: ctx, paths: paths, cfg: config.Default(), log: logger.Discard()}

	cmd := &cobra.Command{
		Use:   version.Name,
		Short: "A fuzzy clock that tells the time in words.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipConfig] == "true" {
				return nil
			}
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closer, err := a.tuiLogger()
			if err != nil {
				return err
			}
			defer closer.Close()
			return ui.Run(a.ctx, a.cfg, log)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default $FUZZYCLOCK_HOME/config.yml)")
	flags.String("locale", "", "phrase table to use (en, fr)")
	flags.String("log-level", "", "off, normal or verbose")
	flags.String("log-file", "", "write logs to this file")

	cmd.AddCommand(
		newNowCommand(a),
		newSnapshotCommand(a),
		newWindowCommand(a),
		newConfigCommand(a),
		newVersionCommand(),
	)

	return cmd
}

// load resolves the effective config and a stderr logger for one-shot commands.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile, a.paths.ConfigFile(), cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.New(cfg.Level(), cmd.ErrOrStderr())
	return nil
}

// tuiLogger keeps log output off the alt screen: it goes to the configured
// log file, or nowhere.
func (a *app) tuiLogger() (*logger.Logger, io.Closer, error) {
	if a.cfg.LogFile == "" {
		return logger.Discard(), io.NopCloser(nil), nil
	}
	path, err := files.ExpandHome(a.cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}
	f, err := tea.LogToFile(path, version.Name)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log := logger.New(a.cfg.Level(), f)
	log.Info("%s starting (locale=%s)", version.Info(), a.cfg.Locale)
	return log, f, nil
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	paths, err := files.NewPaths("")
	if err != nil {
		return err
	}
	cmd := NewRootCommand(ctx, paths)
	return cmd.ExecuteContext(ctx)
}

// Main is a helper used by cmd/fuzzyclock/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
