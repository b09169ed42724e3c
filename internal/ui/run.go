package ui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/faizmokh/fuzzyclock/internal/alert"
	"github.com/faizmokh/fuzzyclock/internal/clock"
	"github.com/faizmokh/fuzzyclock/internal/config"
	"github.com/faizmokh/fuzzyclock/internal/face"
	"github.com/faizmokh/fuzzyclock/internal/logger"
	"github.com/faizmokh/fuzzyclock/internal/status"
)

// Run starts the status watchers and the full-screen clock, returning when
// the user quits or ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	formatter, err := cfg.Formatter()
	if err != nil {
		return err
	}

	// The bell goes to stderr so it never interleaves with frame output.
	f := face.New(formatter, FaceWidth, cfg.AnimationDuration, alert.New(cfg.Alert, os.Stderr, log), log)
	defer f.Close()

	sources := face.NewSources(cfg, log)
	sources.Prime(f.Coordinator())

	battery := make(chan status.Battery, 1)
	link := make(chan bool, 1)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return sources.Run(gctx, battery, link)
	})
	g.Go(func() error {
		defer cancel()
		m := NewModel(Options{
			Face:          f,
			Formatter:     formatter,
			Clock:         clock.Real{},
			FrameInterval: cfg.FrameInterval(),
			Battery:       battery,
			Link:          link,
		})
		_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(gctx)).Run()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("run TUI: %w", err)
		}
		return nil
	})

	return g.Wait()
}
