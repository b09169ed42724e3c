package cli

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/faizmokh/fuzzyclock/internal/alert"
	"github.com/faizmokh/fuzzyclock/internal/clock"
	"github.com/faizmokh/fuzzyclock/internal/emulator"
	"github.com/faizmokh/fuzzyclock/internal/face"
	"github.com/faizmokh/fuzzyclock/internal/panel"
	"github.com/faizmokh/fuzzyclock/internal/status"
	"github.com/faizmokh/fuzzyclock/internal/version"
)

func newWindowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Show the panel face in a desktop window.",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := a.cfg.Formatter()
			if err != nil {
				return err
			}

			f := face.New(formatter, panel.Width, a.cfg.AnimationDuration, alert.New(a.cfg.Alert, cmd.ErrOrStderr(), a.log), a.log)
			defer f.Close()

			sources := face.NewSources(a.cfg, a.log)
			sources.Prime(f.Coordinator())
			battery := make(chan status.Battery, 1)
			link := make(chan bool, 1)

			ctx, cancel := context.WithCancel(a.ctx)
			defer cancel()
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return sources.Run(gctx, battery, link)
			})

			// The window loop stays on this goroutine; ebiten wants the main thread.
			runErr := emulator.Run(gctx, emulator.Options{
				Title:   version.Title(),
				TPS:     a.cfg.FrameRate,
				Face:    f,
				Clock:   clock.Real{},
				Battery: battery,
				Link:    link,
			})
			cancel()
			if err := g.Wait(); err != nil {
				return err
			}
			return runErr
		},
	}
}
