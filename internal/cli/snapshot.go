package cli

import (
	"bytes"
	"fmt"
	"image/png"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/fuzzyclock/internal/display"
	"github.com/faizmokh/fuzzyclock/internal/panel"
	"github.com/faizmokh/fuzzyclock/internal/status"
)

func newSnapshotCommand(a *app) *cobra.Command {
	var (
		outFlag   string
		dateFlag  string
		timeFlag  string
		battery   int
		charging  bool
		connected bool
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the panel face to a PNG file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := resolveMoment(dateFlag, timeFlag, time.Now())
			if err != nil {
				return err
			}
			formatter, err := a.cfg.Formatter()
			if err != nil {
				return err
			}

			// No animator: every transition settles immediately.
			slots := display.NewSlots(panel.Width, a.cfg.AnimationDuration, nil)
			c := display.New(formatter, display.Rows(slots), nil, a.log)
			if battery >= 0 {
				c.SetBattery(status.Battery{Percent: battery, Charging: charging, Present: true})
			}
			c.SetWireless(connected)
			c.Update(when)

			canvas := panel.NewCanvas(panel.Width, panel.Height)
			if err := panel.NewRenderer().Draw(canvas, display.Snapshot(slots, c)); err != nil {
				return fmt.Errorf("draw panel: %w", err)
			}

			var buf bytes.Buffer
			if err := png.Encode(&buf, canvas.Image()); err != nil {
				return fmt.Errorf("encode png: %w", err)
			}
			if err := a.paths.WriteFile(outFlag, buf.Bytes(), force); err != nil {
				return err
			}
			a.log.Debug("snapshot %s at %s", outFlag, when.Format("15:04"))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outFlag)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&outFlag, "out", "o", "face.png", "PNG file to write")
	flags.StringVar(&dateFlag, "date", "", "date in YYYY-MM-DD (defaults to today)")
	flags.StringVar(&timeFlag, "time", "", "time in HH:MM (defaults to now)")
	flags.IntVar(&battery, "battery", -1, "battery percentage to show (omit for none)")
	flags.BoolVar(&charging, "charging", false, "show the charging marker")
	flags.BoolVar(&connected, "connected", false, "show the wireless marker")
	flags.BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
