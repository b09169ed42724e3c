package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/fuzzyclock/internal/fuzzy"
)

func newNowCommand(a *app) *cobra.Command {
	var (
		dateFlag string
		timeFlag string
		spoken   bool
	)

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the fuzzy time once and exit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := resolveMoment(dateFlag, timeFlag, time.Now())
			if err != nil {
				return err
			}
			formatter, err := a.cfg.Formatter()
			if err != nil {
				return err
			}

			sample := fuzzy.SampleOf(when)
			out := cmd.OutOrStdout()
			if spoken {
				fmt.Fprintln(out, formatter.Describe(sample))
				return nil
			}

			text := formatter.Format(sample)
			for _, row := range text.Rows {
				if row != "" {
					fmt.Fprintln(out, row)
				}
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, text.Period)
			fmt.Fprintln(out, text.Footer)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "date in YYYY-MM-DD (defaults to today)")
	cmd.Flags().StringVar(&timeFlag, "time", "", "time in HH:MM (defaults to now)")
	cmd.Flags().BoolVar(&spoken, "spoken", false, "print one line in reading order")
	return cmd
}
