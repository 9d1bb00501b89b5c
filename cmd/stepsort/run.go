package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/bethropolis/stepsort/internal/app"
	"github.com/spf13/cobra"
)

var tail int

// runCmd sorts without a terminal UI and prints the narration.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Sort headlessly and print every step",
	Long: `Drives the configured sort to completion without animation, printing
one line per step followed by the sorted values and the final counters.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, closeLog, err := setup()
		if err != nil {
			return err
		}
		defer closeLog()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return app.RunHeadless(ctx, cfg, cmd.OutOrStdout(), app.HeadlessOptions{Tail: tail})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVar(&tail, "tail", 0, "Print only the last N steps")
}
