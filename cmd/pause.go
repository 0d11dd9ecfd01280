package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/duartev/pioneiro/internal/timecalc"
	"github.com/duartev/pioneiro/internal/tracker"
)

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the running stopwatch",
	Args:  cobra.NoArgs,
	RunE:  runPause,
}

func runPause(cmd *cobra.Command, args []string) error {
	tr := mustTracker()

	if err := tr.Pause(); err != nil {
		if errors.Is(err, tracker.ErrNotRunning) {
			fmt.Fprintln(os.Stderr, "No running timer to pause.")
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Paused at %s.\n", timecalc.FormatDurationHHMMSS(tr.Elapsed()))
	return nil
}
