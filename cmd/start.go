package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/duartev/pioneiro/internal/timecalc"
	"github.com/duartev/pioneiro/internal/tracker"
)

var startCmd = &cobra.Command{
	Use:     "start",
	Aliases: []string{"resume"},
	Short:   "Start or resume the service stopwatch",
	Args:    cobra.NoArgs,
	RunE:    runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	tr := mustTracker()

	if err := tr.Start(); err != nil {
		if errors.Is(err, tracker.ErrAlreadyRunning) {
			fmt.Fprintf(os.Stderr, "Timer already running (%s elapsed).\n",
				timecalc.FormatDurationHHMMSS(tr.Elapsed()))
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if tr.Elapsed() > 0 {
		fmt.Printf("Resumed at %s.\n", timecalc.FormatDurationHHMMSS(tr.Elapsed()))
	} else {
		fmt.Println("Serviço em curso… timer started.")
	}
	return nil
}
