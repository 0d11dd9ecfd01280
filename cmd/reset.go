package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/duartev/pioneiro/internal/timecalc"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the current session without recording it",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Do not ask for confirmation")
}

func runReset(cmd *cobra.Command, args []string) error {
	tr := mustTracker()

	if tr.Elapsed() == 0 && !tr.Running() {
		fmt.Println("No session to discard.")
		return nil
	}

	if !resetForce {
		prompt := fmt.Sprintf("Discard the current session (%s)?",
			timecalc.FormatDurationHHMMSS(tr.Elapsed()))
		if !confirm(prompt) {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := tr.Reset(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Println("Session discarded.")
	return nil
}
