package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/duartev/pioneiro/internal/tui"
)

var watchNote string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Open the interactive stopwatch",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchNote, "note", "", "Note to attach when finishing from the stopwatch")
}

func runWatch(cmd *cobra.Command, args []string) error {
	s := mustStore()
	tr := mustTracker()

	final, err := tea.NewProgram(tui.NewModel(tr)).Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Finish and reset run out here so their output and confirmations use
	// the plain terminal, not the alternate screen.
	switch final.(tui.Model).Outcome {
	case tui.OutcomeFinish:
		entry, err := tr.Finish(s, watchNote)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if entry == nil {
			fmt.Println("Nothing to record: the session has zero length.")
			return nil
		}
		fmt.Printf("Recorded %gmin on %s (entry %s).\n", entry.Minutes, entry.Date, entry.ID)
	case tui.OutcomeReset:
		if err := tr.Reset(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		fmt.Println("Session discarded.")
	}
	return nil
}
