package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var finishNote string

var finishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Finish the session and record it as a service entry",
	Args:  cobra.NoArgs,
	RunE:  runFinish,
}

func init() {
	finishCmd.Flags().StringVar(&finishNote, "note", "", "Note to attach to the entry")
}

func runFinish(cmd *cobra.Command, args []string) error {
	s := mustStore()
	tr := mustTracker()

	entry, err := tr.Finish(s, finishNote)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if entry == nil {
		fmt.Println("Nothing to record: the session has zero length.")
		return nil
	}

	fmt.Printf("Recorded %gmin on %s (entry %s).\n", entry.Minutes, entry.Date, entry.ID)
	return nil
}
