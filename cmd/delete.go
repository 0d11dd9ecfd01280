package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Short: "Delete a service entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Do not ask for confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	if !deleteForce && !confirm(fmt.Sprintf("Delete entry %s?", id)) {
		fmt.Println("Aborted.")
		return nil
	}

	s := mustStore()
	if err := s.DeleteEntry(id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Deleted entry %s.\n", id)
	return nil
}
