package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pioneiro",
	Short: "Pioneiro – a personal ministry-hour tracker",
	Long: `pioneiro is a single-binary, file-based tracker for volunteer field
service: log hours, run a crash-safe stopwatch, plan your week, track bible
studies and share monthly reports. All data is stored as human-readable JSON
files in ~/.pioneiro/.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(finishCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(remindCmd)
}
