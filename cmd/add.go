package cmd

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/duartev/pioneiro/internal/timecalc"
)

var (
	addDate string
	addNote string
)

var addCmd = &cobra.Command{
	Use:   "add <hours>",
	Short: "Record a service session manually",
	Long: `Record a service session without using the stopwatch.

Hours may be fractional: "pioneiro add 1.5" records 90 minutes.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "Entry date as YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&addNote, "note", "", "Note to attach to the entry")
}

func runAdd(cmd *cobra.Command, args []string) error {
	hours, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid hours %q: %w", args[0], err)
	}

	date := addDate
	if date == "" {
		date = timecalc.DayKey(time.Now())
	}

	minutes := math.Round(hours * 60)

	s := mustStore()
	entry, err := s.AddEntry(date, minutes, addNote)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Recorded %gmin on %s (entry %s).\n", entry.Minutes, entry.Date, entry.ID)
	return nil
}
