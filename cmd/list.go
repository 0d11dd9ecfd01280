package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/duartev/pioneiro/internal/timecalc"
)

var (
	listMonth string
	listLimit int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List service entries, newest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listMonth, "month", "", "Only entries in this month (YYYY-MM)")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Show at most this many entries (0 = all)")
}

func runList(cmd *cobra.Command, args []string) error {
	s := mustStore()
	entries := s.State().ServiceEntries

	shown := 0
	for _, e := range entries {
		if listMonth != "" && !strings.HasPrefix(e.Date, listMonth) {
			continue
		}
		if listLimit > 0 && shown >= listLimit {
			break
		}
		line := fmt.Sprintf("%s  %s  %7s", e.ID, e.Date, timecalc.FormatMinutes(e.Minutes))
		if e.Note != "" {
			line += "  " + e.Note
		}
		fmt.Println(line)
		shown++
	}

	if shown == 0 {
		fmt.Println("No entries.")
	}
	return nil
}
