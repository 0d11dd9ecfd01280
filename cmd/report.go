package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/duartev/pioneiro/internal/report"
)

var (
	reportShare bool
	reportChart bool
	reportCSV   bool
	reportJSON  bool
	reportPDF   string
	reportPNG   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show or export the monthly service report",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportShare, "share", false, "Print the shareable WhatsApp-style message")
	reportCmd.Flags().BoolVar(&reportChart, "chart", false, "Print the 6-month evolution chart")
	reportCmd.Flags().BoolVar(&reportCSV, "csv", false, "Print all service entries as CSV")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Print the report summary as JSON")
	reportCmd.Flags().StringVar(&reportPDF, "pdf", "", "Write the report as a PDF to this path")
	reportCmd.Flags().StringVar(&reportPNG, "png", "", "Write the report card as a PNG to this path")
}

func runReport(cmd *cobra.Command, args []string) error {
	now := time.Now()
	s := mustStore()
	st := s.State()
	summary := report.Build(st, now)

	switch {
	case reportShare:
		fmt.Println(summary.ShareText())
	case reportChart:
		fmt.Print(summary.Chart())
	case reportCSV:
		fmt.Print(report.CSV(st.ServiceEntries))
	case reportJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	default:
		printSummary(summary)
	}

	if reportPDF != "" {
		if err := summary.WritePDF(reportPDF); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		fmt.Printf("Wrote %s\n", reportPDF)
	}
	if reportPNG != "" {
		if err := summary.WritePNG(reportPNG); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		fmt.Printf("Wrote %s\n", reportPNG)
	}
	return nil
}

func printSummary(s report.Summary) {
	fmt.Printf("Relatório de Serviço - %s %d\n\n", s.MonthName, s.Year)
	if s.MinutesRem > 0 {
		fmt.Printf("Horas:            %dh %dmin\n", s.Hours, s.MinutesRem)
	} else {
		fmt.Printf("Horas:            %dh\n", s.Hours)
	}
	fmt.Printf("Estudos bíblicos: %d\n", s.Studies)
	fmt.Printf("Meta mensal:      %dh (%d%%)\n", s.Profile.Goals.Monthly, s.GoalPercent)
}
