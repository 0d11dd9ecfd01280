package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/duartev/pioneiro/internal/aggregate"
	"github.com/duartev/pioneiro/internal/timecalc"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show timer status and goal progress",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	now := time.Now()
	s := mustStore()
	tr := mustTracker()
	st := s.State()

	if !st.Profile.Onboarded {
		fmt.Println("No profile yet. Run: pioneiro init --name \"Your Name\"")
		return nil
	}

	fmt.Printf("%s (%s)\n\n", st.Profile.Name, st.Profile.Type)

	if tr.Running() {
		fmt.Printf("Cronómetro: %s  serviço em curso…\n\n", timecalc.FormatDurationHHMMSS(tr.Elapsed()))
	} else if tr.Elapsed() > 0 {
		fmt.Printf("Cronómetro: %s  pausado\n\n", timecalc.FormatDurationHHMMSS(tr.Elapsed()))
	}

	weekly := aggregate.Hours(aggregate.WeeklyMinutes(st.ServiceEntries, now))
	monthly := aggregate.Hours(aggregate.MonthlyMinutes(st.ServiceEntries, now))
	annual := aggregate.Hours(aggregate.AnnualMinutes(st.ServiceEntries, now))

	printProgress("Semana", weekly, st.Profile.Goals.Weekly)
	printProgress("Mês", monthly, st.Profile.Goals.Monthly)
	printProgress("Ano", annual, st.Profile.Goals.Annual)

	studies := aggregate.StudiesInMonth(st.BibleStudies, now)
	fmt.Printf("\nEstudos bíblicos este mês: %d\n", studies)
	return nil
}

func printProgress(label string, hours, goal int) {
	pct := aggregate.GoalPercent(hours, goal)
	const width = 20
	filled := pct * width / 100
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	fmt.Printf("%-8s %s %3d%%  %dh / %dh\n", label, bar, pct, hours, goal)
}
