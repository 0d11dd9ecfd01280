package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/duartev/pioneiro/internal/aggregate"
	"github.com/duartev/pioneiro/internal/timecalc"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage the weekly service plan",
	Args:  cobra.NoArgs,
	RunE:  runPlanShow,
}

var planToggleCmd = &cobra.Command{
	Use:   "toggle <day>",
	Short: "Toggle a plan day on or off (0=Domingo .. 6=Sábado)",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlanToggle,
}

var planSetCmd = &cobra.Command{
	Use:   "set <day> <minutes>",
	Short: "Set the planned minutes for a day and activate it",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlanSet,
}

func init() {
	planCmd.AddCommand(planToggleCmd)
	planCmd.AddCommand(planSetCmd)
}

func runPlanShow(cmd *cobra.Command, args []string) error {
	s := mustStore()
	plans := s.State().WeeklyPlans

	for _, p := range plans {
		mark := " "
		if p.Active {
			mark = "x"
		}
		fmt.Printf("[%s] %d %-8s %s\n", mark, p.Day, dayNames[p.Day], timecalc.FormatMinutes(p.Minutes))
	}
	fmt.Printf("\nPlanned per week: %s\n",
		timecalc.FormatMinutes(aggregate.PlannedWeeklyMinutes(plans)))
	return nil
}

func parseDay(arg string) (int, error) {
	day, err := strconv.Atoi(arg)
	if err != nil || day < 0 || day > 6 {
		return 0, fmt.Errorf("day must be 0 (Domingo) through 6 (Sábado), got %q", arg)
	}
	return day, nil
}

func runPlanToggle(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}

	s := mustStore()
	p, err := s.TogglePlanDay(day)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if p.Active {
		fmt.Printf("%s activated with %s planned.\n", dayNames[p.Day], timecalc.FormatMinutes(p.Minutes))
	} else {
		fmt.Printf("%s deactivated.\n", dayNames[p.Day])
	}
	return nil
}

func runPlanSet(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}
	minutes, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid minutes %q: %w", args[1], err)
	}

	s := mustStore()
	p, err := s.SetPlanMinutes(day, minutes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("%s planned for %s.\n", dayNames[p.Day], timecalc.FormatMinutes(p.Minutes))
	return nil
}
