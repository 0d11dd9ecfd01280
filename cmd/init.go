package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/duartev/pioneiro/internal/model"
)

var (
	initName         string
	initCongregation string
	initGroup        string
	initAuxiliar     bool
	initAnnualGoal   int
	initMonthlyGoal  int
	initWeeklyGoal   int
	initReminderHour int
	initNoReminders  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up your pioneer profile",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Your name (required)")
	initCmd.Flags().StringVar(&initCongregation, "congregation", "", "Congregation name")
	initCmd.Flags().StringVar(&initGroup, "group", "", "Service group number")
	initCmd.Flags().BoolVar(&initAuxiliar, "auxiliar", false, "Auxiliary pioneer (default regular)")
	initCmd.Flags().IntVar(&initAnnualGoal, "annual", 600, "Annual hour goal")
	initCmd.Flags().IntVar(&initMonthlyGoal, "monthly", 50, "Monthly hour goal")
	initCmd.Flags().IntVar(&initWeeklyGoal, "weekly", 12, "Weekly hour goal")
	initCmd.Flags().IntVar(&initReminderHour, "reminder-hour", 19, "Hour of day (0-23) for the service-day reminder")
	initCmd.Flags().BoolVar(&initNoReminders, "no-reminders", false, "Disable the next-day service reminders")
}

func runInit(cmd *cobra.Command, args []string) error {
	if initName == "" {
		return fmt.Errorf("--name is required")
	}
	if initReminderHour < 0 || initReminderHour > 23 {
		return fmt.Errorf("--reminder-hour must be between 0 and 23, got %d", initReminderHour)
	}
	for flag, goal := range map[string]int{
		"--annual": initAnnualGoal, "--monthly": initMonthlyGoal, "--weekly": initWeeklyGoal,
	} {
		if goal < 0 {
			return fmt.Errorf("%s must not be negative, got %d", flag, goal)
		}
	}

	s := mustStore()
	profile := s.Profile()
	if profile.Onboarded && !confirm("A profile already exists. Overwrite it?") {
		fmt.Println("Aborted.")
		return nil
	}

	profile = model.DefaultProfile()
	profile.Name = initName
	profile.Congregation = initCongregation
	profile.GroupNumber = initGroup
	if initAuxiliar {
		profile.Type = model.PioneerAuxiliar
	}
	profile.Goals = model.Goals{Annual: initAnnualGoal, Monthly: initMonthlyGoal, Weekly: initWeeklyGoal}
	profile.ReminderHour = initReminderHour
	profile.RemindersEnabled = !initNoReminders
	profile.Onboarded = true

	if err := s.UpdateProfile(profile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Bem-vindo, %s! Profile saved.\n", profile.Name)
	fmt.Printf("Goals: %dh/year, %dh/month, %dh/week.\n",
		profile.Goals.Annual, profile.Goals.Monthly, profile.Goals.Weekly)
	return nil
}
