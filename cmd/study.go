package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Manage bible studies",
	Args:  cobra.NoArgs,
	RunE:  runStudyList,
}

var studyAddNotes string

var studyAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a bible study for the current month",
	Args:  cobra.ExactArgs(1),
	RunE:  runStudyAdd,
}

var studySessionsCmd = &cobra.Command{
	Use:   "sessions <study-id> <delta>",
	Short: "Adjust a study's session count (e.g. +1 or -1)",
	Args:  cobra.ExactArgs(2),
	RunE:  runStudySessions,
}

var studyNoteCmd = &cobra.Command{
	Use:   "note <study-id> <notes>",
	Short: "Replace a study's notes",
	Args:  cobra.ExactArgs(2),
	RunE:  runStudyNote,
}

var studyRemoveForce bool

var studyRemoveCmd = &cobra.Command{
	Use:   "remove <study-id>",
	Short: "Remove a bible study",
	Args:  cobra.ExactArgs(1),
	RunE:  runStudyRemove,
}

func init() {
	studyAddCmd.Flags().StringVar(&studyAddNotes, "notes", "", "Free-form notes about the study")
	studyRemoveCmd.Flags().BoolVarP(&studyRemoveForce, "force", "f", false, "Do not ask for confirmation")
	studyCmd.AddCommand(studyAddCmd)
	studyCmd.AddCommand(studySessionsCmd)
	studyCmd.AddCommand(studyNoteCmd)
	studyCmd.AddCommand(studyRemoveCmd)
}

func runStudyList(cmd *cobra.Command, args []string) error {
	s := mustStore()
	studies := s.State().BibleStudies

	if len(studies) == 0 {
		fmt.Println("No bible studies.")
		return nil
	}
	for _, st := range studies {
		line := fmt.Sprintf("%s  %s  %-20s %d sessões", st.ID, st.Month, st.Name, st.Sessions)
		if st.Notes != "" {
			line += "  " + st.Notes
		}
		fmt.Println(line)
	}
	return nil
}

func runStudyAdd(cmd *cobra.Command, args []string) error {
	s := mustStore()
	study, err := s.AddStudy(args[0], studyAddNotes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Added study %q for %s (id %s).\n", study.Name, study.Month, study.ID)
	return nil
}

func runStudySessions(cmd *cobra.Command, args []string) error {
	delta, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid delta %q: %w", args[1], err)
	}

	s := mustStore()
	study, err := s.AdjustStudySessions(args[0], delta)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("%s now has %d sessões.\n", study.Name, study.Sessions)
	return nil
}

func runStudyNote(cmd *cobra.Command, args []string) error {
	s := mustStore()
	if err := s.SetStudyNotes(args[0], args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Notes updated.")
	return nil
}

func runStudyRemove(cmd *cobra.Command, args []string) error {
	id := args[0]
	if !studyRemoveForce && !confirm(fmt.Sprintf("Remove study %s?", id)) {
		fmt.Println("Aborted.")
		return nil
	}

	s := mustStore()
	if err := s.RemoveStudy(id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Removed study %s.\n", id)
	return nil
}
