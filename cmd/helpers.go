package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/duartev/pioneiro/internal/state"
	"github.com/duartev/pioneiro/internal/storage"
	"github.com/duartev/pioneiro/internal/tracker"
)

// dayNames are the Portuguese weekday names, indexed 0=Sunday..6=Saturday to
// match DayPlan.Day.
var dayNames = [7]string{
	"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado",
}

// mustBase resolves the data directory or exits.
func mustBase() string {
	base, err := storage.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return base
}

// mustStore opens the state store or exits.
func mustStore() *state.Store {
	s, err := state.Open(mustBase())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return s
}

// mustTracker loads the stopwatch or exits.
func mustTracker() *tracker.Tracker {
	tr, err := tracker.Load(mustBase())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return tr
}

// confirm asks a yes/no question on stdin; anything but y/yes/s/sim is no.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "sim":
		return true
	}
	return false
}
