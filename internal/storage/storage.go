package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/duartev/pioneiro/internal/model"
)

const (
	stateFile = "state.json"
	timerFile = "timer.json"
)

// BaseDir returns the root data directory (~/.pioneiro).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".pioneiro"), nil
}

// LoadState loads the whole application state. Returns a fresh default state
// if no file exists yet.
func LoadState(base string) (model.AppState, error) {
	path := filepath.Join(base, stateFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return model.NewAppState(), nil
	}
	if err != nil {
		return model.AppState{}, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var st model.AppState
	if err := json.Unmarshal(data, &st); err != nil {
		// Back up corrupt file and abort.
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		return model.AppState{}, fmt.Errorf("corrupt JSON in %s (backed up to %s): %w", path, backupPath, err)
	}

	if st.SchemaVersion > model.SchemaVersion {
		return model.AppState{}, fmt.Errorf(
			"state file %s has schema version %d, this binary understands up to %d; upgrade pioneiro",
			path, st.SchemaVersion, model.SchemaVersion)
	}
	// Files written before versioning carry version 0; adopt the current one.
	st.SchemaVersion = model.SchemaVersion

	if len(st.WeeklyPlans) != 7 {
		st.WeeklyPlans = model.InitialWeeklyPlans()
	}
	if st.ServiceEntries == nil {
		st.ServiceEntries = []model.ServiceEntry{}
	}
	if st.BibleStudies == nil {
		st.BibleStudies = []model.BibleStudy{}
	}
	return st, nil
}

// SaveState atomically writes the whole application state.
func SaveState(base string, st model.AppState) error {
	st.SchemaVersion = model.SchemaVersion
	return writeJSON(filepath.Join(base, stateFile), st)
}

// LoadTimer loads the stopwatch counters. Returns a zero TimerState if none
// was ever persisted.
func LoadTimer(base string) (model.TimerState, error) {
	path := filepath.Join(base, timerFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return model.TimerState{}, nil
	}
	if err != nil {
		return model.TimerState{}, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var ts model.TimerState
	if err := json.Unmarshal(data, &ts); err != nil {
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		return model.TimerState{}, fmt.Errorf("corrupt JSON in %s (backed up to %s): %w", path, backupPath, err)
	}
	return ts, nil
}

// SaveTimer atomically writes the stopwatch counters.
func SaveTimer(base string, ts model.TimerState) error {
	return writeJSON(filepath.Join(base, timerFile), ts)
}

// ClearTimer removes the persisted stopwatch counters.
func ClearTimer(base string) error {
	err := os.Remove(filepath.Join(base, timerFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage error clearing timer: %w", err)
	}
	return nil
}

// writeJSON atomically writes v as indented JSON: write to temp file then rename.
func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
