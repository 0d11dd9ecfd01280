package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration for pioneiro, stored in
// ~/.pioneiro/config.json. The file supports single-line // comments for
// documentation purposes.
type Config struct {
	Quote QuoteConfig `json:"quote"`
	Log   LogConfig   `json:"log"`
}

// QuoteConfig holds the settings for the motivational-quote provider.
type QuoteConfig struct {
	// APIKey authenticates against the Gemini API. Empty disables remote
	// quotes; the built-in fallback messages are used instead.
	APIKey string `json:"api_key"`
	// Model is the Gemini model used to generate the message.
	Model string `json:"model"`
	// Disabled turns the remote call off entirely even when a key is set.
	Disabled bool `json:"disabled"`
}

// LogConfig controls the reminder daemon's log output.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level"`
}

const (
	// DefaultModel is the Gemini model used when none is configured.
	DefaultModel = "gemini-3-flash-preview"
	// DefaultLogLevel is used when none is configured.
	DefaultLogLevel = "info"
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		Quote: QuoteConfig{Model: DefaultModel},
		Log:   LogConfig{Level: DefaultLogLevel},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// pioneiro configuration – ~/.pioneiro/config.json
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Edit this file to customise pioneiro behaviour.
{
  // ── Motivational quote (Gemini API) ─────────────────────────────────────
  "quote": {
    // API key for the Gemini API. Leave empty to use only the built-in
    // offline messages.
    "api_key": "",

    // Model used to generate the daily encouragement message.
    "model": "gemini-3-flash-preview",

    // Set to true to never call the remote API, even with a key configured.
    "disabled": false
  },

  // ── Reminder daemon logging ─────────────────────────────────────────────
  "log": {
    // One of: debug, info, warn, error.
    "level": "info"
  }
}
`

// configFilePath returns the path to ~/.pioneiro/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".pioneiro", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.pioneiro/config.json, creating it with annotated defaults on
// first run. Lines starting with // are treated as comments and stripped
// before JSON parsing.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}
	return loadFrom(path)
}

func loadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.Quote.Model == "" {
		cfg.Quote.Model = DefaultModel
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
