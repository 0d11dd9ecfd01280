package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingWritesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom on missing file: %v", err)
	}
	if cfg.Quote.Model != DefaultModel {
		t.Errorf("Model = %q, want %q", cfg.Quote.Model, DefaultModel)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}

	// The annotated template must have been written and be loadable.
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("template not written: %v", err)
	}
	again, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom on written template: %v", err)
	}
	if again != cfg {
		t.Errorf("template round trip mismatch: %+v vs %+v", again, cfg)
	}
}

func TestLoadFromStripsCommentsAndFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `// user-edited config
{
  // only the API key is set
  "quote": {
    "api_key": "test-key"
  }
}
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom: %v", err)
	}
	if cfg.Quote.APIKey != "test-key" {
		t.Errorf("APIKey = %q, want %q", cfg.Quote.APIKey, "test-key")
	}
	if cfg.Quote.Model != DefaultModel {
		t.Errorf("Model default not applied: %q", cfg.Quote.Model)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Level default not applied: %q", cfg.Log.Level)
	}
}

func TestLoadFromInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := loadFrom(path); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}
