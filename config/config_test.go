package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{"backend":"sqlite","slot":"friday"}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend != BackendSQLite || cfg.Slot != "friday" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.DBPath != Default().DBPath || cfg.SavePath != Default().SavePath {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{"backend":"redis","slot":"friday"}`))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if cfg.Slot != "friday" {
		t.Fatalf("valid file values lost: %+v", cfg)
	}
}

func TestRepairResetsOnlyInvalidFields(t *testing.T) {
	cfg := Config{Backend: "redis", SavePath: "mine.json", DBPath: "", Slot: "friday", Debug: true}
	fixed, problems := cfg.Repair()
	if len(problems) != 2 {
		t.Fatalf("expected 2 problems, got %v", problems)
	}
	for _, p := range problems {
		if !errors.Is(p, ErrInvalid) {
			t.Fatalf("expected ErrInvalid, got %v", p)
		}
	}
	want := Config{Backend: BackendFile, SavePath: "mine.json", DBPath: Default().DBPath, Slot: "friday", Debug: true}
	if fixed != want {
		t.Fatalf("expected %+v, got %+v", want, fixed)
	}
	if err := fixed.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestRepairKeepsValidConfig(t *testing.T) {
	cfg := Default()
	cfg.Backend = BackendSQLite
	fixed, problems := cfg.Repair()
	if len(problems) != 0 || fixed != cfg {
		t.Fatalf("expected no change, got %+v and %v", fixed, problems)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	if _, err := Load(writeConfig(t, `{"backend":`)); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
