package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.InputPath != "ALL-HOURS.csv" {
		t.Errorf("input_path = %q", cfg.InputPath)
	}
	if cfg.OutputPath != "clinician_summary.csv" {
		t.Errorf("output_path = %q", cfg.OutputPath)
	}
	if len(cfg.Roster) != 13 {
		t.Errorf("roster has %d names, want 13", len(cfg.Roster))
	}
	if len(cfg.ClinicalTypes) != 17 {
		t.Errorf("clinical_types has %d labels, want 17", len(cfg.ClinicalTypes))
	}
	if cfg.CaseloadWindowDays != 60 || cfg.RecencyWindowDays != 90 {
		t.Errorf("windows = %d/%d, want 60/90", cfg.CaseloadWindowDays, cfg.RecencyWindowDays)
	}
	if cfg.Debounce != 2*time.Second {
		t.Errorf("debounce = %s, want 2s", cfg.Debounce)
	}
	if cfg.RunTimeout != 60*time.Second {
		t.Errorf("run_timeout = %s, want 60s", cfg.RunTimeout)
	}
	if !cfg.RosterSet()["Andrew Lim"] {
		t.Error("default roster should include Andrew Lim")
	}
	if !cfg.ClinicalTypeSet()["Crisis"] {
		t.Error("default clinical types should include Crisis")
	}
}

func TestLoadFileOverride(t *testing.T) {
	dir := t.TempDir()
	yaml := "input_path: export.csv\n" +
		"roster:\n" +
		"  - Solo Clinician\n" +
		"caseload_window_days: 30\n" +
		"debounce: 5s\n"
	if err := os.WriteFile(filepath.Join(dir, "clinician-summary.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	chdir(t, dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.InputPath != "export.csv" {
		t.Errorf("input_path = %q, want export.csv", cfg.InputPath)
	}
	if len(cfg.Roster) != 1 || cfg.Roster[0] != "Solo Clinician" {
		t.Errorf("roster = %v", cfg.Roster)
	}
	if cfg.CaseloadWindowDays != 30 {
		t.Errorf("caseload_window_days = %d, want 30", cfg.CaseloadWindowDays)
	}
	if cfg.Debounce != 5*time.Second {
		t.Errorf("debounce = %s, want 5s", cfg.Debounce)
	}
	// Untouched keys keep their defaults.
	if cfg.RecencyWindowDays != 90 {
		t.Errorf("recency_window_days = %d, want 90", cfg.RecencyWindowDays)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	yaml := "caseload_window_days: -5\n"
	if err := os.WriteFile(filepath.Join(dir, "clinician-summary.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	chdir(t, dir)

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for negative window")
	}
}

func TestValidateEmptyRoster(t *testing.T) {
	cfg := &Config{
		InputPath:          "in.csv",
		OutputPath:         "out.csv",
		ClinicalTypes:      []string{"Crisis"},
		CaseloadWindowDays: 60,
		RecencyWindowDays:  90,
		Debounce:           time.Second,
		RunTimeout:         time.Minute,
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty roster")
	}
}

// chdir switches to dir for the duration of the test, restoring the
// previous working directory on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}
