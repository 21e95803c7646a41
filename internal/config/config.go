package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config carries everything the pipeline and the watcher need. The roster
// and the clinical-type allow-list are configuration, not data: clinicians
// who leave must be removed here, new clinicians added here.
type Config struct {
	InputPath  string `mapstructure:"input_path"`
	OutputPath string `mapstructure:"output_path"`

	Roster        []string `mapstructure:"roster"`
	ClinicalTypes []string `mapstructure:"clinical_types"`

	CaseloadWindowDays int `mapstructure:"caseload_window_days"`
	RecencyWindowDays  int `mapstructure:"recency_window_days"`

	// Watcher settings.
	Debounce        time.Duration `mapstructure:"debounce"`
	RunTimeout      time.Duration `mapstructure:"run_timeout"`
	PipelineCommand string        `mapstructure:"pipeline_command"`
}

var defaultRoster = []string{
	"Andrew Lim", "Claudia Stefanie", "Dominic Yeo", "Goh Zhengqin", "Haikel",
	"John Leow", "Kirsty Png", "Leong Yee Teng Janice", "Ng Xiao Hui", "Oliver Tan",
	"Seanna Neo", "Soon Jiaying", "Tan Siew Kei Joanna Ashley",
}

var defaultClinicalTypes = []string{
	"Wellbeing Individual Check-In",
	"Wellbeing Individual Counselling Session",
	"Couples Counselling",
	"Crisis",
	"Groupwork",
	"Client Contact",
	"Communication (External)",
	"Communication (Internal)",
	"Communication (Respondent)",
	"Accompaniment (Faculty/HRP)",
	"Accompaniment (Medical)",
	"Accompaniment (NUS Adjudication)",
	"Accompaniment (NUS Investigation)",
	"Accompaniment (Other)",
	"Accompaniment (Police)",
	"MHRTW-Accompaniment",
	"MHRTW-Communication",
}

// Load reads clinician-summary.yaml from the working directory when present
// and falls back to embedded defaults otherwise. Both binaries run with no
// arguments, so this file is the only override surface.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("clinician-summary")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("input_path", "ALL-HOURS.csv")
	v.SetDefault("output_path", "clinician_summary.csv")
	v.SetDefault("roster", defaultRoster)
	v.SetDefault("clinical_types", defaultClinicalTypes)
	v.SetDefault("caseload_window_days", 60)
	v.SetDefault("recency_window_days", 90)
	v.SetDefault("debounce", "2s")
	v.SetDefault("run_timeout", "60s")
	v.SetDefault("pipeline_command", "clinician-summary")

	// The config file is optional; only a malformed file is an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can produce a meaningful report.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input_path is required")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output_path is required")
	}
	if len(c.Roster) == 0 {
		return fmt.Errorf("roster must list at least one clinician")
	}
	if len(c.ClinicalTypes) == 0 {
		return fmt.Errorf("clinical_types must list at least one appointment type")
	}
	if c.CaseloadWindowDays <= 0 {
		return fmt.Errorf("caseload_window_days must be positive, got %d", c.CaseloadWindowDays)
	}
	if c.RecencyWindowDays <= 0 {
		return fmt.Errorf("recency_window_days must be positive, got %d", c.RecencyWindowDays)
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive, got %s", c.Debounce)
	}
	if c.RunTimeout <= 0 {
		return fmt.Errorf("run_timeout must be positive, got %s", c.RunTimeout)
	}
	return nil
}

// RosterSet returns the roster as a membership set.
func (c *Config) RosterSet() map[string]bool {
	set := make(map[string]bool, len(c.Roster))
	for _, name := range c.Roster {
		set[name] = true
	}
	return set
}

// ClinicalTypeSet returns the appointment-type allow-list as a membership set.
func (c *Config) ClinicalTypeSet() map[string]bool {
	set := make(map[string]bool, len(c.ClinicalTypes))
	for _, label := range c.ClinicalTypes {
		set[label] = true
	}
	return set
}
