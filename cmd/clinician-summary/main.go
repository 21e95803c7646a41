package main

import (
	"fmt"
	"os"
	"time"

	"clinician-hours-summary/internal/config"
	"clinician-hours-summary/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(err)
	}

	// Single clock snapshot for the whole run; the caseload and recency
	// windows must agree on their boundaries.
	now := time.Now()

	summary, stats, err := report.Build(cfg, now)
	if err != nil {
		exitWithError(err)
	}

	if err := report.WriteCSV(summary, cfg.OutputPath); err != nil {
		exitWithError(err)
	}

	report.PrintSummary(summary, stats, cfg.InputPath, cfg.OutputPath)
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
