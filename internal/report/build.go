package report

import (
	"time"

	"clinician-hours-summary/internal/config"
)

// Build runs the whole pipeline against cfg.InputPath: load and filter,
// aggregate monthly hours, compute the active caseload, restrict both
// tables to recency-active clinicians, and pivot into the final summary.
// now must be captured once by the caller; the caseload and recency windows
// are both anchored to the same snapshot so the three filtered views agree
// on their boundaries.
func Build(cfg *config.Config, now time.Time) (Summary, LoadStats, error) {
	sessions, stats, err := LoadSessions(cfg.InputPath, cfg.RosterSet(), cfg.ClinicalTypeSet())
	if err != nil {
		return Summary{}, LoadStats{}, err
	}

	monthly := MonthlyHours(sessions)
	caseload := ActiveCaseload(sessions, now, cfg.CaseloadWindowDays)

	active := ActiveClinicians(sessions, now, cfg.RecencyWindowDays)
	monthly = FilterMonthly(monthly, active)
	caseload = FilterCaseload(caseload, active)

	return BuildSummary(monthly, caseload), stats, nil
}
