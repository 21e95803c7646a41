package report

import "time"

// ActiveClinicians returns the set of clinicians with at least one session
// inside the trailing window. Only these clinicians appear in the final
// report.
func ActiveClinicians(sessions []Session, now time.Time, windowDays int) map[string]bool {
	cutoff := dateOnly(now).AddDate(0, 0, -windowDays)
	active := map[string]bool{}
	for _, s := range sessions {
		if !s.Date.Before(cutoff) {
			active[s.Clinician] = true
		}
	}
	return active
}

// FilterMonthly restricts monthly rows to clinicians in the active set.
func FilterMonthly(rows []MonthlyHoursRow, active map[string]bool) []MonthlyHoursRow {
	filtered := make([]MonthlyHoursRow, 0, len(rows))
	for _, row := range rows {
		if active[row.Clinician] {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// FilterCaseload restricts caseload counts to clinicians in the active set.
func FilterCaseload(counts map[string]int, active map[string]bool) map[string]int {
	filtered := make(map[string]int, len(counts))
	for clinician, count := range counts {
		if active[clinician] {
			filtered[clinician] = count
		}
	}
	return filtered
}
