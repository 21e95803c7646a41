package report

import (
	"fmt"
	"time"
)

// Session is one attended clinical session that survived eligibility
// filtering and date coercion. LengthMinutes is NaN when the source value
// was not numeric; such sessions are kept but contribute zero hours.
type Session struct {
	Clinician     string
	ClientID      string
	Type          string
	Date          time.Time
	Year          int
	Month         int
	LengthMinutes float64
}

// MonthlyHoursRow is the long-form aggregate: summed hours for one
// clinician in one calendar month.
type MonthlyHoursRow struct {
	Clinician string
	Year      int
	Month     int
	Hours     float64
}

// Period identifies a calendar month observed in the data.
type Period struct {
	Year  int
	Month int
}

// Label renders the wide-table column name for the period, e.g. "2024_3".
func (p Period) Label() string {
	return fmt.Sprintf("%d_%d", p.Year, p.Month)
}

// SummaryRow is one clinician's line in the final wide table. Hours holds
// only the periods the clinician actually worked; absent periods read as
// zero. ActiveCasesKnown distinguishes a clinician missing from the
// caseload table (empty output cell) from one present with some count.
type SummaryRow struct {
	Clinician        string
	Hours            map[Period]float64
	ActiveCases      int
	ActiveCasesKnown bool
}

// Summary is the pivoted final table plus its ordered period columns.
type Summary struct {
	Periods []Period
	Rows    []SummaryRow
}

// LoadStats counts rows that did not make it into the session list.
type LoadStats struct {
	TotalRows  int
	Ineligible int
	BadDates   int
}

func dateOnly(value time.Time) time.Time {
	if value.IsZero() {
		return value
	}
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}
