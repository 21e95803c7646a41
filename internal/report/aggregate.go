package report

import (
	"math"
	"sort"
)

type monthKey struct {
	clinician string
	year      int
	month     int
}

// MonthlyHours sums session hours per clinician per calendar month. A NaN
// length contributes nothing; the session still anchors its month in the
// output when it is the only one there. Rows come back sorted by clinician,
// year, month so downstream consumers are deterministic.
func MonthlyHours(sessions []Session) []MonthlyHoursRow {
	totals := map[monthKey]float64{}
	for _, s := range sessions {
		key := monthKey{s.Clinician, s.Year, s.Month}
		if math.IsNaN(s.LengthMinutes) {
			totals[key] += 0
			continue
		}
		totals[key] += s.LengthMinutes / 60
	}

	rows := make([]MonthlyHoursRow, 0, len(totals))
	for key, hours := range totals {
		rows = append(rows, MonthlyHoursRow{
			Clinician: key.clinician,
			Year:      key.year,
			Month:     key.month,
			Hours:     hours,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Clinician != rows[j].Clinician {
			return rows[i].Clinician < rows[j].Clinician
		}
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return rows[i].Month < rows[j].Month
	})
	return rows
}
