package report

import "strings"

// attendancePresent reports whether the attendance marker records an
// attended session. Blank cells and spelled-out nulls both mean the
// session did not happen.
func attendancePresent(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	return !strings.EqualFold(value, "null")
}

// Eligible applies the four filter predicates as a single conjunction:
// attended, non-empty normalized client id, clinician on the current
// roster, appointment type on the clinical allow-list.
func Eligible(attendance, clientID, clinician, apptType string, roster, clinicalTypes map[string]bool) bool {
	if !attendancePresent(attendance) {
		return false
	}
	if clientID == "" {
		return false
	}
	if !roster[clinician] {
		return false
	}
	return clinicalTypes[apptType]
}
