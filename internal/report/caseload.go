package report

import "time"

type pairKey struct {
	clinician string
	client    string
}

// ActiveCaseload counts, per clinician, the distinct clients whose most
// recent session with that clinician falls within the trailing window.
//
// The window predicate is applied twice: once to restrict the sessions
// considered, and again against each pair's most recent date. With a single
// now snapshot the second pass cannot reject anything the first admitted,
// but it guards the last-seen reduction if the initial restriction ever
// changes, so it stays.
func ActiveCaseload(sessions []Session, now time.Time, windowDays int) map[string]int {
	cutoff := dateOnly(now).AddDate(0, 0, -windowDays)

	lastSeen := map[pairKey]time.Time{}
	for _, s := range sessions {
		if s.Date.Before(cutoff) {
			continue
		}
		key := pairKey{s.Clinician, s.ClientID}
		if current, ok := lastSeen[key]; !ok || s.Date.After(current) {
			lastSeen[key] = s.Date
		}
	}

	counts := map[string]int{}
	for key, last := range lastSeen {
		if last.Before(cutoff) {
			continue
		}
		counts[key.clinician]++
	}
	return counts
}
