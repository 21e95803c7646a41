package report

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Day-first layouts; "2/1/2006" accepts both single and double digit day
// and month. ISO forms come last as a fallback for re-exported files.
var dateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2/1/06",
	"2/1/2006 15:04",
	"2/1/2006 15:04:05",
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// parseSessionDate parses the session date assuming day-before-month
// ordering and truncates it to the day.
func parseSessionDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty date")
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return dateOnly(parsed), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format: %s", value)
}

// parseLength parses the session length in minutes. An unparseable value
// becomes NaN rather than dropping the row; NaN contributes zero when
// summed.
func parseLength(value string) float64 {
	value = strings.TrimSpace(value)
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return math.NaN()
	}
	return parsed
}
