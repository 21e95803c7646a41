package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadSessions reads the appointment export at path and returns the
// attended clinical sessions for rostered clinicians. Rows failing any
// eligibility predicate are skipped and counted; rows whose date cannot be
// parsed are dropped and counted separately. A missing file, a structurally
// unparseable CSV, or a missing required column is fatal for the run.
func LoadSessions(path string, roster, clinicalTypes map[string]bool) ([]Session, LoadStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, err
	}
	defer file.Close()

	sessions, stats, err := readSessions(file, roster, clinicalTypes)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("%s: %w", path, err)
	}
	return sessions, stats, nil
}

func readSessions(r io.Reader, roster, clinicalTypes map[string]bool) ([]Session, LoadStats, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("unable to read header: %w", err)
	}

	colMap := normalizeHeaders(headers)
	clinicianIdx, ok := findColumn(colMap, []string{"a_schedule", "schedule", "clinician"})
	if !ok {
		return nil, LoadStats{}, errors.New("missing clinician column (a_schedule)")
	}
	clientIdx, ok := findColumn(colMap, []string{"a_centerclientid", "centerclientid", "client_id"})
	if !ok {
		return nil, LoadStats{}, errors.New("missing client id column (a_centerclientid)")
	}
	typeIdx, ok := findColumn(colMap, []string{"a_codedescription", "codedescription", "appointment_type"})
	if !ok {
		return nil, LoadStats{}, errors.New("missing appointment type column (a_codedescription)")
	}
	attendanceIdx, ok := findColumn(colMap, []string{"a_scheduleattendance", "scheduleattendance", "attendance"})
	if !ok {
		return nil, LoadStats{}, errors.New("missing attendance column (a_scheduleattendance)")
	}
	dateIdx, ok := findColumn(colMap, []string{"a_date", "date", "session_date"})
	if !ok {
		return nil, LoadStats{}, errors.New("missing date column (a_date)")
	}
	lengthIdx, ok := findColumn(colMap, []string{"a_length", "length", "duration"})
	if !ok {
		return nil, LoadStats{}, errors.New("missing length column (a_length)")
	}

	var sessions []Session
	stats := LoadStats{}

	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, LoadStats{}, fmt.Errorf("unable to read CSV: %w", err)
		}
		if len(record) == 0 {
			continue
		}
		stats.TotalRows++

		clinician := getValue(record, clinicianIdx)
		clientID := NormalizeClientID(getValue(record, clientIdx))
		apptType := getValue(record, typeIdx)
		attendance := getValue(record, attendanceIdx)

		if !Eligible(attendance, clientID, clinician, apptType, roster, clinicalTypes) {
			stats.Ineligible++
			continue
		}

		date, err := parseSessionDate(getValue(record, dateIdx))
		if err != nil {
			stats.BadDates++
			continue
		}

		sessions = append(sessions, Session{
			Clinician:     clinician,
			ClientID:      clientID,
			Type:          apptType,
			Date:          date,
			Year:          date.Year(),
			Month:         int(date.Month()),
			LengthMinutes: parseLength(getValue(record, lengthIdx)),
		})
	}

	return sessions, stats, nil
}

func normalizeHeaders(headers []string) map[string]int {
	result := make(map[string]int, len(headers))
	for idx, header := range headers {
		normalized := normalizeHeader(header)
		if _, exists := result[normalized]; !exists {
			result[normalized] = idx
		}
	}
	return result
}

func normalizeHeader(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = strings.ReplaceAll(value, " ", "")
	value = strings.ReplaceAll(value, "_", "")
	value = strings.ReplaceAll(value, "-", "")
	return value
}

func findColumn(headers map[string]int, names []string) (int, bool) {
	for _, name := range names {
		if idx, ok := headers[normalizeHeader(name)]; ok {
			return idx, true
		}
	}
	return -1, false
}

func getValue(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
