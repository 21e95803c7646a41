package report

import (
	"testing"
	"time"
)

func TestActiveCliniciansWindow(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	sessions := []Session{
		session("Andrew Lim", "1", now.AddDate(0, 0, -95), 60),
		session("Kirsty Png", "2", now.AddDate(0, 0, -10), 60),
	}

	active := ActiveClinicians(sessions, now, 90)
	if active["Andrew Lim"] {
		t.Fatal("clinician whose latest session is 95 days old must not be active")
	}
	if !active["Kirsty Png"] {
		t.Fatal("clinician with a 10-day-old session must be active")
	}
}

func TestFilterMonthlyAndCaseloadIndependently(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	sessions := []Session{
		session("Andrew Lim", "1", now.AddDate(0, 0, -95), 60),
		session("Kirsty Png", "2", now.AddDate(0, 0, -10), 60),
	}

	monthly := MonthlyHours(sessions)
	caseload := ActiveCaseload(sessions, now, 60)
	active := ActiveClinicians(sessions, now, 90)

	filteredMonthly := FilterMonthly(monthly, active)
	if len(filteredMonthly) != 1 || filteredMonthly[0].Clinician != "Kirsty Png" {
		t.Fatalf("expected only Kirsty Png in monthly rows, got %+v", filteredMonthly)
	}

	filteredCaseload := FilterCaseload(caseload, active)
	if _, ok := filteredCaseload["Andrew Lim"]; ok {
		t.Fatal("stale clinician must not survive the caseload filter")
	}
	if filteredCaseload["Kirsty Png"] != 1 {
		t.Fatalf("expected caseload 1 for Kirsty Png, got %d", filteredCaseload["Kirsty Png"])
	}
}
