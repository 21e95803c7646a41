package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

const caseloadColumn = "Active Cases (last 2 months)"

// BuildSummary pivots the long-form monthly rows into one row per clinician
// with one column per observed period, then left-joins the caseload counts.
// A clinician absent from the caseload map keeps ActiveCasesKnown false so
// the writer can emit a blank cell instead of a fake zero.
func BuildSummary(monthly []MonthlyHoursRow, caseload map[string]int) Summary {
	periodSet := map[Period]bool{}
	hours := map[string]map[Period]float64{}

	for _, row := range monthly {
		period := Period{row.Year, row.Month}
		periodSet[period] = true
		if hours[row.Clinician] == nil {
			hours[row.Clinician] = map[Period]float64{}
		}
		hours[row.Clinician][period] += row.Hours
	}

	periods := make([]Period, 0, len(periodSet))
	for period := range periodSet {
		periods = append(periods, period)
	}
	sort.Slice(periods, func(i, j int) bool {
		if periods[i].Year != periods[j].Year {
			return periods[i].Year < periods[j].Year
		}
		return periods[i].Month < periods[j].Month
	})

	clinicians := make([]string, 0, len(hours))
	for clinician := range hours {
		clinicians = append(clinicians, clinician)
	}
	sort.Strings(clinicians)

	rows := make([]SummaryRow, 0, len(clinicians))
	for _, clinician := range clinicians {
		row := SummaryRow{
			Clinician: clinician,
			Hours:     hours[clinician],
		}
		if count, ok := caseload[clinician]; ok {
			row.ActiveCases = count
			row.ActiveCasesKnown = true
		}
		rows = append(rows, row)
	}

	return Summary{Periods: periods, Rows: rows}
}

// WriteCSV overwrites path with the summary table: a header row, then one
// row per clinician. Absent clinician-month combinations are written as 0;
// an unknown caseload is written as an empty cell.
func WriteCSV(summary Summary, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	header := make([]string, 0, len(summary.Periods)+2)
	header = append(header, "Clinician")
	for _, period := range summary.Periods {
		header = append(header, period.Label())
	}
	header = append(header, caseloadColumn)
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, row := range summary.Rows {
		record := make([]string, 0, len(header))
		record = append(record, row.Clinician)
		for _, period := range summary.Periods {
			record = append(record, formatHours(row.Hours[period]))
		}
		if row.ActiveCasesKnown {
			record = append(record, strconv.Itoa(row.ActiveCases))
		} else {
			record = append(record, "")
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// PrintSummary writes the console report: load counters, the per-clinician
// active-case table, and the save confirmation.
func PrintSummary(summary Summary, stats LoadStats, inputPath, outputPath string) {
	fmt.Println("Clinician Session Summary")
	fmt.Println(strings.Repeat("=", 38))
	fmt.Printf("Input: %s\n", inputPath)
	fmt.Printf("Rows read: %d (ineligible %d, bad dates %d)\n", stats.TotalRows, stats.Ineligible, stats.BadDates)

	fmt.Println("\nActive cases for every clinician (last 2 months):")
	if len(summary.Rows) == 0 {
		fmt.Println("No clinicians with recent sessions.")
	}
	for _, row := range summary.Rows {
		if row.ActiveCasesKnown {
			fmt.Printf("%s: %d\n", row.Clinician, row.ActiveCases)
		} else {
			fmt.Printf("%s: -\n", row.Clinician)
		}
	}

	fmt.Printf("\nSummary saved to %s\n", outputPath)
}

func formatHours(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
