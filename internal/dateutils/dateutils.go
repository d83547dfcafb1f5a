// Package dateutils provides the date helpers shared by the pipeline. The
// stats API and all output tables speak ISO dates (YYYY-MM-DD), so the
// helpers stay string-oriented and never guess at other formats.
package dateutils

import (
	"fmt"
	"strconv"
	"time"
)

// DateLayoutISO is the YYYY-MM-DD layout used by the stats API and the
// output tables.
const DateLayoutISO = "2006-01-02"

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// YearStart returns the ISO date of January 1 of the given year.
func YearStart(year int) string {
	return fmt.Sprintf("%d-01-01", year)
}

// YearEnd returns the ISO date of December 31 of the given year.
func YearEnd(year int) string {
	return fmt.Sprintf("%d-12-31", year)
}

// YearOf derives the calendar year from the first four characters of a date
// string. Malformed or missing dates yield nil rather than an error so a
// single odd record cannot abort a whole run.
func YearOf(dateStr string) *int {
	if len(dateStr) < 4 {
		return nil
	}
	year, err := strconv.Atoi(dateStr[:4])
	if err != nil {
		return nil
	}
	return &year
}
