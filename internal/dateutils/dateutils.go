// Package dateutils normalizes the Spanish short dates printed on
// statements ("15 ene 2024") into calendar dates.
package dateutils

import (
	"strconv"
	"strings"
	"time"

	"fjacquet/extracto/internal/logging"
	"fjacquet/extracto/internal/models"
)

// Layouts used when rendering dates.
const (
	DateLayoutDMY = "02/01/2006"
	DateLayoutISO = "2006-01-02"
)

// monthByAbbreviation is the fixed month table. It is built once and only
// read afterwards.
var monthByAbbreviation = map[string]time.Month{
	"ene": time.January,
	"feb": time.February,
	"mar": time.March,
	"abr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"ago": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dic": time.December,
}

var abbreviationByMonth = func() map[time.Month]string {
	out := make(map[time.Month]string, len(monthByAbbreviation))
	for abbr, m := range monthByAbbreviation {
		out[m] = abbr
	}
	return out
}()

// MonthFromAbbreviation looks up a three-letter Spanish month abbreviation,
// ignoring case.
func MonthFromAbbreviation(abbr string) (time.Month, bool) {
	m, ok := monthByAbbreviation[strings.ToLower(strings.TrimSpace(abbr))]
	return m, ok
}

// AbbreviationForMonth is the inverse of MonthFromAbbreviation. It returns
// "" for an out-of-range month.
func AbbreviationForMonth(m time.Month) string {
	return abbreviationByMonth[m]
}

// CleanDateString trims s and collapses inner whitespace runs.
func CleanDateString(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ParseStatementDate parses "<day> <abbr> <yyyy>". ok is false for unknown
// months, malformed input and days that do not exist in that month.
func ParseStatementDate(raw string) (time.Time, bool) {
	parts := strings.Fields(raw)
	if len(parts) != 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) > 2 {
		return time.Time{}, false
	}
	month, ok := MonthFromAbbreviation(parts[1])
	if !ok {
		return time.Time{}, false
	}
	if len(parts[2]) != 4 {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}

// FormatDMY renders t as dd/mm/yyyy.
func FormatDMY(t time.Time) string {
	return t.Format(DateLayoutDMY)
}

// NormalizeRecords returns copies of records with Date filled in from
// DateOriginal. Records whose date does not parse keep a zero Date and stay
// in the result. The distinct failing strings are returned in first-seen
// order and logged once.
func NormalizeRecords(records []models.TransactionRecord, logger logging.Logger) ([]models.TransactionRecord, []string) {
	out := make([]models.TransactionRecord, len(records))
	var failed []string
	seen := make(map[string]bool)

	for i, r := range records {
		if d, ok := ParseStatementDate(r.DateOriginal); ok {
			out[i] = r.WithDate(d)
			continue
		}
		out[i] = r.WithDate(time.Time{})
		if !seen[r.DateOriginal] {
			seen[r.DateOriginal] = true
			failed = append(failed, r.DateOriginal)
		}
	}

	if len(failed) > 0 && logger != nil {
		logger.Warn("Some dates could not be converted",
			logging.F(logging.FieldCount, len(failed)),
			logging.F("dates", strings.Join(failed, "; ")))
	}
	return out, failed
}
