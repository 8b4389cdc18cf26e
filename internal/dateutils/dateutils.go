// Package dateutils normalizes the textual dates printed on statements to ISO form.
package dateutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayoutISO is the output layout of every normalizer in this package.
const DateLayoutISO = "2006-01-02"

// monthAbbreviations is an explicit English table so normalization does not
// depend on locale or on the exact casing a statement uses.
var monthAbbreviations = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

var (
	monthDayYearRe = regexp.MustCompile(`^([A-Za-z]{3})\s+(\d{1,2}),\s*(\d{4})$`)
	dayMonthYearRe = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]{3})\s+(\d{4})$`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// MonthFromAbbreviation resolves a three-letter English month abbreviation.
func MonthFromAbbreviation(abbr string) (time.Month, bool) {
	m, ok := monthAbbreviations[strings.ToLower(strings.TrimSpace(abbr))]
	return m, ok
}

// NormalizeMonthDate builds an ISO date from its textual parts and rejects
// dates that do not exist on the calendar (e.g. Feb 30).
func NormalizeMonthDate(day, monthAbbr, year string) (string, error) {
	month, ok := MonthFromAbbreviation(monthAbbr)
	if !ok {
		return "", fmt.Errorf("unknown month abbreviation %q", monthAbbr)
	}
	d, err := strconv.Atoi(strings.TrimSpace(day))
	if err != nil {
		return "", fmt.Errorf("invalid day %q: %w", day, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return "", fmt.Errorf("invalid year %q: %w", year, err)
	}

	t := time.Date(y, month, d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d || t.Month() != month || t.Year() != y {
		return "", fmt.Errorf("date %s %s %s does not exist", day, monthAbbr, year)
	}
	return ToISODate(t), nil
}

// NormalizeMonthDayYear converts "Apr 01, 2024" to "2024-04-01".
func NormalizeMonthDayYear(s string) (string, error) {
	m := monthDayYearRe.FindStringSubmatch(CleanDateString(s))
	if m == nil {
		return "", fmt.Errorf("unable to parse date %q, expected 'Mon DD, YYYY'", s)
	}
	return NormalizeMonthDate(m[2], m[1], m[3])
}

// NormalizeDayMonthYear converts "01 Apr 2024" to "2024-04-01".
func NormalizeDayMonthYear(s string) (string, error) {
	m := dayMonthYearRe.FindStringSubmatch(CleanDateString(s))
	if m == nil {
		return "", fmt.Errorf("unable to parse date %q, expected 'DD Mon YYYY'", s)
	}
	return NormalizeMonthDate(m[1], m[2], m[3])
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CleanDateString trims and collapses internal whitespace.
func CleanDateString(dateStr string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}
