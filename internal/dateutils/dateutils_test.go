package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthFromAbbreviation(t *testing.T) {
	tests := []struct {
		abbr   string
		want   time.Month
		wantOK bool
	}{
		{"Jan", time.January, true},
		{"apr", time.April, true},
		{"DEC", time.December, true},
		{" Sep ", time.September, true},
		{"Sept", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.abbr, func(t *testing.T) {
			got, ok := MonthFromAbbreviation(tc.abbr)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeMonthDayYear(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"phonepe date", "Apr 01, 2024", "2024-04-01", false},
		{"lower-case month", "mar 15, 2024", "2024-03-15", false},
		{"single digit day", "May 7, 2023", "2023-05-07", false},
		{"extra spaces", "  Dec   31,  2023 ", "2023-12-31", false},
		{"leap day", "Feb 29, 2024", "2024-02-29", false},
		{"impossible date", "Feb 30, 2024", "", true},
		{"non leap year", "Feb 29, 2023", "", true},
		{"unknown month", "Foo 01, 2024", "", true},
		{"wrong order", "01 Apr 2024", "", true},
		{"empty", "", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeMonthDayYear(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeDayMonthYear(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"sbi date", "01 Apr 2024", "2024-04-01", false},
		{"upper-case month", "15 MAR 2024", "2024-03-15", false},
		{"single digit day", "7 Jan 2025", "2025-01-07", false},
		{"impossible date", "31 Apr 2024", "", true},
		{"comma form", "Apr 01, 2024", "", true},
		{"garbage", "tomorrow", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeDayMonthYear(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeMonthDate_InvalidParts(t *testing.T) {
	_, err := NormalizeMonthDate("x", "Jan", "2024")
	assert.Error(t, err)
	_, err = NormalizeMonthDate("01", "Jan", "year")
	assert.Error(t, err)
	_, err = NormalizeMonthDate("00", "Jan", "2024")
	assert.Error(t, err)
}

func TestToISODate(t *testing.T) {
	assert.Equal(t, "2024-04-01", ToISODate(time.Date(2024, time.April, 1, 23, 59, 0, 0, time.UTC)))
}
