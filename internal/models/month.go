package models

import (
	"fmt"
	"strings"
)

// Month is one of the twelve calendar months of the projection horizon.
// The zero value is not a valid month.
type Month int

// The twelve months in projection order.
const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// MonthsPerYear is the fixed length of a projection.
const MonthsPerYear = 12

var englishMonthNames = [MonthsPerYear]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Labels used by the original planner, still found in older scenario files.
var indonesianMonthNames = [MonthsPerYear]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var monthLookup = buildMonthLookup()

func buildMonthLookup() map[string]Month {
	lookup := make(map[string]Month, MonthsPerYear*3)
	for i := 0; i < MonthsPerYear; i++ {
		m := Month(i + 1)
		lookup[strings.ToLower(englishMonthNames[i])] = m
		lookup[strings.ToLower(indonesianMonthNames[i])] = m
		lookup[strings.ToLower(englishMonthNames[i][:3])] = m
	}
	return lookup
}

// AllMonths returns the twelve months in calendar order.
// A fresh slice is returned on every call.
func AllMonths() []Month {
	months := make([]Month, MonthsPerYear)
	for i := range months {
		months[i] = Month(i + 1)
	}
	return months
}

// IsValid reports whether m is one of the twelve months.
func (m Month) IsValid() bool {
	return m >= January && m <= December
}

// Index returns the zero-based position of the month in the projection.
func (m Month) Index() int {
	return int(m) - 1
}

// String returns the English month name.
func (m Month) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return englishMonthNames[m.Index()]
}

// Label returns the month name for the given display locale ("en" or "id").
// Unknown locales fall back to English.
func (m Month) Label(locale string) string {
	if !m.IsValid() {
		return m.String()
	}
	if strings.EqualFold(locale, "id") {
		return indonesianMonthNames[m.Index()]
	}
	return englishMonthNames[m.Index()]
}

// ParseMonth resolves a month label. English names, the legacy Indonesian
// names and three-letter English abbreviations are accepted, case-insensitively.
func ParseMonth(label string) (Month, error) {
	key := strings.ToLower(strings.TrimSpace(label))
	if m, ok := monthLookup[key]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("unknown month %q", label)
}

// MarshalText implements encoding.TextMarshaler.
func (m Month) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("invalid month %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Month) UnmarshalText(text []byte) error {
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
