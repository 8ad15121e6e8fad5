// Package maskinput incrementally shapes typed digits into a DD/MM/YYYY
// date string and resolves complete entries into calendar dates.
package maskinput

import (
	"strconv"
	"strings"
	"time"

	"tableflip.dev/datepick/pkg/caldate"
)

// Pattern is the shape the mask enforces.
const Pattern = "DD/MM/YYYY"

const (
	maxDigits = 8
	fullLen   = len(Pattern)
)

// Format strips every non-digit from raw, caps the result at eight digits,
// and re-inserts the slash separators after the day and month groups.
// Partial input is returned as-is shaped text; Format never fails.
func Format(raw string) string {
	var digits []byte
	for i := 0; i < len(raw) && len(digits) < maxDigits; i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	var b strings.Builder
	b.Grow(fullLen)
	for i, ch := range digits {
		if i == 2 || i == 4 {
			b.WriteByte('/')
		}
		b.WriteByte(ch)
	}
	return b.String()
}

// Resolve reports the date encoded by a complete masked string. Anything
// shorter than the full mask, and any numerically-parseable but
// calendar-invalid entry such as 30/02/2026, yields ok == false. Overflow is
// caught by round-tripping through date normalization and requiring the day
// and month to survive unchanged. There is no error value: incomplete or
// invalid entries are rejected silently.
func Resolve(masked string) (caldate.Date, bool) {
	if len(masked) != fullLen {
		return caldate.Date{}, false
	}
	day, err := strconv.Atoi(masked[0:2])
	if err != nil {
		return caldate.Date{}, false
	}
	month, err := strconv.Atoi(masked[3:5])
	if err != nil {
		return caldate.Date{}, false
	}
	year, err := strconv.Atoi(masked[6:10])
	if err != nil {
		return caldate.Date{}, false
	}
	if month < 1 || month > 12 || year < 1 {
		return caldate.Date{}, false
	}
	date := caldate.New(year, time.Month(month), day)
	if date.Day != day || date.Month != time.Month(month) {
		return caldate.Date{}, false
	}
	return date, true
}
