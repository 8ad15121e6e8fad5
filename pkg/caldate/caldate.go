// Package caldate provides an immutable Gregorian wall-clock date and the
// arithmetic a month-grid calendar needs: month lengths, clamped month
// shifts, ISO week numbers, and display-order weekday helpers.
package caldate

import (
	"fmt"
	"time"
)

// Date is a calendar date with no time-of-day or zone component. Equality
// and ordering consider year, month, and day only. Date is a value type;
// every adjustment returns a new Date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New builds a Date, normalizing out-of-range components the same way
// time.Date does (New(2026, time.February, 30) is March 2, 2026).
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
}

// FromTime truncates a time.Time to its calendar date.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current local date.
func Today() Date {
	return FromTime(time.Now())
}

// Time renders the date as local midnight.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// IsZero reports whether d is the zero value rather than a real date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Compare orders two dates: -1 when d precedes o, +1 when it follows, 0 on
// the same calendar day.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

// Equal reports whether both values name the same calendar day.
func (d Date) Equal(o Date) bool { return d.Compare(o) == 0 }

// Before reports whether d precedes o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d follows o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// AddMonths shifts by whole months, clamping the day to the length of the
// target month: January 31 plus one month is February 28 (29 in a leap
// year), never March 3.
func (d Date) AddMonths(delta int) Date {
	anchor := time.Date(d.Year, d.Month+time.Month(delta), 1, 0, 0, 0, 0, time.Local)
	day := d.Day
	if limit := DaysIn(anchor.Year(), anchor.Month()); day > limit {
		day = limit
	}
	return Date{Year: anchor.Year(), Month: anchor.Month(), Day: day}
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: DaysIn(d.Year, d.Month)}
}

// Weekday returns the native weekday (time.Sunday = 0).
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// WeekdayIndex returns d's column in a week displayed from startDay, where
// startDay counts 0 = Monday through 6 = Sunday.
func (d Date) WeekdayIndex(startDay int) int {
	mondayIdx := (int(d.Weekday()) + 6) % 7
	return ((mondayIdx-startDay)%7 + 7) % 7
}

// ISOWeek returns the ISO-8601 week of year: weeks start Monday and week 1
// contains the year's first Thursday, independent of the display start day.
func (d Date) ISOWeek() int {
	_, week := d.Time().ISOWeek()
	return week
}

// String renders the date in the DD/MM/YYYY entry format.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

// DaysIn returns the number of days in the month, 28 through 31.
func DaysIn(year int, month time.Month) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthName returns the English month name.
func MonthName(month time.Month) string {
	return month.String()
}

// DayLabels returns the seven weekday headers rotated so index 0 is
// startDay (0 = Monday through 6 = Sunday).
func DayLabels(startDay int) []string {
	base := []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}
	startDay = ClampStartDay(startDay)
	labels := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		labels = append(labels, base[(startDay+i)%7])
	}
	return labels
}

// ClampStartDay folds any int onto the 0..6 display-start range.
func ClampStartDay(startDay int) int {
	return (startDay%7 + 7) % 7
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
