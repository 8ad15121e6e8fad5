// Package grid builds the ordered cell sequence a month view renders: a
// week-number gutter, blank padding in the ragged first week, and one cell
// per day of the month.
package grid

import (
	"iter"
	"time"

	"tableflip.dev/datepick/pkg/caldate"
)

// RowLen is the width of a complete rendered week: one week-number slot
// followed by seven day slots.
const RowLen = 8

// Kind discriminates the three cell shapes.
type Kind int

const (
	// Blank pads day slots before the first of the month.
	Blank Kind = iota
	// Day carries a calendar date.
	Day
	// Week carries an ISO week number in the leading gutter slot.
	Week
)

// Cell is one slot in the month grid. Date is meaningful only for Day
// cells and WeekNumber only for Week cells.
type Cell struct {
	Kind       Kind
	Date       caldate.Date
	WeekNumber int
}

// Month yields the cells covering one month, with display weeks starting on
// startDay (0 = Monday through 6 = Sunday). The sequence is lazy and
// restartable. Emission order:
//
//   - when day 1 does not fall on startDay, a week-number cell for the first
//     visible date (which belongs to the previous month) followed by one
//     blank per skipped day slot;
//   - a week-number cell ahead of every date that starts a display week,
//     including day 1 itself when the month begins on startDay;
//   - one date cell per day of the month.
//
// Every complete row is exactly RowLen cells. No trailing padding is
// emitted; Rows pads the final week for renderers that need it.
func Month(year int, month time.Month, startDay int) iter.Seq[Cell] {
	startDay = caldate.ClampStartDay(startDay)
	return func(yield func(Cell) bool) {
		first := caldate.New(year, month, 1)
		offset := first.WeekdayIndex(startDay)
		if offset > 0 {
			lead := first.AddDays(-offset)
			if !yield(Cell{Kind: Week, WeekNumber: lead.ISOWeek()}) {
				return
			}
			for i := 0; i < offset; i++ {
				if !yield(Cell{Kind: Blank}) {
					return
				}
			}
		}
		for day := 1; day <= caldate.DaysIn(year, month); day++ {
			date := caldate.Date{Year: year, Month: month, Day: day}
			if date.WeekdayIndex(startDay) == 0 {
				if !yield(Cell{Kind: Week, WeekNumber: date.ISOWeek()}) {
					return
				}
			}
			if !yield(Cell{Kind: Day, Date: date}) {
				return
			}
		}
	}
}

// Rows collects the month cells into complete RowLen-wide rows, padding the
// tail of the final week with blanks. This is the renderer-side helper;
// Month itself never pads.
func Rows(year int, month time.Month, startDay int) [][]Cell {
	var rows [][]Cell
	row := make([]Cell, 0, RowLen)
	for cell := range Month(year, month, startDay) {
		row = append(row, cell)
		if len(row) == RowLen {
			rows = append(rows, row)
			row = make([]Cell, 0, RowLen)
		}
	}
	if len(row) > 0 {
		for len(row) < RowLen {
			row = append(row, Cell{Kind: Blank})
		}
		rows = append(rows, row)
	}
	return rows
}
