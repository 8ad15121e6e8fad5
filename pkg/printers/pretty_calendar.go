package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/datepick/pkg/caldate"
	"tableflip.dev/datepick/pkg/daterange"
	"tableflip.dev/datepick/pkg/grid"
)

const width = len("wk 11 12 13 14 15 16 17") // an example week

// Month prints one month grid with week numbers, greying out dates outside
// the bounds and highlighting today and the selected date.
func (pp *PrettyPrint) Month(year int, month time.Month, startDay int, bounds daterange.Bounds, selected *caldate.Date) {
	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", caldate.MonthName(month), year)
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), m)

	header := color.New(color.Faint, color.FgWhite)
	_, _ = header.Printf("wk %s\n", strings.Join(caldate.DayLabels(startDay), " "))

	wk := color.New(color.Faint, color.FgWhite)
	open := color.New(color.FgHiWhite)
	shut := color.New(color.Faint)
	today := color.New(color.Bold, color.Underline)
	picked := color.New(color.Bold, color.ReverseVideo)

	now := caldate.Today()
	for _, row := range grid.Rows(year, month, startDay) {
		for i, cell := range row {
			sep := " "
			if i == 0 {
				sep = ""
			}
			switch cell.Kind {
			case grid.Week:
				_, _ = wk.Printf("%s%2d", sep, cell.WeekNumber)
			case grid.Day:
				printer := open
				if !bounds.Selectable(cell.Date) {
					printer = shut
				}
				if cell.Date.Equal(now) {
					printer = today
				}
				if selected != nil && cell.Date.Equal(*selected) {
					printer = picked
				}
				_, _ = printer.Printf("%s%2d", sep, cell.Date.Day)
			default:
				fmt.Printf("%s  ", sep)
			}
		}
		fmt.Print("\n")
	}
	fmt.Print("\n")
}

// Year prints every month of a year in sequence.
func (pp *PrettyPrint) Year(year, startDay int, bounds daterange.Bounds) {
	for m := time.January; m <= time.December; m++ {
		pp.Month(year, m, startDay, bounds, nil)
	}
}
