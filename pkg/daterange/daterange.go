// Package daterange enforces the selectable window of a date picker.
package daterange

import (
	"tableflip.dev/datepick/pkg/caldate"
)

// Bounds describes the allowed window. A nil Min or Max leaves that side
// unbounded. Both bounds are exclusive: a date equal to either one is not
// selectable.
type Bounds struct {
	Min *caldate.Date
	Max *caldate.Date
}

// Selectable reports whether d may be focused or selected under b.
func (b Bounds) Selectable(d caldate.Date) bool {
	if b.Min != nil && d.Compare(*b.Min) <= 0 {
		return false
	}
	if b.Max != nil && d.Compare(*b.Max) >= 0 {
		return false
	}
	return true
}

// First returns the earliest selectable date when a minimum bound exists.
func (b Bounds) First() (caldate.Date, bool) {
	if b.Min == nil {
		return caldate.Date{}, false
	}
	return b.Min.AddDays(1), true
}
