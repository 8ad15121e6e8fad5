// Package picker implements the navigation engine behind an accessible
// date-picker widget: focus roving across the month grid, range
// enforcement, masked text entry, and selection commits. The engine is a
// pure state machine — Transition maps (config, state, event) to a new
// state plus the side effects the host must issue — so hosts stay free to
// render however they like.
package picker

import (
	"strings"

	"tableflip.dev/datepick/pkg/caldate"
	"tableflip.dev/datepick/pkg/daterange"
)

// Role binds a picker instance to one side of an externally owned date
// range. Standalone instances carry RoleNone and publish nothing.
type Role string

const (
	RoleNone  Role = ""
	RoleStart Role = "start"
	RoleEnd   Role = "end"
)

// RoleFromID derives the range role from an instance identifier, matching
// the *-start-date / *-end-date naming convention by substring.
func RoleFromID(id string) Role {
	switch {
	case strings.Contains(id, "start-date"):
		return RoleStart
	case strings.Contains(id, "end-date"):
		return RoleEnd
	default:
		return RoleNone
	}
}

// DefaultPlaceholder is shown in the text field before any digits arrive.
const DefaultPlaceholder = "e.g. 01/12/2026"

// Config is the immutable per-instance configuration.
type Config struct {
	// ID names the instance and determines its Role.
	ID string
	// Label is the field caption shown by the widget.
	Label string
	// Placeholder is the empty-field hint; NewConfig fills the default.
	Placeholder string
	// StartDay is the first display day of the week, 0 = Monday through
	// 6 = Sunday.
	StartDay int
	// Bounds is the selectable window. Both ends are exclusive.
	Bounds daterange.Bounds
}

// NewConfig builds a config with the documented defaults: the example
// placeholder, weeks starting Monday, and a minimum bound of today (so
// tomorrow is the earliest selectable date).
func NewConfig(id string) Config {
	min := caldate.Today()
	return Config{
		ID:          id,
		Placeholder: DefaultPlaceholder,
		Bounds:      daterange.Bounds{Min: &min},
	}
}

// Role reports the range role derived from the configured ID.
func (c Config) Role() Role {
	return RoleFromID(c.ID)
}
