package picker

import (
	"time"

	"tableflip.dev/datepick/pkg/caldate"
	"tableflip.dev/datepick/pkg/maskinput"
)

// State is the complete observable state of one picker instance. Transition
// replaces it wholesale; nothing mutates a State in place, and the Date
// pointers always reference fresh values.
type State struct {
	Open     bool
	HelpOpen bool

	// Focused is the roving-focus date while the calendar is open.
	Focused *caldate.Date
	// Selected is the committed date; it always satisfies the bounds.
	Selected *caldate.Date

	// VisibleYear and VisibleMonth name the rendered month. They track
	// Focused whenever it is set.
	VisibleYear  int
	VisibleMonth time.Month

	// Input is the masked text-field contents, possibly a partial entry.
	Input string
	// Week is the ISO week of Selected, 0 when nothing is selected.
	Week int
}

// NewState returns the closed initial state: nothing focused or selected,
// visible month anchored on the minimum bound so the first open lands on
// selectable dates.
func NewState(cfg Config) State {
	anchor := caldate.Today()
	if cfg.Bounds.Min != nil {
		anchor = *cfg.Bounds.Min
	}
	return State{VisibleYear: anchor.Year, VisibleMonth: anchor.Month}
}

// Key identifies the navigation keys the state machine understands. Values
// match Bubble Tea key strings so hosts can map keystrokes directly.
type Key string

const (
	KeyRight    Key = "right"
	KeyLeft     Key = "left"
	KeyDown     Key = "down"
	KeyUp       Key = "up"
	KeyPageUp   Key = "pgup"
	KeyPageDown Key = "pgdown"
	KeyHome     Key = "home"
	KeyEnd      Key = "end"
	KeyEnter    Key = "enter"
	KeySpace    Key = "space"
	KeyEscape   Key = "esc"
	KeyHelp     Key = "?"
)

// Event is an external stimulus applied to the state machine.
type Event interface{ isEvent() }

// OpenEvent opens the calendar from the trigger control.
type OpenEvent struct{}

// KeyEvent applies one keystroke. Keys are ignored while closed.
type KeyEvent struct{ Key Key }

// TextEvent carries the raw text-field contents after an edit.
type TextEvent struct{ Raw string }

// ClickEvent activates a rendered date cell directly.
type ClickEvent struct{ Date caldate.Date }

// CancelEvent discards the selection, clears the field, and closes.
type CancelEvent struct{}

// ConfirmEvent closes the calendar keeping the committed selection.
type ConfirmEvent struct{}

func (OpenEvent) isEvent()    {}
func (KeyEvent) isEvent()     {}
func (TextEvent) isEvent()    {}
func (ClickEvent) isEvent()   {}
func (CancelEvent) isEvent()  {}
func (ConfirmEvent) isEvent() {}

// Effect is a side effect requested by a transition. The host executes
// effects after adopting the new state, which keeps Transition pure and
// makes every transition unit-testable without a UI.
type Effect interface{ isEffect() }

// FocusCell asks the host to move input focus to the rendered cell for
// Date, if such a cell exists. Best effort, no acknowledgment: a host that
// does not render the cell ignores it.
type FocusCell struct{ Date caldate.Date }

// PublishRole announces the committed date for the instance's range role.
// Date is nil when the selection was cancelled. At most one PublishRole is
// emitted per commit.
type PublishRole struct {
	Role Role
	Date *caldate.Date
}

func (FocusCell) isEffect()   {}
func (PublishRole) isEffect() {}

// Transition computes the next state for one event and the effects the
// host must issue. Rejected input — disabled candidates, partial or
// calendar-invalid text, clicks on disabled cells — leaves the state
// untouched; no event path returns an error.
func Transition(cfg Config, s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case OpenEvent:
		return open(cfg, s)
	case KeyEvent:
		return handleKey(cfg, s, ev.Key)
	case TextEvent:
		return typeText(cfg, s, ev.Raw)
	case ClickEvent:
		if !cfg.Bounds.Selectable(ev.Date) {
			return s, nil
		}
		return commit(cfg, s, ev.Date)
	case CancelEvent:
		return cancel(cfg, s)
	case ConfirmEvent:
		s.Open = false
		s.HelpOpen = false
		return s, nil
	default:
		return s, nil
	}
}

func open(cfg Config, s State) (State, []Effect) {
	s.Open = true
	if s.Focused == nil {
		var def caldate.Date
		switch {
		case s.Selected != nil:
			def = *s.Selected
		case cfg.Bounds.Min != nil:
			def = cfg.Bounds.Min.AddDays(1)
		default:
			def = caldate.Today()
		}
		s.Focused = &def
	}
	// The visible month always follows the focused date, including when the
	// default focus lands in the month after the minimum bound.
	s.VisibleYear, s.VisibleMonth = s.Focused.Year, s.Focused.Month
	return s, []Effect{FocusCell{Date: *s.Focused}}
}

func handleKey(cfg Config, s State, key Key) (State, []Effect) {
	if !s.Open {
		return s, nil
	}
	switch key {
	case KeyEscape:
		s.Open = false
		s.HelpOpen = false
		s.Focused = nil
		return s, nil
	case KeyHelp:
		s.HelpOpen = !s.HelpOpen
		return s, nil
	case KeyEnter, KeySpace:
		if s.Focused == nil || !cfg.Bounds.Selectable(*s.Focused) {
			return s, nil
		}
		return commit(cfg, s, *s.Focused)
	}

	base := s.anchor(cfg)
	var candidate caldate.Date
	switch key {
	case KeyRight:
		candidate = base.AddDays(1)
	case KeyLeft:
		candidate = base.AddDays(-1)
	case KeyDown:
		candidate = base.AddDays(7)
	case KeyUp:
		candidate = base.AddDays(-7)
	case KeyPageUp, KeyPageDown:
		delta := -1
		if key == KeyPageDown {
			delta = 1
		}
		candidate = base.AddMonths(delta)
		// The visible month turns even when the candidate is disabled.
		shown := caldate.Date{Year: s.VisibleYear, Month: s.VisibleMonth, Day: 1}.AddMonths(delta)
		s.VisibleYear, s.VisibleMonth = shown.Year, shown.Month
	case KeyHome:
		candidate = base.StartOfMonth()
	case KeyEnd:
		candidate = base.EndOfMonth()
	default:
		return s, nil
	}
	return focusCandidate(cfg, s, candidate)
}

// focusCandidate adopts candidate as the roving focus when the bounds allow
// it. A disabled candidate leaves focus where it is, so day, week, and
// month-end movement sticks at the range boundary.
func focusCandidate(cfg Config, s State, candidate caldate.Date) (State, []Effect) {
	if !cfg.Bounds.Selectable(candidate) {
		return s, nil
	}
	s.Focused = &candidate
	if candidate.Year != s.VisibleYear || candidate.Month != s.VisibleMonth {
		s.VisibleYear, s.VisibleMonth = candidate.Year, candidate.Month
	}
	return s, []Effect{FocusCell{Date: candidate}}
}

func typeText(cfg Config, s State, raw string) (State, []Effect) {
	s.Input = maskinput.Format(raw)
	date, ok := maskinput.Resolve(s.Input)
	if !ok || !cfg.Bounds.Selectable(date) {
		// Partial, calendar-invalid, or out-of-range text stays as display
		// text only. No selection changes and no error surfaces.
		return s, nil
	}
	sel := date
	s.Selected = &sel
	s.Week = date.ISOWeek()
	s.Input = date.String()
	s.Focused = &sel
	s.VisibleYear, s.VisibleMonth = date.Year, date.Month
	s.Open = true
	effects := []Effect{FocusCell{Date: date}}
	if role := cfg.Role(); role != RoleNone {
		effects = append(effects, PublishRole{Role: role, Date: &sel})
	}
	return s, effects
}

// commit applies a confirmed selection: record the date and its ISO week,
// mirror it into the text field, close, and publish the bound role.
func commit(cfg Config, s State, date caldate.Date) (State, []Effect) {
	sel := date
	s.Selected = &sel
	s.Week = date.ISOWeek()
	s.Input = date.String()
	s.Focused = &sel
	s.Open = false
	s.HelpOpen = false
	if role := cfg.Role(); role != RoleNone {
		return s, []Effect{PublishRole{Role: role, Date: &sel}}
	}
	return s, nil
}

func cancel(cfg Config, s State) (State, []Effect) {
	s.Selected = nil
	s.Week = 0
	s.Input = ""
	s.Focused = nil
	s.Open = false
	s.HelpOpen = false
	if role := cfg.Role(); role != RoleNone {
		return s, []Effect{PublishRole{Role: role}}
	}
	return s, nil
}

// anchor is the date movement keys act from: the roving focus, else the
// minimum bound, else today.
func (s State) anchor(cfg Config) caldate.Date {
	if s.Focused != nil {
		return *s.Focused
	}
	if cfg.Bounds.Min != nil {
		return *cfg.Bounds.Min
	}
	return caldate.Today()
}
