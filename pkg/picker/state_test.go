package picker

import (
	"testing"
	"time"

	"tableflip.dev/datepick/pkg/caldate"
	"tableflip.dev/datepick/pkg/daterange"
)

func date(y int, m time.Month, d int) caldate.Date {
	return caldate.Date{Year: y, Month: m, Day: d}
}

// testConfig bounds June 2026: selectable dates run June 11 through 19.
func testConfig(id string) Config {
	min := date(2026, time.June, 10)
	max := date(2026, time.June, 20)
	cfg := NewConfig(id)
	cfg.Bounds = daterange.Bounds{Min: &min, Max: &max}
	return cfg
}

func openPicker(t *testing.T, cfg Config) State {
	t.Helper()
	s, _ := Transition(cfg, NewState(cfg), OpenEvent{})
	if !s.Open {
		t.Fatal("open event did not open the calendar")
	}
	return s
}

func findPublish(effects []Effect) (PublishRole, bool) {
	for _, e := range effects {
		if p, ok := e.(PublishRole); ok {
			return p, true
		}
	}
	return PublishRole{}, false
}

func TestRoleFromID(t *testing.T) {
	tests := []struct {
		id   string
		want Role
	}{
		{"trip-start-date", RoleStart},
		{"trip-end-date", RoleEnd},
		{"return-start-date-field", RoleStart},
		{"trip-date", RoleNone},
		{"", RoleNone},
	}
	for _, tc := range tests {
		if got := RoleFromID(tc.id); got != tc.want {
			t.Errorf("RoleFromID(%q) = %q, want %q", tc.id, got, tc.want)
		}
	}
}

func TestOpenDefaultsFocusToDayAfterMinimum(t *testing.T) {
	cfg := testConfig("trip-start-date")
	s, effects := Transition(cfg, NewState(cfg), OpenEvent{})

	want := date(2026, time.June, 11)
	if s.Focused == nil || !s.Focused.Equal(want) {
		t.Fatalf("focus after open = %v, want %v", s.Focused, want)
	}
	if s.VisibleYear != 2026 || s.VisibleMonth != time.June {
		t.Fatalf("visible month = %d/%d, want 2026/June", s.VisibleYear, s.VisibleMonth)
	}
	if len(effects) != 1 {
		t.Fatalf("effects = %v, want one FocusCell", effects)
	}
	fc, ok := effects[0].(FocusCell)
	if !ok || !fc.Date.Equal(want) {
		t.Fatalf("effect = %+v, want FocusCell for %v", effects[0], want)
	}
}

func TestOpenPrefersExistingSelection(t *testing.T) {
	cfg := testConfig("trip-start-date")
	sel := date(2026, time.June, 15)
	s := NewState(cfg)
	s.Selected = &sel

	s, _ = Transition(cfg, s, OpenEvent{})
	if s.Focused == nil || !s.Focused.Equal(sel) {
		t.Fatalf("focus after open = %v, want selection %v", s.Focused, sel)
	}
}

func TestArrowMovement(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want caldate.Date
	}{
		{"right advances a day", KeyRight, date(2026, time.June, 16)},
		{"left retreats a day", KeyLeft, date(2026, time.June, 14)},
		{"down jumps a week", KeyDown, date(2026, time.June, 22)},
		{"up jumps back a week", KeyUp, date(2026, time.June, 8)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			wide := NewConfig("trip-start-date")
			wide.Bounds = daterange.Bounds{}
			s := openPicker(t, wide)
			start := date(2026, time.June, 15)
			s.Focused = &start

			s, effects := Transition(wide, s, KeyEvent{Key: tc.key})
			if s.Focused == nil || !s.Focused.Equal(tc.want) {
				t.Fatalf("focus = %v, want %v", s.Focused, tc.want)
			}
			if _, ok := effects[0].(FocusCell); !ok {
				t.Fatalf("expected FocusCell effect, got %v", effects)
			}
		})
	}
}

func TestMovementSticksAtBoundary(t *testing.T) {
	cfg := testConfig("trip-start-date")
	s := openPicker(t, cfg)
	edge := date(2026, time.June, 11)
	s.Focused = &edge

	// Left would land on the exclusive minimum; up would leave the window.
	for _, key := range []Key{KeyLeft, KeyUp, KeyHome} {
		next, effects := Transition(cfg, s, KeyEvent{Key: key})
		if next.Focused == nil || !next.Focused.Equal(edge) {
			t.Fatalf("key %q moved focus off the boundary to %v", key, next.Focused)
		}
		if len(effects) != 0 {
			t.Fatalf("key %q produced effects %v for a rejected move", key, effects)
		}
	}
}

func TestHomeAndEndClampToMonthEdges(t *testing.T) {
	wide := NewConfig("standalone")
	wide.Bounds = daterange.Bounds{}
	s := openPicker(t, wide)
	mid := date(2026, time.June, 15)
	s.Focused = &mid

	s, _ = Transition(wide, s, KeyEvent{Key: KeyHome})
	if s.Focused == nil || s.Focused.Day != 1 {
		t.Fatalf("home moved focus to %v, want June 1", s.Focused)
	}
	s, _ = Transition(wide, s, KeyEvent{Key: KeyEnd})
	if s.Focused == nil || s.Focused.Day != 30 {
		t.Fatalf("end moved focus to %v, want June 30", s.Focused)
	}
}

func TestPageTurnsVisibleMonthEvenWhenCandidateDisabled(t *testing.T) {
	cfg := testConfig("trip-start-date")
	s := openPicker(t, cfg)
	focus := date(2026, time.June, 15)
	s.Focused = &focus

	// July 15 is past the maximum, so focus stays put while the view turns.
	s, effects := Transition(cfg, s, KeyEvent{Key: KeyPageDown})
	if s.VisibleMonth != time.July || s.VisibleYear != 2026 {
		t.Fatalf("visible month = %d/%d, want 2026/July", s.VisibleYear, s.VisibleMonth)
	}
	if !s.Focused.Equal(focus) {
		t.Fatalf("focus moved to %v despite disabled candidate", s.Focused)
	}
	if len(effects) != 0 {
		t.Fatalf("unexpected effects %v", effects)
	}
}

func TestPageMovesFocusWhenCandidateAllowed(t *testing.T) {
	wide := NewConfig("standalone")
	wide.Bounds = daterange.Bounds{}
	s := openPicker(t, wide)
	focus := date(2026, time.January, 31)
	s.Focused = &focus
	s.VisibleYear, s.VisibleMonth = 2026, time.January

	s, _ = Transition(wide, s, KeyEvent{Key: KeyPageDown})
	if want := date(2026, time.February, 28); s.Focused == nil || !s.Focused.Equal(want) {
		t.Fatalf("page down focus = %v, want clamped %v", s.Focused, want)
	}
	if s.VisibleMonth != time.February {
		t.Fatalf("visible month = %s, want February", s.VisibleMonth)
	}
}

func TestEnterCommitsFocusedDate(t *testing.T) {
	cfg := testConfig("trip-start-date")
	s := openPicker(t, cfg)
	focus := date(2026, time.June, 15)
	s.Focused = &focus

	s, effects := Transition(cfg, s, KeyEvent{Key: KeyEnter})
	if s.Open {
		t.Fatal("commit should close the calendar")
	}
	if s.Selected == nil || !s.Selected.Equal(focus) {
		t.Fatalf("selected = %v, want %v", s.Selected, focus)
	}
	if s.Input != "15/06/2026" {
		t.Fatalf("input = %q, want committed date text", s.Input)
	}
	if want := focus.ISOWeek(); s.Week != want {
		t.Fatalf("week = %d, want %d", s.Week, want)
	}
	pub, ok := findPublish(effects)
	if !ok || pub.Role != RoleStart || pub.Date == nil || !pub.Date.Equal(focus) {
		t.Fatalf("publish effect = %+v, want start role with %v", pub, focus)
	}
}

func TestSpaceCommitsLikeEnter(t *testing.T) {
	cfg := testConfig("trip-end-date")
	s := openPicker(t, cfg)
	focus := date(2026, time.June, 12)
	s.Focused = &focus

	s, effects := Transition(cfg, s, KeyEvent{Key: KeySpace})
	if s.Open || s.Selected == nil || !s.Selected.Equal(focus) {
		t.Fatalf("space did not commit: open=%v selected=%v", s.Open, s.Selected)
	}
	if pub, ok := findPublish(effects); !ok || pub.Role != RoleEnd {
		t.Fatalf("publish = %+v, want end role", effects)
	}
}

func TestCommitWithoutRolePublishesNothing(t *testing.T) {
	cfg := NewConfig("standalone")
	cfg.Bounds = daterange.Bounds{}
	s := openPicker(t, cfg)
	focus := date(2026, time.June, 15)
	s.Focused = &focus

	_, effects := Transition(cfg, s, KeyEvent{Key: KeyEnter})
	if _, ok := findPublish(effects); ok {
		t.Fatalf("standalone picker published a role: %v", effects)
	}
}

func TestEscapeClosesWithoutCommitting(t *testing.T) {
	cfg := testConfig("trip-start-date")
	s := openPicker(t, cfg)

	s, effects := Transition(cfg, s, KeyEvent{Key: KeyEscape})
	if s.Open {
		t.Fatal("escape left the calendar open")
	}
	if s.Focused != nil {
		t.Fatalf("escape kept focus %v", s.Focused)
	}
	if s.Selected != nil || len(effects) != 0 {
		t.Fatalf("escape changed selection or emitted effects: %v %v", s.Selected, effects)
	}
}

func TestKeysIgnoredWhileClosed(t *testing.T) {
	cfg := testConfig("trip-start-date")
	s := NewState(cfg)
	for _, key := range []Key{KeyRight, KeyEnter, KeyEscape, KeyHelp} {
		next, effects := Transition(cfg, s, KeyEvent{Key: key})
		if next != s || len(effects) != 0 {
			t.Fatalf("key %q acted on a closed picker", key)
		}
	}
}

func TestHelpToggle(t *testing.T) {
	cfg := testConfig("trip-start-date")
	s := openPicker(t, cfg)

	s, _ = Transition(cfg, s, KeyEvent{Key: KeyHelp})
	if !s.HelpOpen {
		t.Fatal("? did not open help")
	}
	s, _ = Transition(cfg, s, KeyEvent{Key: KeyHelp})
	if s.HelpOpen {
		t.Fatal("? did not close help")
	}
}

func TestClickCommitsSelectableCell(t *testing.T) {
	cfg := testConfig("trip-start-date")
	s := openPicker(t, cfg)

	target := date(2026, time.June, 18)
	s, effects := Transition(cfg, s, ClickEvent{Date: target})
	if s.Selected == nil || !s.Selected.Equal(target) {
		t.Fatalf("click selected %v, want %v", s.Selected, target)
	}
	if _, ok := findPublish(effects); !ok {
		t.Fatal("click commit did not publish")
	}
}

func TestClickOnDisabledCellIgnored(t *testing.T) {
	cfg := testConfig("trip-start-date")
	s := openPicker(t, cfg)
	before := s

	s, effects := Transition(cfg, s, ClickEvent{Date: date(2026, time.June, 10)})
	if s != before || len(effects) != 0 {
		t.Fatalf("disabled click changed state: %+v %v", s, effects)
	}
}

func TestTypedFullDateSelectsAndKeepsCalendarOpen(t *testing.T) {
	cfg := testConfig("trip-start-date")
	s := openPicker(t, cfg)

	s, effects := Transition(cfg, s, TextEvent{Raw: "15062026"})
	if s.Input != "15/06/2026" {
		t.Fatalf("input = %q, want masked full date", s.Input)
	}
	want := date(2026, time.June, 15)
	if s.Selected == nil || !s.Selected.Equal(want) {
		t.Fatalf("selected = %v, want %v", s.Selected, want)
	}
	if !s.Open {
		t.Fatal("typed selection should keep the calendar open")
	}
	if s.VisibleMonth != time.June || s.VisibleYear != 2026 {
		t.Fatalf("visible month = %d/%d", s.VisibleYear, s.VisibleMonth)
	}
	if _, ok := findPublish(effects); !ok {
		t.Fatal("typed selection did not publish")
	}
}

func TestTypedPartialFormatsWithoutSelecting(t *testing.T) {
	cfg := testConfig("trip-start-date")
	s := openPicker(t, cfg)

	s, effects := Transition(cfg, s, TextEvent{Raw: "1506"})
	if s.Input != "15/06" {
		t.Fatalf("input = %q, want %q", s.Input, "15/06")
	}
	if s.Selected != nil || len(effects) != 0 {
		t.Fatalf("partial entry selected %v with effects %v", s.Selected, effects)
	}
}

func TestTypedInvalidOrOutOfRangeRejectedSilently(t *testing.T) {
	cfg := testConfig("trip-start-date")
	tests := []struct {
		name string
		raw  string
	}{
		{"impossible date", "30022026"},
		{"before minimum", "01062026"},
		{"equal to minimum", "10062026"},
		{"after maximum", "25062026"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := openPicker(t, cfg)
			s, effects := Transition(cfg, s, TextEvent{Raw: tc.raw})
			if s.Selected != nil {
				t.Fatalf("rejected entry selected %v", s.Selected)
			}
			if _, ok := findPublish(effects); ok {
				t.Fatal("rejected entry published a role")
			}
		})
	}
}

func TestCancelClearsEverythingAndPublishesNil(t *testing.T) {
	cfg := testConfig("trip-end-date")
	s := openPicker(t, cfg)
	sel := date(2026, time.June, 15)
	s.Selected = &sel
	s.Week = sel.ISOWeek()
	s.Input = sel.String()

	s, effects := Transition(cfg, s, CancelEvent{})
	if s.Selected != nil || s.Focused != nil || s.Input != "" || s.Week != 0 || s.Open {
		t.Fatalf("cancel left residue: %+v", s)
	}
	pub, ok := findPublish(effects)
	if !ok || pub.Role != RoleEnd || pub.Date != nil {
		t.Fatalf("cancel publish = %+v, want end role with nil date", pub)
	}
}

func TestConfirmClosesKeepingSelection(t *testing.T) {
	cfg := testConfig("trip-start-date")
	s := openPicker(t, cfg)
	sel := date(2026, time.June, 15)
	s.Selected = &sel

	s, effects := Transition(cfg, s, ConfirmEvent{})
	if s.Open || s.HelpOpen {
		t.Fatal("confirm left a surface open")
	}
	if s.Selected == nil || !s.Selected.Equal(sel) {
		t.Fatalf("confirm dropped selection: %v", s.Selected)
	}
	if len(effects) != 0 {
		t.Fatalf("confirm emitted %v", effects)
	}
}

func TestSelectedAlwaysWithinBounds(t *testing.T) {
	cfg := testConfig("trip-start-date")
	s := NewState(cfg)
	events := []Event{
		OpenEvent{},
		TextEvent{Raw: "30022026"},
		TextEvent{Raw: "15062026"},
		KeyEvent{Key: KeyRight},
		KeyEvent{Key: KeyEnter},
		OpenEvent{},
		KeyEvent{Key: KeyPageDown},
		ClickEvent{Date: date(2026, time.July, 4)},
	}
	for _, ev := range events {
		s, _ = Transition(cfg, s, ev)
		if s.Selected != nil && !cfg.Bounds.Selectable(*s.Selected) {
			t.Fatalf("after %T the selection %v violates the bounds", ev, s.Selected)
		}
	}
}
