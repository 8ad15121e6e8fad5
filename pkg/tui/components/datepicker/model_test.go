package datepicker

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/datepick/pkg/caldate"
	"tableflip.dev/datepick/pkg/daterange"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/tui/events"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	min := caldate.Date{Year: 2026, Month: time.June, Day: 10}
	max := caldate.Date{Year: 2026, Month: time.August, Day: 1}
	cfg := picker.NewConfig("trip-start-date")
	cfg.Label = "Start date"
	cfg.Bounds = daterange.Bounds{Min: &min, Max: &max}

	m := New(cfg)
	m.SetSize(60, 24)
	m.Update(events.FocusMsg{Component: m.ID()})
	return m
}

func press(m *Model, msg tea.KeyPressMsg) {
	m.Update(msg)
}

func typeDigits(m *Model, digits string) {
	for _, r := range digits {
		press(m, tea.KeyPressMsg{Text: string(r), Code: r})
	}
}

func TestEnterOpensCalendarWithDefaultFocus(t *testing.T) {
	m := newTestModel(t)
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	state := m.State()
	if !state.Open {
		t.Fatal("enter did not open the calendar")
	}
	want := caldate.Date{Year: 2026, Month: time.June, Day: 11}
	if state.Focused == nil || !state.Focused.Equal(want) {
		t.Fatalf("focus = %v, want %v", state.Focused, want)
	}
}

func TestArrowKeysMoveRovingFocus(t *testing.T) {
	m := newTestModel(t)
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	press(m, tea.KeyPressMsg{Code: tea.KeyRight})
	press(m, tea.KeyPressMsg{Code: tea.KeyDown})

	want := caldate.Date{Year: 2026, Month: time.June, Day: 19}
	if got := m.State().Focused; got == nil || !got.Equal(want) {
		t.Fatalf("focus after right+down = %v, want %v", got, want)
	}
}

func TestEnterCommitsAndCloses(t *testing.T) {
	m := newTestModel(t)
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	press(m, tea.KeyPressMsg{Code: tea.KeyRight})
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	state := m.State()
	if state.Open {
		t.Fatal("commit should close the calendar")
	}
	want := caldate.Date{Year: 2026, Month: time.June, Day: 12}
	if state.Selected == nil || !state.Selected.Equal(want) {
		t.Fatalf("selected = %v, want %v", state.Selected, want)
	}
	if state.Input != "12/06/2026" {
		t.Fatalf("input = %q after commit", state.Input)
	}
	if m.Week() != want.ISOWeek() {
		t.Fatalf("week = %d, want %d", m.Week(), want.ISOWeek())
	}
}

func TestTypedDigitsAreMasked(t *testing.T) {
	m := newTestModel(t)
	typeDigits(m, "1506")

	if got := m.State().Input; got != "15/06" {
		t.Fatalf("input = %q, want %q", got, "15/06")
	}
	if m.Selected() != nil {
		t.Fatalf("partial entry selected %v", m.Selected())
	}
}

func TestTypedFullDateSelects(t *testing.T) {
	m := newTestModel(t)
	typeDigits(m, "15062026")

	state := m.State()
	want := caldate.Date{Year: 2026, Month: time.June, Day: 15}
	if state.Selected == nil || !state.Selected.Equal(want) {
		t.Fatalf("selected = %v, want %v", state.Selected, want)
	}
	if !state.Open {
		t.Fatal("typed selection should expand the calendar")
	}
}

func TestEscapeClosesWithoutSelecting(t *testing.T) {
	m := newTestModel(t)
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	press(m, tea.KeyPressMsg{Code: tea.KeyEscape})

	state := m.State()
	if state.Open || state.Selected != nil {
		t.Fatalf("escape left open=%v selected=%v", state.Open, state.Selected)
	}
}

func TestCtrlXCancelsSelection(t *testing.T) {
	m := newTestModel(t)
	typeDigits(m, "15062026")
	press(m, tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl})

	state := m.State()
	if state.Selected != nil || state.Input != "" || state.Week != 0 {
		t.Fatalf("cancel left residue: %+v", state)
	}
}

func TestUnfocusedModelIgnoresKeys(t *testing.T) {
	min := caldate.Date{Year: 2026, Month: time.June, Day: 10}
	cfg := picker.NewConfig("trip-start-date")
	cfg.Bounds = daterange.Bounds{Min: &min}
	m := New(cfg)
	m.SetSize(60, 24)

	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.State().Open {
		t.Fatal("unfocused picker opened its calendar")
	}
}

func TestViewShowsVisibleMonth(t *testing.T) {
	m := newTestModel(t)
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	view, _ := m.View()
	if !strings.Contains(view, "June 2026") {
		t.Fatalf("view missing month title:\n%s", view)
	}
	if !strings.Contains(view, "Wk") {
		t.Fatal("view missing week-number header")
	}
}

func TestPageDownAdvancesVisibleMonth(t *testing.T) {
	m := newTestModel(t)
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	press(m, tea.KeyPressMsg{Code: tea.KeyPgDown})

	state := m.State()
	if state.VisibleMonth != time.July {
		t.Fatalf("visible month = %s, want July", state.VisibleMonth)
	}
}
