package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/datepick/pkg/caldate"
	"tableflip.dev/datepick/pkg/picker"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// RoleDateMsg announces that a picker committed (or cleared) the date it
// contributes to the shared trip range. Date is nil after a cancel.
type RoleDateMsg struct {
	Component ComponentID
	Role      picker.Role
	Date      *caldate.Date
	Week      int
}

// Describe renders the role publication in a human-friendly format for logs.
func (m RoleDateMsg) Describe() string {
	value := "(cleared)"
	if m.Date != nil {
		value = m.Date.String()
	}
	return fmt.Sprintf(`role:%q date:%q week:%d`, m.Role, value, m.Week)
}

// RoleDateCmd wraps RoleDateMsg in a tea.Cmd for callers emitting the event
// from an Update result.
func RoleDateCmd(component ComponentID, role picker.Role, date *caldate.Date, week int) tea.Cmd {
	return func() tea.Msg {
		return RoleDateMsg{
			Component: component,
			Role:      role,
			Date:      date,
			Week:      week,
		}
	}
}

// CellFocusMsg fires when roving focus lands on a calendar cell.
type CellFocusMsg struct {
	Component ComponentID
	Date      caldate.Date
}

// Describe renders the focus move for logs.
func (m CellFocusMsg) Describe() string {
	return fmt.Sprintf(`component:%q date:%q`, m.Component, m.Date)
}

// CellFocusCmd wraps CellFocusMsg in a tea.Cmd.
func CellFocusCmd(component ComponentID, date caldate.Date) tea.Cmd {
	return func() tea.Msg {
		return CellFocusMsg{Component: component, Date: date}
	}
}

// CalendarToggleMsg announces a picker calendar opening or closing.
type CalendarToggleMsg struct {
	Component ComponentID
	Open      bool
}

// Describe renders the toggle for logs.
func (m CalendarToggleMsg) Describe() string {
	state := "closed"
	if m.Open {
		state = "open"
	}
	return fmt.Sprintf(`component:%q state:%q`, m.Component, state)
}

// CalendarToggleCmd wraps CalendarToggleMsg in a tea.Cmd.
func CalendarToggleCmd(component ComponentID, open bool) tea.Cmd {
	return func() tea.Msg {
		return CalendarToggleMsg{Component: component, Open: open}
	}
}

// HelpRequestMsg asks the root model to toggle the keyboard-help overlay.
type HelpRequestMsg struct {
	Component ComponentID
}

// Describe renders the request for logs.
func (m HelpRequestMsg) Describe() string {
	return fmt.Sprintf(`component:%q`, m.Component)
}

// HelpRequestCmd wraps HelpRequestMsg in a tea.Cmd.
func HelpRequestCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return HelpRequestMsg{Component: component}
	}
}

// FocusMsg indicates a component just gained focus.
type FocusMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m FocusMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"focus"`, m.Component)
}

// BlurMsg indicates a component just lost focus.
type BlurMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m BlurMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"blur"`, m.Component)
}

// FocusCmd wraps a FocusMsg in a tea.Cmd helper.
func FocusCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return FocusMsg{Component: component}
	}
}

// BlurCmd wraps a BlurMsg in a tea.Cmd helper.
func BlurCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return BlurMsg{Component: component}
	}
}

// DebugMsg captures optional diagnostic notes emitted by components.
type DebugMsg struct {
	Component ComponentID
	Context   string
	Detail    string
}

// Describe renders the debug message in a human-readable format.
func (m DebugMsg) Describe() string {
	return fmt.Sprintf(`component:%q context:%q detail:%q`, m.Component, m.Context, m.Detail)
}

// DebugCmd wraps DebugMsg creation in a tea.Cmd helper.
func DebugCmd(component ComponentID, context, detail string) tea.Cmd {
	return func() tea.Msg {
		return DebugMsg{Component: component, Context: context, Detail: detail}
	}
}
