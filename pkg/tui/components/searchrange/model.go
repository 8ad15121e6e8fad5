// Package searchrange renders the read-only summary of the trip range the
// two pickers feed. It listens for role publications and never writes back.
package searchrange

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/datepick/pkg/caldate"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/tui/events"
	"tableflip.dev/datepick/pkg/tui/theme"
)

// Model accumulates the published start and end dates.
type Model struct {
	id    events.ComponentID
	theme theme.Theme

	start     *caldate.Date
	end       *caldate.Date
	startWeek int
	endWeek   int

	width int
}

// New constructs the summary panel.
func New() *Model {
	return &Model{
		id:    events.ComponentID("search-range"),
		theme: theme.Default(),
	}
}

// ID returns the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// Start returns the published start date, nil when unset.
func (m *Model) Start() *caldate.Date { return m.start }

// End returns the published end date, nil when unset.
func (m *Model) End() *caldate.Date { return m.end }

// Nights reports the stay length when both ends are known and ordered.
func (m *Model) Nights() (int, bool) {
	if m.start == nil || m.end == nil || !m.end.After(*m.start) {
		return 0, false
	}
	nights := 0
	for d := *m.start; d.Before(*m.end); d = d.AddDays(1) {
		nights++
	}
	return nights, true
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize configures the panel width.
func (m *Model) SetSize(width, _ int) { m.width = width }

// Update consumes role publications from the pickers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(events.RoleDateMsg); ok {
		switch msg.Role {
		case picker.RoleStart:
			m.start = msg.Date
			m.startWeek = msg.Week
		case picker.RoleEnd:
			m.end = msg.Date
			m.endWeek = msg.Week
		}
	}
	return m, nil
}

// View renders the range summary.
func (m *Model) View() (string, *tea.Cursor) {
	st := m.theme.Footer

	lines := []string{
		m.theme.Field.Label.Render("Trip"),
		st.Status.Render("Start: " + m.describe(m.start, m.startWeek)),
		st.Status.Render("End:   " + m.describe(m.end, m.endWeek)),
	}
	if nights, ok := m.Nights(); ok {
		lines = append(lines, st.Help.Render(fmt.Sprintf("%d night stay", nights)))
	} else if m.start != nil && m.end != nil {
		lines = append(lines, st.Help.Render("End date is not after the start date"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...), nil
}

func (m *Model) describe(d *caldate.Date, week int) string {
	if d == nil {
		return "(not set)"
	}
	return fmt.Sprintf("%s  wk %d", d, week)
}
