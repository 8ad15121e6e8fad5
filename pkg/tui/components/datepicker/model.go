// Package datepicker renders a labelled date field with a masked text input
// and an expandable month-grid calendar, driven by the picker state machine.
package datepicker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/datepick/pkg/caldate"
	"tableflip.dev/datepick/pkg/grid"
	"tableflip.dev/datepick/pkg/maskinput"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/tui/events"
	"tableflip.dev/datepick/pkg/tui/theme"
)

// Model hosts one picker instance: the text field, the calendar grid, and
// the event plumbing between them.
type Model struct {
	cfg   picker.Config
	state picker.State
	id    events.ComponentID
	theme theme.Theme

	focused bool
	width   int
	height  int

	input textinput.Model
}

// New constructs a picker component from its configuration.
func New(cfg picker.Config) *Model {
	input := textinput.New()
	input.Placeholder = cfg.Placeholder
	input.Prompt = ""
	input.CharLimit = len(maskinput.Pattern)

	return &Model{
		cfg:   cfg,
		state: picker.NewState(cfg),
		id:    events.ComponentID(cfg.ID),
		theme: theme.Default(),
		input: input,
	}
}

// ID returns the component identifier used in emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// State exposes the current engine state for the root model and tests.
func (m *Model) State() picker.State { return m.state }

// Selected returns the committed date, nil when nothing is selected.
func (m *Model) Selected() *caldate.Date { return m.state.Selected }

// Week returns the ISO week of the committed date, 0 without a selection.
func (m *Model) Week() int { return m.state.Week }

// Role reports which side of the shared range this picker feeds.
func (m *Model) Role() picker.Role { return m.cfg.Role() }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// SetSize configures the component dimensions.
func (m *Model) SetSize(width, height int) {
	if width <= 0 {
		width = 40
	}
	m.width = width
	m.height = height
	inputWidth := width - 4
	if inputWidth < len(maskinput.Pattern)+2 {
		inputWidth = len(maskinput.Pattern) + 2
	}
	m.input.SetWidth(inputWidth)
}

// Update processes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.width == 0 && m.height == 0 {
			m.SetSize(msg.Width, msg.Height)
		}
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}
		return m, nil
	case events.FocusMsg:
		if msg.Component == m.id {
			m.focused = true
			return m, m.input.Focus()
		}
	case events.BlurMsg:
		if msg.Component == m.id {
			m.focused = false
			m.input.Blur()
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !m.focused {
		return nil
	}
	switch key := msg.String(); key {
	case "ctrl+x":
		return m.apply(picker.CancelEvent{})
	case "ctrl+s":
		return m.apply(picker.ConfirmEvent{})
	case "up", "down", "left", "right", "pgup", "pgdown",
		"home", "end", "enter", "space", "esc", "?":
		if !m.state.Open {
			// The trigger keys expand the calendar; the rest wait for it.
			switch key {
			case "enter", "space", "down":
				return m.apply(picker.OpenEvent{})
			}
			return nil
		}
		return m.apply(picker.KeyEvent{Key: picker.Key(key)})
	}

	// Everything else edits the masked text field.
	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	textCmd := m.apply(picker.TextEvent{Raw: m.input.Value()})
	if inputCmd == nil {
		return textCmd
	}
	return tea.Batch(inputCmd, textCmd)
}

// apply runs one engine transition and converts its effects into commands.
func (m *Model) apply(ev picker.Event) tea.Cmd {
	wasOpen := m.state.Open
	wasHelp := m.state.HelpOpen

	next, effects := picker.Transition(m.cfg, m.state, ev)
	m.state = next
	if m.input.Value() != next.Input {
		m.input.SetValue(next.Input)
	}

	var cmds []tea.Cmd
	if next.Open != wasOpen {
		cmds = append(cmds, events.CalendarToggleCmd(m.id, next.Open))
	}
	if next.HelpOpen != wasHelp {
		cmds = append(cmds, events.HelpRequestCmd(m.id))
	}
	for _, eff := range effects {
		switch eff := eff.(type) {
		case picker.FocusCell:
			cmds = append(cmds, events.CellFocusCmd(m.id, eff.Date))
		case picker.PublishRole:
			cmds = append(cmds, events.RoleDateCmd(m.id, eff.Role, eff.Date, next.Week))
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// View renders the field and, when expanded, the month grid.
func (m *Model) View() (string, *tea.Cursor) {
	labelStyle := m.theme.Field.Label
	if m.focused {
		labelStyle = m.theme.Field.LabelFocused
	}
	label := m.cfg.Label
	if label == "" {
		label = m.cfg.ID
	}

	prefix := "  "
	if m.focused {
		prefix = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Render("➤ ")
	}

	lines := []string{
		labelStyle.Render(label),
		prefix + m.input.View(),
	}
	if m.state.Selected != nil {
		lines = append(lines, m.theme.Field.Hint.Render(fmt.Sprintf("Week %d", m.state.Week)))
	}
	if m.state.Open {
		lines = append(lines, "", m.renderCalendar())
	}
	lines = append(lines, m.theme.Footer.Help.Render(m.footerHint()))

	var cursor *tea.Cursor
	if m.focused {
		if c := m.input.Cursor(); c != nil {
			clone := *c
			clone.Position.X += lipgloss.Width(prefix)
			clone.Position.Y++ // label row
			cursor = &clone
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...), cursor
}

func (m *Model) footerHint() string {
	if !m.state.Open {
		return "Enter to open calendar"
	}
	return "Enter to select • Esc to close • ? for keys"
}

func (m *Model) renderCalendar() string {
	st := m.theme.Calendar
	today := caldate.Today()

	title := fmt.Sprintf("%s %d", caldate.MonthName(m.state.VisibleMonth), m.state.VisibleYear)
	header := append([]string{"Wk"}, caldate.DayLabels(m.cfg.StartDay)...)

	lines := []string{
		st.Title.Render(title),
		st.Header.Render(strings.Join(header, " ")),
	}
	for _, row := range grid.Rows(m.state.VisibleYear, m.state.VisibleMonth, m.cfg.StartDay) {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, m.renderCell(cell, today, st))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderCell(cell grid.Cell, today caldate.Date, st theme.CalendarTheme) string {
	switch cell.Kind {
	case grid.Week:
		return st.WeekNum.Render(fmt.Sprintf("%2d", cell.WeekNumber))
	case grid.Day:
		text := fmt.Sprintf("%2d", cell.Date.Day)
		style := st.Day
		if !m.cfg.Bounds.Selectable(cell.Date) {
			style = st.Disabled
		}
		if cell.Date.Equal(today) {
			style = style.Inherit(st.Today)
		}
		if m.state.Selected != nil && cell.Date.Equal(*m.state.Selected) {
			style = style.Inherit(st.Selected)
		}
		if m.state.Focused != nil && cell.Date.Equal(*m.state.Focused) {
			style = style.Inherit(st.Focused)
		}
		return style.Render(text)
	default:
		return "  "
	}
}
