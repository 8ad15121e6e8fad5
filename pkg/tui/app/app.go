// Package app composes the interactive picker surface: a start and an end
// date picker feeding a shared trip range, a summary panel, and the keyboard
// help overlay.
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/datepick/pkg/caldate"
	"tableflip.dev/datepick/pkg/daterange"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/recent"
	"tableflip.dev/datepick/pkg/tui/components/datepicker"
	"tableflip.dev/datepick/pkg/tui/components/help"
	"tableflip.dev/datepick/pkg/tui/components/searchrange"
	"tableflip.dev/datepick/pkg/tui/events"
	"tableflip.dev/datepick/pkg/tui/theme"
)

// Options configures the picker surface.
type Options struct {
	// StartDay is the first display day of the week, 0 = Monday through
	// 6 = Sunday.
	StartDay int
	// Bounds is the selectable window shared by both pickers. A zero value
	// defaults the minimum to today.
	Bounds daterange.Bounds
	// Store, when set, records every committed selection.
	Store recent.Persistence
}

// Model is the root Bubble Tea model.
type Model struct {
	theme theme.Theme

	width  int
	height int

	start      *datepicker.Model
	end        *datepicker.Model
	summary    *searchrange.Model
	endFocused bool

	help *help.Model

	store  recent.Persistence
	status string
}

// New constructs the root model.
func New(opts Options) *Model {
	bounds := opts.Bounds
	if bounds.Min == nil && bounds.Max == nil {
		min := caldate.Today()
		bounds.Min = &min
	}

	startCfg := picker.NewConfig("trip-start-date")
	startCfg.Label = "Start date"
	startCfg.StartDay = opts.StartDay
	startCfg.Bounds = bounds

	endCfg := picker.NewConfig("trip-end-date")
	endCfg.Label = "End date"
	endCfg.StartDay = opts.StartDay
	endCfg.Bounds = bounds

	return &Model{
		theme:   theme.Default(),
		start:   datepicker.New(startCfg),
		end:     datepicker.New(endCfg),
		summary: searchrange.New(),
		store:   opts.Store,
		status:  "Ready",
	}
}

// Run launches the Bubble Tea program that renders the picker surface.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return events.FocusCmd(m.start.ID())
}

// Active returns the component ID of the focused picker.
func (m *Model) Active() events.ComponentID {
	return m.activePicker().ID()
}

// Summary exposes the range panel for tests.
func (m *Model) Summary() *searchrange.Model { return m.summary }

// HelpVisible reports whether the keyboard help overlay is shown. The
// pickers own the toggle; the root only mirrors their state.
func (m *Model) HelpVisible() bool {
	return m.start.State().HelpOpen || m.end.State().HelpOpen
}

// Update routes Bubble Tea messages to the composed components.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	case events.HelpRequestMsg:
		m.syncHelp()
		return m, nil
	case events.RoleDateMsg:
		cmds = appendCmd(cmds, m.recordSelection(msg))
	case events.CalendarToggleMsg:
		if msg.Open {
			m.status = "Calendar open"
		} else {
			m.status = "Ready"
		}
	case events.CellFocusMsg:
		m.status = "Focused " + msg.Date.String()
	}

	cmds = appendCmd(cmds, m.forward(msg))

	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()

	if key == "ctrl+c" {
		return tea.Quit, true
	}

	if m.HelpVisible() {
		switch key {
		case "up", "down", "pgup", "pgdown":
			if m.help != nil {
				_, cmd := m.help.Update(msg)
				return cmd, true
			}
			return nil, true
		case "esc", "?":
			// The picker owns the toggle; let it see the key.
			return nil, false
		}
		return nil, true
	}

	switch key {
	case "tab", "shift+tab":
		return m.switchPicker(), true
	}
	return nil, false
}

func (m *Model) switchPicker() tea.Cmd {
	from, to := m.start, m.end
	if m.endFocused {
		from, to = m.end, m.start
	}
	return tea.Batch(events.BlurCmd(from.ID()), events.FocusCmd(to.ID()))
}

// activePicker tracks focus through the same Focus/Blur events the pickers
// consume, so the root never duplicates their state.
func (m *Model) activePicker() *datepicker.Model {
	if m.endFocused {
		return m.end
	}
	return m.start
}

// syncHelp mounts or drops the overlay model to match the pickers' state.
func (m *Model) syncHelp() {
	if !m.HelpVisible() {
		m.help = nil
		m.status = "Ready"
		return
	}
	if m.help == nil {
		m.help = help.New(m.overlaySize())
	}
	m.status = "Help open"
}

func (m *Model) overlaySize() (int, int) {
	w := m.width - 8
	if w < 40 {
		w = max(m.width, 40)
	}
	h := m.height - 4
	if h < 10 {
		h = max(m.height, 10)
	}
	return w, h
}

func (m *Model) recordSelection(msg events.RoleDateMsg) tea.Cmd {
	if msg.Date == nil {
		m.status = fmt.Sprintf("Cleared %s date", msg.Role)
		return nil
	}
	m.status = fmt.Sprintf("Selected %s (week %d)", msg.Date, msg.Week)
	if m.store == nil {
		return nil
	}
	if err := m.store.Record(msg.Role, *msg.Date, msg.Week); err != nil {
		return events.DebugCmd("app", "recent", err.Error())
	}
	return nil
}

func (m *Model) forward(msg tea.Msg) tea.Cmd {
	if focus, ok := msg.(events.FocusMsg); ok {
		switch focus.Component {
		case m.end.ID():
			m.endFocused = true
		case m.start.ID():
			m.endFocused = false
		}
	}

	var cmds []tea.Cmd
	_, cmd := m.start.Update(msg)
	cmds = appendCmd(cmds, cmd)
	_, cmd = m.end.Update(msg)
	cmds = appendCmd(cmds, cmd)
	_, cmd = m.summary.Update(msg)
	cmds = appendCmd(cmds, cmd)

	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) layout() {
	columnWidth := m.width / 2
	if columnWidth < 30 {
		columnWidth = max(m.width, 30)
	}
	m.start.SetSize(columnWidth, m.height)
	m.end.SetSize(columnWidth, m.height)
	m.summary.SetSize(m.width, 4)
	if m.help != nil {
		m.help.SetSize(m.overlaySize())
	}
}

// View renders the composed UI.
func (m *Model) View() (string, *tea.Cursor) {
	if m.HelpVisible() && m.help != nil {
		body, _ := m.help.View()
		if m.width > 0 && m.height > 0 {
			body = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
		}
		return body, nil
	}

	title := m.theme.Modal.Title.Render("Plan your trip")

	startView, startCursor := m.start.View()
	endView, endCursor := m.end.View()
	summaryView, _ := m.summary.View()
	footer := m.theme.Footer.Status.Render(m.status) + "  " +
		m.theme.Footer.Help.Render("Tab to switch • ? for keys • Ctrl+C to quit")

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		startView,
		"",
		endView,
		"",
		summaryView,
		"",
		footer,
	)

	cursor := startCursor
	offset := 2 // title row and the blank line under it
	if m.endFocused {
		cursor = endCursor
		offset += lipgloss.Height(startView) + 1
	}
	if cursor != nil {
		clone := *cursor
		clone.Position.Y += offset
		cursor = &clone
	}

	return body, cursor
}

func appendCmd(cmds []tea.Cmd, cmd tea.Cmd) []tea.Cmd {
	if cmd == nil {
		return cmds
	}
	return append(cmds, cmd)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
