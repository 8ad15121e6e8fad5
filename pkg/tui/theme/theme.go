package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Field    FieldTheme
	Calendar CalendarTheme
	Footer   FooterTheme
	Modal    ModalTheme
}

// FieldTheme styles the labelled text field above the calendar.
type FieldTheme struct {
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Frame        lipgloss.Style
	FrameFocused lipgloss.Style
	Hint         lipgloss.Style
}

// CalendarTheme styles the month grid.
type CalendarTheme struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	WeekNum  lipgloss.Style
	Day      lipgloss.Style
	Disabled lipgloss.Style
	Today    lipgloss.Style
	Focused  lipgloss.Style
	Selected lipgloss.Style
}

// FooterTheme groups styles used by the bottom status line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// ModalTheme styles centered modal overlays (e.g., keyboard help).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("212")
	dim := lipgloss.Color("244")

	return Theme{
		Field: FieldTheme{
			Label:        lipgloss.NewStyle().Foreground(dim),
			LabelFocused: lipgloss.NewStyle().Foreground(accent).Bold(true),
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1),
			FrameFocused: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(0, 1),
			Hint: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Calendar: CalendarTheme{
			Title:    lipgloss.NewStyle().Bold(true),
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			WeekNum:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Day:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Today:    lipgloss.NewStyle().Underline(true),
			Focused:  lipgloss.NewStyle().Reverse(true),
			Selected: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(dim),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}
