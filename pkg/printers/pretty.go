package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/datepick/pkg/recent"
)

// PrettyPrint renders picker data for plain terminal output.
type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("1718923401002331100  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Recents prints recorded selections as a table, oldest first.
func (pp *PrettyPrint) Recents(selections ...*recent.Selection) {
	if len(selections) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ROLE", "DATE", "WEEK", "RECORDED")
	for _, s := range selections {
		role := string(s.Role)
		if pp.ShowID {
			role = fmt.Sprintf("%s (%s)", role, s.ID)
		}
		tbl.AddRow(role, s.Date().String(), s.Week, s.RecordedAt.Format("2006-01-02 15:04:05"))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
