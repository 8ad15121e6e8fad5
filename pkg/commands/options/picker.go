// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/daterange"
	"tableflip.dev/datepick/pkg/maskinput"
	"tableflip.dev/datepick/pkg/picker"
)

// PickerOptions captures the window and layout flags shared by the picker
// commands.
type PickerOptions struct {
	StartDay  int
	MinString string
	MaxString string
}

// AddPickerArgs wires the window flags on the provided command.
func AddPickerArgs(cmd *cobra.Command, o *PickerOptions) {
	cmd.Flags().IntVar(&o.StartDay, "start-day", 0,
		"First day of the displayed week, 0 = Monday through 6 = Sunday.")
	cmd.Flags().StringVar(&o.MinString, "min", "",
		`Exclusive lower bound, example: --min="10/06/2026". Defaults to today.`)
	cmd.Flags().StringVar(&o.MaxString, "max", "",
		`Exclusive upper bound, example: --max="20/06/2026".`)
}

// GetBounds resolves the flag values into a selectable window. An empty
// --min defaults to today so only future dates are selectable.
func (o *PickerOptions) GetBounds() (daterange.Bounds, error) {
	cfg := picker.NewConfig("")
	bounds := cfg.Bounds

	if o.MinString != "" {
		d, ok := maskinput.Resolve(maskinput.Format(o.MinString))
		if !ok {
			return daterange.Bounds{}, fmt.Errorf("invalid --min date %q, want DD/MM/YYYY", o.MinString)
		}
		bounds.Min = &d
	}
	if o.MaxString != "" {
		d, ok := maskinput.Resolve(maskinput.Format(o.MaxString))
		if !ok {
			return daterange.Bounds{}, fmt.Errorf("invalid --max date %q, want DD/MM/YYYY", o.MaxString)
		}
		bounds.Max = &d
	}
	return bounds, nil
}

// RoleOptions selects which side of the range a command operates on.
type RoleOptions struct {
	Role string
	All  bool
}

// AddRoleArgs wires role selection flags on the provided command.
func AddRoleArgs(cmd *cobra.Command, o *RoleOptions) {
	cmd.Flags().StringVarP(&o.Role, "role", "r", "",
		`Limit to one role, "start" or "end".`)
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Operate on every role.")
}

// GetRole validates the role flag.
func (o *RoleOptions) GetRole() (picker.Role, error) {
	switch o.Role {
	case "":
		return picker.RoleNone, nil
	case string(picker.RoleStart):
		return picker.RoleStart, nil
	case string(picker.RoleEnd):
		return picker.RoleEnd, nil
	default:
		return picker.RoleNone, fmt.Errorf("unknown role %q, want start or end", o.Role)
	}
}

// IDOptions
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of the recorded selection.")
}
