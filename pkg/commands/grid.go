package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/caldate"
	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/printers"
)

func addGrid(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	year := 0
	month := 0
	wholeYear := false

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "print the month grid the picker renders",
		Example: `
datepick grid
datepick grid --month=12 --year=2026
datepick grid --year=2026 --full-year --start-day=6
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds, err := po.GetBounds()
			if err != nil {
				return err
			}

			today := caldate.Today()
			if year == 0 {
				year = today.Year
			}
			if month == 0 {
				month = int(today.Month)
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("invalid --month %d, want 1 through 12", month)
			}

			pp := printers.PrettyPrint{}
			if wholeYear {
				pp.Year(year, po.StartDay, bounds)
				return nil
			}
			pp.Month(year, time.Month(month), po.StartDay, bounds, nil)
			return nil
		},
	}

	options.AddPickerArgs(cmd, po)
	cmd.Flags().IntVar(&year, "year", 0, "Year to print. Defaults to the current year.")
	cmd.Flags().IntVar(&month, "month", 0, "Month to print, 1 through 12. Defaults to the current month.")
	cmd.Flags().BoolVar(&wholeYear, "full-year", false, "Print all twelve months.")

	topLevel.AddCommand(cmd)
}
