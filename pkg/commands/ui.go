package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/recent"
	"tableflip.dev/datepick/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based date picker",
		Example: `
datepick ui
datepick ui --min="10/06/2026" --max="20/08/2026" --start-day=6
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds, err := po.GetBounds()
			if err != nil {
				return err
			}
			store, err := recent.Load(nil)
			if err != nil {
				// The picker works without a recents store; say so and go on.
				fmt.Fprintf(os.Stderr, "recents unavailable: %v\n", err)
				store = nil
			}
			return app.Run(app.Options{
				StartDay: po.StartDay,
				Bounds:   bounds,
				Store:    store,
			})
		},
	}

	options.AddPickerArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
