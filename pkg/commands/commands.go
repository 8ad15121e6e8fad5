package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "datepick",
		Short: options.Wrap80("Accessible date-range picking on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGrid(topLevel)
	addRecent(topLevel)
	addVersion(topLevel)
}
