package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/printers"
	"tableflip.dev/datepick/pkg/recent"
)

func addRecent(topLevel *cobra.Command) {
	ro := &options.RoleOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}
	follow := false
	clear := false

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "list the dates committed in earlier sessions",
		Example: `
datepick recent
datepick recent --role=start
datepick recent --clear --role=end
datepick recent --follow
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := ro.GetRole()
			if err != nil {
				return oo.HandleError(err)
			}
			store, err := recent.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}

			if clear {
				return oo.HandleError(clearRecents(store, role, ro.All))
			}

			ctx := context.Background()
			if oo.JSON {
				return oo.HandleError(printRecentsJSON(ctx, store, role))
			}
			printRecents(ctx, store, role, io.ShowID)

			if follow {
				return followRecents(ctx, store, role, io.ShowID)
			}
			return nil
		},
	}

	options.AddRoleArgs(cmd, ro)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVar(&follow, "follow", false, "Keep watching the store and reprint on changes.")
	cmd.Flags().BoolVar(&clear, "clear", false, "Erase the recorded selections instead of listing them.")

	topLevel.AddCommand(cmd)
}

func clearRecents(store recent.Persistence, role picker.Role, all bool) error {
	if all {
		ctx := context.Background()
		for _, r := range store.Roles(ctx) {
			if err := store.Clear(r); err != nil {
				return err
			}
		}
		return nil
	}
	if role == picker.RoleNone {
		return fmt.Errorf("--clear needs --role or --all")
	}
	return store.Clear(role)
}

func printRecents(ctx context.Context, store recent.Persistence, role picker.Role, showID bool) {
	pp := printers.PrettyPrint{ShowID: showID}
	if role == picker.RoleNone {
		pp.Title("Recent selections")
		pp.Recents(store.ListAll(ctx)...)
		return
	}
	pp.Title(fmt.Sprintf("Recent %s selections", role))
	pp.Recents(store.List(ctx, role)...)
}

func printRecentsJSON(ctx context.Context, store recent.Persistence, role picker.Role) error {
	selections := store.ListAll(ctx)
	if role != picker.RoleNone {
		selections = store.List(ctx, role)
	}
	b, err := json.Marshal(selections)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(color.Output, string(b))
	return err
}

// followRecents blocks reprinting the table on every store change until the
// process is interrupted.
func followRecents(ctx context.Context, store recent.Persistence, role picker.Role, showID bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	events, err := store.Watch(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-sig:
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			printRecents(ctx, store, role, showID)
		}
	}
}
