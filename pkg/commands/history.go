package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/commands/options"
	"tableflip.dev/gratitude/pkg/runner/history"
	"tableflip.dev/gratitude/pkg/store"
)

func addHistory(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	po := &options.PageOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"list", "log"},
		Short:   "View your past entries, newest first",
		Example: `
gratitude history
gratitude history --page 2
gratitude history --on="2026-8-14"
gratitude history --watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			on, err := oo.GetOn()
			if err != nil {
				return err
			}

			s := history.History{
				ShowID:      io.ShowID,
				Page:        po.Page,
				PageSize:    po.PageSize,
				On:          on,
				Watch:       po.Watch,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddPageArgs(cmd, po)
	options.AddWatchArgs(cmd, po)
	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
