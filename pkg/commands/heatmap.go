package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/commands/options"
	"tableflip.dev/gratitude/pkg/runner/heatmap"
	"tableflip.dev/gratitude/pkg/store"
)

func addHeatmap(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:     "heatmap",
		Aliases: []string{"activity"},
		Short:   "Chart how often you journal",
		Example: `
gratitude heatmap
gratitude heatmap --window 12w
gratitude heatmap --month 2026-08
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := heatmap.Heatmap{
				Window:      wo.Window,
				Month:       wo.Month,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
