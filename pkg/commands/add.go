package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/commands/options"
	"tableflip.dev/gratitude/pkg/runner/add"
	"tableflip.dev/gratitude/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}

	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"new", "write"},
		Short:   "Record what you are grateful for today",
		Example: `
gratitude add coffee with an old friend
gratitude add --template
gratitude add sunrise over the bay --image sunrise.jpg
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 && !ao.FromTemplate {
				return errors.New("requires an entry")
			}
			ao.Text = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Text:         ao.Text,
				ImagePath:    ao.ImagePath,
				FromTemplate: ao.FromTemplate,
				Persistence:  p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddAddArgs(cmd, ao)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
