package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/commands/options"
	"tableflip.dev/gratitude/pkg/runner/templates"
	"tableflip.dev/gratitude/pkg/store"
)

func addTemplates(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"template", "prompts"},
		Short:   "Manage the writing prompt templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTemplatesList(cmd)
	addTemplatesSelect(cmd)
	addTemplatesCreate(cmd)
	addTemplatesShow(cmd)

	topLevel.AddCommand(cmd)
}

func addTemplatesList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates, marking the active one",
		Example: `
gratitude templates list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := templates.List{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addTemplatesSelect(topLevel *cobra.Command) {
	to := &options.TemplateOptions{}

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Choose the active template",
		Example: `
gratitude templates select
gratitude templates select --id 2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := templates.Select{
				ID:          to.ID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTemplateIDArgs(cmd, to)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addTemplatesCreate(topLevel *cobra.Command) {
	to := &options.TemplateOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a custom template and make it active",
		Example: `
gratitude templates create --title "Evening" --content "What made tonight calm?"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := templates.Create{
				Title:       to.Title,
				Content:     to.Content,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTemplateBodyArgs(cmd, to)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addTemplatesShow(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the active template in full",
		Example: `
gratitude templates show
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := templates.Show{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
