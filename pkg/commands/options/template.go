package options

import (
	"github.com/spf13/cobra"
)

// TemplateOptions
type TemplateOptions struct {
	ID      int64
	Title   string
	Content string
}

func AddTemplateIDArgs(cmd *cobra.Command, o *TemplateOptions) {
	cmd.Flags().Int64Var(&o.ID, "id", 0,
		"Specify the id of a template; omit to pick interactively.")
}

func AddTemplateBodyArgs(cmd *cobra.Command, o *TemplateOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Title for the new template.")
	cmd.Flags().StringVarP(&o.Content, "content", "c", "",
		"Prompt text for the new template.")
}
