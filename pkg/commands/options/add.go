package options

import (
	"github.com/spf13/cobra"
)

// AddOptions
type AddOptions struct {
	Text         string
	ImagePath    string
	FromTemplate bool
}

func AddAddArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVarP(&o.ImagePath, "image", "i", "",
		"Attach an image file to the entry.")
	cmd.Flags().BoolVarP(&o.FromTemplate, "template", "t", false,
		"Prefill the entry with the selected template prompt.")
}
