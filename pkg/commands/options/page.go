package options

import (
	"github.com/spf13/cobra"
)

// PageOptions
type PageOptions struct {
	Page     int
	PageSize int
	Watch    bool
}

func AddPageArgs(cmd *cobra.Command, o *PageOptions) {
	cmd.Flags().IntVarP(&o.Page, "page", "p", 1,
		"Page of entries to show, newest first.")
	cmd.Flags().IntVar(&o.PageSize, "page-size", 0,
		"Entries per page (default 10).")
}

func AddWatchArgs(cmd *cobra.Command, o *PageOptions) {
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Keep running and re-render when the journal changes.")
}
