package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/timeutil"
)

// WindowOptions
type WindowOptions struct {
	Window string
	Month  string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.Window, "window", timeutil.DefaultWindow,
		"Trailing window to chart, example: 30d, 12w, 1y.")
	cmd.Flags().StringVar(&o.Month, "month", "",
		`Render a single month as a calendar, example: --month="2026-08".`)
}
