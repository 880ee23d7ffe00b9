package options

import (
	"github.com/spf13/cobra"
)

// SettingsOptions
type SettingsOptions struct {
	Notifications bool
	ReminderTime  string
	Theme         string
}

func AddSettingsArgs(cmd *cobra.Command, o *SettingsOptions) {
	cmd.Flags().BoolVar(&o.Notifications, "notifications", true,
		"Enable or disable the daily reminder.")
	cmd.Flags().StringVar(&o.ReminderTime, "reminder", "",
		`Reminder time of day, example: --reminder="20:00".`)
	cmd.Flags().StringVar(&o.Theme, "theme", "",
		"Theme preference: light, dark, or system.")
}

// NotificationsPtr reports the notifications flag only when it was set on the
// command line, so unset flags do not clobber the stored value.
func (o *SettingsOptions) NotificationsPtr(cmd *cobra.Command) *bool {
	if !cmd.Flags().Changed("notifications") {
		return nil
	}
	v := o.Notifications
	return &v
}
