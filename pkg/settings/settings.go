// Package settings defines the single user-preferences record.
package settings

import (
	"fmt"
	"time"
)

// Theme is the UI theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ParseTheme validates a theme name.
func ParseTheme(v string) (Theme, error) {
	switch Theme(v) {
	case ThemeLight, ThemeDark, ThemeSystem:
		return Theme(v), nil
	}
	return "", fmt.Errorf("settings: unknown theme %q (want light, dark, or system)", v)
}

// Settings is the one-per-installation preferences record. It is overwritten
// wholesale on every save; there is no partial update.
type Settings struct {
	NotificationsEnabled bool   `json:"notifications"`
	ReminderTime         string `json:"notificationTime"`
	Theme                Theme  `json:"theme"`
}

// Defaults are applied whenever no record has ever been saved.
func Defaults() Settings {
	return Settings{
		NotificationsEnabled: true,
		ReminderTime:         "20:00",
		Theme:                ThemeSystem,
	}
}

// Validate checks the reminder time format and the theme value.
func (s Settings) Validate() error {
	if _, err := time.Parse("15:04", s.ReminderTime); err != nil {
		return fmt.Errorf("settings: reminder time %q is not HH:MM: %w", s.ReminderTime, err)
	}
	if _, err := ParseTheme(string(s.Theme)); err != nil {
		return err
	}
	return nil
}
