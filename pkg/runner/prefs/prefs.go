// Package prefs reads and overwrites the user-preferences record.
package prefs

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"tableflip.dev/gratitude/pkg/printers"
	"tableflip.dev/gratitude/pkg/settings"
	"tableflip.dev/gratitude/pkg/store"
)

// Show prints the stored settings, with defaults applied when nothing has
// ever been saved.
type Show struct {
	Persistence store.Persistence
}

func (n *Show) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show settings, no persistence")
	}

	s, ok, err := n.Persistence.LoadSettings(ctx)
	if err != nil {
		return err
	}
	if !ok {
		s = settings.Defaults()
	}

	pp := printers.PrettyPrint{}
	pp.Title("Settings")

	t := color.New()
	faint := color.New(color.Faint)
	_, _ = faint.Print("daily reminder  ")
	if s.NotificationsEnabled {
		_, _ = t.Printf("on at %s\n", s.ReminderTime)
	} else {
		_, _ = t.Println("off")
	}
	_, _ = faint.Print("theme           ")
	_, _ = t.Println(string(s.Theme))
	if !ok {
		_, _ = faint.Println("(defaults, nothing saved yet)")
	}
	_, _ = t.Println("")
	return nil
}

// Set overwrites the settings record wholesale. Unset fields keep the value
// of the stored record (or the defaults when none exists); the write itself
// always replaces the whole record.
type Set struct {
	Notifications *bool
	ReminderTime  string
	Theme         string

	Persistence store.Persistence
}

func (n *Set) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not save settings, no persistence")
	}

	s, ok, err := n.Persistence.LoadSettings(ctx)
	if err != nil {
		return err
	}
	if !ok {
		s = settings.Defaults()
	}

	if n.Notifications != nil {
		s.NotificationsEnabled = *n.Notifications
	}
	if n.ReminderTime != "" {
		s.ReminderTime = n.ReminderTime
	}
	if n.Theme != "" {
		theme, err := settings.ParseTheme(n.Theme)
		if err != nil {
			return err
		}
		s.Theme = theme
	}

	if err := s.Validate(); err != nil {
		return err
	}
	if err := n.Persistence.SaveSettings(s); err != nil {
		return err
	}

	show := Show{Persistence: n.Persistence}
	return show.Do(ctx)
}
