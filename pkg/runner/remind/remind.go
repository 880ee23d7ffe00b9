// Package remind registers for push delivery of the daily reminder.
package remind

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/gratitude/pkg/notify"
	"tableflip.dev/gratitude/pkg/printers"
	"tableflip.dev/gratitude/pkg/settings"
	"tableflip.dev/gratitude/pkg/store"
)

// Register obtains a delivery token. Registration is refused while the
// notifications setting is off.
type Register struct {
	Source notify.TokenSource

	Persistence store.Persistence
}

func (n *Register) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not register, no persistence")
	}
	if n.Source == nil {
		return errors.New("can not register, no token source")
	}

	s, ok, err := n.Persistence.LoadSettings(ctx)
	if err != nil {
		return err
	}
	if !ok {
		s = settings.Defaults()
	}
	if !s.NotificationsEnabled {
		return notify.ErrNotificationsDisabled
	}

	token, err := n.Source.Token(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Reminder registered for " + s.ReminderTime)
	fmt.Println(token)
	return nil
}
