// Package streak reports the current consecutive-day journaling streak.
package streak

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/gratitude/pkg/printers"
	"tableflip.dev/gratitude/pkg/stats"
	"tableflip.dev/gratitude/pkg/store"
)

type Streak struct {
	Persistence store.Persistence
}

func (n *Streak) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get streak, no persistence")
	}
	fmt.Println("")

	all := n.Persistence.ListAll(ctx)

	pp := printers.PrettyPrint{}
	pp.Title("Your Gratitude Journey")
	pp.Streak(stats.Streak(all, time.Now()))

	return nil
}
