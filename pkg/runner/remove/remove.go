// Package remove deletes a single entry by id.
package remove

import (
	"context"
	"errors"

	"tableflip.dev/gratitude/pkg/printers"
	"tableflip.dev/gratitude/pkg/store"
)

type Remove struct {
	ID int64

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	e, ok := n.Persistence.Get(ctx, n.ID)
	if err := n.Persistence.Delete(ctx, n.ID); err != nil {
		return err
	}

	// Removing an id that never existed is a quiet success.
	if ok {
		pp := printers.PrettyPrint{}
		pp.Title("Removed " + e.Title())
	}
	return nil
}
