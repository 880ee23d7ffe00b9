// Package history lists past entries: paging newest first, a single-day
// calendar lookup, and a watch mode that re-renders on storage changes.
package history

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/printers"
	"tableflip.dev/gratitude/pkg/store"
)

// DefaultPageSize is how many entries the history view shows per page.
const DefaultPageSize = 10

type History struct {
	ShowID   bool
	Page     int
	PageSize int
	On       *time.Time
	Watch    bool

	Persistence store.Persistence
}

func (n *History) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get history, no persistence")
	}

	if !n.Watch {
		return n.render(ctx)
	}

	ch, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	if err := n.render(ctx); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			fmt.Println("")
			if err := n.render(ctx); err != nil {
				return err
			}
		}
	}
}

func (n *History) render(ctx context.Context) error {
	all := n.Persistence.ListAll(ctx)
	sortDescending(all)

	pp := printers.PrettyPrint{ShowID: n.ShowID}

	if n.On != nil {
		return n.renderDay(pp, all)
	}

	page, pages, window := paginate(all, n.Page, n.PageSize)

	pp.TitleWithCount("Journal History", len(all))
	pp.Entries(window...)
	if pages > 1 {
		pp.Page(page, pages)
	}
	return nil
}

// renderDay prints the full entry (or entries) for one calendar day.
func (n *History) renderDay(pp printers.PrettyPrint, all []*entry.Entry) error {
	found := false
	for _, e := range all {
		if e.On(*n.On) {
			pp.Entry(e)
			found = true
		}
	}
	if !found {
		pp.Title(n.On.Format("January 2, 2006"))
		pp.Entries()
	}
	return nil
}

func sortDescending(entries []*entry.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		left, right := entries[i], entries[j]
		if left.Created.Equal(right.Created.Time) {
			return left.ID > right.ID
		}
		return left.Created.After(right.Created.Time)
	})
}

// paginate clamps the requested page into range and returns the visible
// window along with the resolved page and page count.
func paginate(all []*entry.Entry, page, size int) (int, int, []*entry.Entry) {
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := (len(all) + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	lo := (page - 1) * size
	hi := lo + size
	if hi > len(all) {
		hi = len(all)
	}
	return page, pages, all[lo:hi]
}
