// Package heatmap renders per-day activity over a trailing window.
package heatmap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/printers"
	"tableflip.dev/gratitude/pkg/stats"
	"tableflip.dev/gratitude/pkg/store"
	"tableflip.dev/gratitude/pkg/timeutil"
	"tableflip.dev/gratitude/pkg/ui/calendar"
)

type Heatmap struct {
	// Window is a trailing-window expression such as "365d" or "12w".
	Window string
	// Month, when set as YYYY-MM, renders that single month as a shaded
	// calendar instead of the full window grid.
	Month string

	Persistence store.Persistence
}

func (n *Heatmap) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get heatmap, no persistence")
	}

	all := n.Persistence.ListAll(ctx)
	now := time.Now()

	if n.Month != "" {
		month, err := time.ParseInLocation("2006-01", n.Month, time.Local)
		if err != nil {
			return fmt.Errorf("invalid month %q (want YYYY-MM): %w", n.Month, err)
		}
		return n.renderMonth(all, month, now)
	}

	window, label, err := timeutil.ParseWindow(n.Window)
	if err != nil {
		return err
	}
	start, end := stats.TrailingWindow(now, window)
	counts := stats.Heatmap(all, start, end)

	pp := printers.PrettyPrint{}
	pp.TitleWithCount("Activity, trailing "+label, len(all))
	pp.NewLine()
	pp.Heatmap(counts, start, end)
	return nil
}

func (n *Heatmap) renderMonth(all []*entry.Entry, month, now time.Time) error {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	last := first.AddDate(0, 1, -1)
	counts := stats.Heatmap(all, first, last)

	days := make([]calendar.Day, 0, len(counts))
	for d, count := range counts {
		days = append(days, calendar.Day{
			Day:     d.Day,
			Count:   count,
			IsToday: d == stats.DayOf(now),
		})
	}

	pp := printers.PrettyPrint{}
	pp.Title(first.Format("January 2006"))
	fmt.Println(calendar.Render(first, days, calendar.DefaultOptions()))
	return nil
}
