package history

import (
	"testing"
	"time"

	"tableflip.dev/gratitude/pkg/entry"
)

func at(id int64, t time.Time) *entry.Entry {
	e := entry.New("note", "")
	e.ID = id
	e.Created = entry.Timestamp{Time: t}
	return e
}

func TestPaginateWindows(t *testing.T) {
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	all := make([]*entry.Entry, 0, 25)
	for i := 0; i < 25; i++ {
		all = append(all, at(int64(i+1), base.AddDate(0, 0, i)))
	}

	page, pages, window := paginate(all, 1, 10)
	if page != 1 || pages != 3 || len(window) != 10 {
		t.Fatalf("page 1: got page=%d pages=%d len=%d", page, pages, len(window))
	}

	page, pages, window = paginate(all, 3, 10)
	if page != 3 || pages != 3 || len(window) != 5 {
		t.Fatalf("page 3: got page=%d pages=%d len=%d", page, pages, len(window))
	}

	// Out-of-range pages clamp instead of failing.
	page, _, window = paginate(all, 99, 10)
	if page != 3 || len(window) != 5 {
		t.Fatalf("clamp high: got page=%d len=%d", page, len(window))
	}
	page, _, window = paginate(all, 0, 10)
	if page != 1 || len(window) != 10 {
		t.Fatalf("clamp low: got page=%d len=%d", page, len(window))
	}
}

func TestPaginateEmpty(t *testing.T) {
	page, pages, window := paginate(nil, 1, 10)
	if page != 1 || pages != 1 || len(window) != 0 {
		t.Fatalf("empty: got page=%d pages=%d len=%d", page, pages, len(window))
	}
}

func TestSortDescending(t *testing.T) {
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	all := []*entry.Entry{
		at(1, base),
		at(3, base.AddDate(0, 0, 2)),
		at(2, base.AddDate(0, 0, 1)),
	}
	sortDescending(all)
	for i, want := range []int64{3, 2, 1} {
		if all[i].ID != want {
			t.Fatalf("position %d: expected id %d, got %d", i, want, all[i].ID)
		}
	}
}
