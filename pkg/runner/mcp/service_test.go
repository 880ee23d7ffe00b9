package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/settings"
	"tableflip.dev/gratitude/pkg/store"
	"tableflip.dev/gratitude/pkg/template"
)

type memoryStore struct {
	entries  map[int64]*entry.Entry
	counter  int64
	selected *template.Template
	saved    *settings.Settings
	now      func() time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		entries: make(map[int64]*entry.Entry),
		now:     time.Now,
	}
}

func (m *memoryStore) Create(ctx context.Context, text, image string) (*entry.Entry, error) {
	m.counter++
	e := entry.New(text, image)
	e.ID = m.counter
	e.Created = entry.Timestamp{Time: m.now()}
	m.entries[e.ID] = e
	return e, nil
}

func (m *memoryStore) ListAll(ctx context.Context) []*entry.Entry {
	out := make([]*entry.Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	return out
}

func (m *memoryStore) Get(ctx context.Context, id int64) (*entry.Entry, bool) {
	e, ok := m.entries[id]
	return e, ok
}

func (m *memoryStore) Delete(ctx context.Context, id int64) error {
	delete(m.entries, id)
	return nil
}

func (m *memoryStore) SetSelected(t template.Template) error {
	m.selected = &t
	return nil
}

func (m *memoryStore) GetSelected(ctx context.Context) (template.Template, bool, error) {
	if m.selected == nil {
		return template.Template{}, false, nil
	}
	return *m.selected, true, nil
}

func (m *memoryStore) SaveSettings(s settings.Settings) error {
	m.saved = &s
	return nil
}

func (m *memoryStore) LoadSettings(ctx context.Context) (settings.Settings, bool, error) {
	if m.saved == nil {
		return settings.Settings{}, false, nil
	}
	return *m.saved, true, nil
}

func (m *memoryStore) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func TestServiceAddAndListEntries(t *testing.T) {
	mem := newMemoryStore()
	svc := NewService(mem)
	ctx := context.Background()

	first, err := svc.AddEntry(ctx, "grateful for coffee")
	if err != nil {
		t.Fatalf("AddEntry() error = %v", err)
	}
	if first.ID == 0 {
		t.Fatalf("AddEntry() returned zero id")
	}
	if first.HasImage {
		t.Fatalf("AddEntry() hasImage = true, want false")
	}

	mem.now = func() time.Time { return time.Now().Add(time.Hour) }
	second, err := svc.AddEntry(ctx, "grateful for rain")
	if err != nil {
		t.Fatalf("AddEntry() error = %v", err)
	}

	entries, err := svc.ListEntries(ctx)
	if err != nil {
		t.Fatalf("ListEntries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ListEntries() len = %d, want 2", len(entries))
	}
	if entries[0].ID != second.ID {
		t.Fatalf("ListEntries() first id = %d, want newest %d", entries[0].ID, second.ID)
	}
}

func TestServiceGetEntryNotFound(t *testing.T) {
	svc := NewService(newMemoryStore())

	_, err := svc.GetEntry(context.Background(), 42)
	if !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("GetEntry() error = %v, want ErrEntryNotFound", err)
	}
}

func TestServiceDeleteEntry(t *testing.T) {
	mem := newMemoryStore()
	svc := NewService(mem)
	ctx := context.Background()

	dto, err := svc.AddEntry(ctx, "short lived")
	if err != nil {
		t.Fatalf("AddEntry() error = %v", err)
	}
	if err := svc.DeleteEntry(ctx, dto.ID); err != nil {
		t.Fatalf("DeleteEntry() error = %v", err)
	}
	if _, err := svc.GetEntry(ctx, dto.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("GetEntry() after delete error = %v, want ErrEntryNotFound", err)
	}
	// Deleting again is a no-op.
	if err := svc.DeleteEntry(ctx, dto.ID); err != nil {
		t.Fatalf("DeleteEntry() repeat error = %v", err)
	}
}

func TestServiceGetStreak(t *testing.T) {
	mem := newMemoryStore()
	svc := NewService(mem)
	ctx := context.Background()

	base := time.Now()
	for _, offset := range []time.Duration{0, -24 * time.Hour, -48 * time.Hour} {
		when := base.Add(offset)
		mem.now = func() time.Time { return when }
		if _, err := svc.AddEntry(ctx, "entry"); err != nil {
			t.Fatalf("AddEntry() error = %v", err)
		}
	}

	dto, err := svc.GetStreak(ctx)
	if err != nil {
		t.Fatalf("GetStreak() error = %v", err)
	}
	if dto.Days != 3 {
		t.Fatalf("GetStreak() days = %d, want 3", dto.Days)
	}
	if dto.EntryCount != 3 {
		t.Fatalf("GetStreak() entryCount = %d, want 3", dto.EntryCount)
	}
}

func TestServiceGetHeatmap(t *testing.T) {
	mem := newMemoryStore()
	svc := NewService(mem)
	ctx := context.Background()

	if _, err := svc.AddEntry(ctx, "today"); err != nil {
		t.Fatalf("AddEntry() error = %v", err)
	}

	dto, err := svc.GetHeatmap(ctx, "7d")
	if err != nil {
		t.Fatalf("GetHeatmap() error = %v", err)
	}
	if dto.Window != "7d" {
		t.Fatalf("GetHeatmap() window = %q, want 7d", dto.Window)
	}
	total := 0
	for _, b := range dto.Buckets {
		total += b.Count
	}
	if total != 1 {
		t.Fatalf("GetHeatmap() total count = %d, want 1", total)
	}
}

func TestServiceGetHeatmapRejectsBadWindow(t *testing.T) {
	svc := NewService(newMemoryStore())

	if _, err := svc.GetHeatmap(context.Background(), "soon"); err == nil {
		t.Fatalf("GetHeatmap() expected error for bad window")
	}
}

func TestServiceTemplatesSelection(t *testing.T) {
	mem := newMemoryStore()
	svc := NewService(mem)
	ctx := context.Background()

	templates, err := svc.ListTemplates(ctx)
	if err != nil {
		t.Fatalf("ListTemplates() error = %v", err)
	}
	if len(templates) != 3 {
		t.Fatalf("ListTemplates() len = %d, want 3 builtins", len(templates))
	}
	if !templates[0].Selected {
		t.Fatalf("ListTemplates() default selection missing on first builtin")
	}

	selected, err := svc.SelectTemplate(ctx, templates[1].ID)
	if err != nil {
		t.Fatalf("SelectTemplate() error = %v", err)
	}
	if !selected.Selected {
		t.Fatalf("SelectTemplate() selected = false")
	}

	templates, err = svc.ListTemplates(ctx)
	if err != nil {
		t.Fatalf("ListTemplates() error = %v", err)
	}
	if templates[0].Selected || !templates[1].Selected {
		t.Fatalf("ListTemplates() selection did not move to second builtin")
	}
}

func TestServiceSelectTemplateUnknownID(t *testing.T) {
	svc := NewService(newMemoryStore())

	if _, err := svc.SelectTemplate(context.Background(), 9999); err == nil {
		t.Fatalf("SelectTemplate() expected error for unknown id")
	}
}

func TestServiceCreateTemplate(t *testing.T) {
	mem := newMemoryStore()
	svc := NewService(mem)
	ctx := context.Background()

	dto, err := svc.CreateTemplate(ctx, "Evening", "What made tonight calm?")
	if err != nil {
		t.Fatalf("CreateTemplate() error = %v", err)
	}
	if !dto.Selected {
		t.Fatalf("CreateTemplate() selected = false, want true")
	}
	if mem.selected == nil || mem.selected.ID != dto.ID {
		t.Fatalf("CreateTemplate() did not persist the selection")
	}

	if _, err := svc.CreateTemplate(ctx, "  ", "content"); !errors.Is(err, template.ErrInvalidTemplate) {
		t.Fatalf("CreateTemplate() blank title error = %v, want ErrInvalidTemplate", err)
	}
}

func TestServiceGetSettingsDefaults(t *testing.T) {
	mem := newMemoryStore()
	svc := NewService(mem)
	ctx := context.Background()

	dto, err := svc.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if dto.Saved {
		t.Fatalf("GetSettings() saved = true, want defaults")
	}
	if !dto.Notifications || dto.ReminderTime != "20:00" || dto.Theme != "system" {
		t.Fatalf("GetSettings() defaults = %+v", dto)
	}

	mem.saved = &settings.Settings{NotificationsEnabled: false, ReminderTime: "07:30", Theme: settings.ThemeDark}
	dto, err = svc.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if !dto.Saved || dto.Notifications || dto.ReminderTime != "07:30" || dto.Theme != "dark" {
		t.Fatalf("GetSettings() saved = %+v", dto)
	}
}

func TestServiceRequiresPersistence(t *testing.T) {
	svc := &Service{}

	if _, err := svc.AddEntry(context.Background(), "text"); err == nil {
		t.Fatalf("AddEntry() expected error without persistence")
	}
	if _, err := svc.GetStreak(context.Background()); err == nil {
		t.Fatalf("GetStreak() expected error without persistence")
	}
}
