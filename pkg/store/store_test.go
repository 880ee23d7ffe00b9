package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/gratitude/pkg/settings"
	"tableflip.dev/gratitude/pkg/template"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string      { return t.path }
func (t testConfig) NotifyEndpoint() string { return "" }
func (t testConfig) NotifyKey() string      { return "" }

func load(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestCreateThenListAll(t *testing.T) {
	ctx := context.Background()
	p := load(t)

	before := len(p.ListAll(ctx))

	e, err := p.Create(ctx, "grateful for tests", "data:image/png;base64,aGk=")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if e.Created.IsZero() {
		t.Fatalf("expected created timestamp")
	}

	all := p.ListAll(ctx)
	if len(all) != before+1 {
		t.Fatalf("expected %d entries, got %d", before+1, len(all))
	}
	got := all[len(all)-1]
	if got.Text != "grateful for tests" {
		t.Fatalf("unexpected text: %q", got.Text)
	}
	if got.Image != "data:image/png;base64,aGk=" {
		t.Fatalf("unexpected image payload: %q", got.Image)
	}
}

func TestIDsMonotonicAcrossDeletes(t *testing.T) {
	ctx := context.Background()
	p := load(t)

	a, err := p.Create(ctx, "one", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b, err := p.Create(ctx, "two", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.ID <= a.ID {
		t.Fatalf("expected increasing ids, got %d then %d", a.ID, b.ID)
	}

	if err := p.Delete(ctx, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	c, err := p.Create(ctx, "three", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID <= b.ID {
		t.Fatalf("deleted id %d was reused as %d", b.ID, c.ID)
	}
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	ctx := context.Background()
	p := load(t)

	a, _ := p.Create(ctx, "keep", "")
	b, _ := p.Create(ctx, "drop", "")

	if err := p.Delete(ctx, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	all := p.ListAll(ctx)
	if len(all) != 1 {
		t.Fatalf("expected 1 entry left, got %d", len(all))
	}
	if all[0].ID != a.ID {
		t.Fatalf("wrong entry removed: left %d, wanted %d", all[0].ID, a.ID)
	}

	if _, ok := p.Get(ctx, b.ID); ok {
		t.Fatalf("deleted entry still readable")
	}
}

func TestDeleteMissingIsNoOp(t *testing.T) {
	ctx := context.Background()
	p := load(t)

	p.Create(ctx, "only", "")
	if err := p.Delete(ctx, 9999); err != nil {
		t.Fatalf("delete of missing id must not fail: %v", err)
	}
	if len(p.ListAll(ctx)) != 1 {
		t.Fatalf("store changed by no-op delete")
	}
}

func TestSelectedTemplateReplace(t *testing.T) {
	ctx := context.Background()
	p := load(t)

	if _, ok, err := p.GetSelected(ctx); err != nil || ok {
		t.Fatalf("expected absent selection, got ok=%v err=%v", ok, err)
	}

	a := template.Builtin()[0]
	b := template.Builtin()[1]

	if err := p.SetSelected(a); err != nil {
		t.Fatalf("set selected: %v", err)
	}
	if err := p.SetSelected(b); err != nil {
		t.Fatalf("set selected: %v", err)
	}

	got, ok, err := p.GetSelected(ctx)
	if err != nil || !ok {
		t.Fatalf("expected a selection, got ok=%v err=%v", ok, err)
	}
	if got.ID != b.ID || got.Title != b.Title {
		t.Fatalf("expected %q selected, got %q", b.Title, got.Title)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := load(t)

	if _, ok, err := p.LoadSettings(ctx); err != nil || ok {
		t.Fatalf("expected absent settings, got ok=%v err=%v", ok, err)
	}

	s := settings.Defaults()
	s.NotificationsEnabled = false
	s.ReminderTime = "07:30"
	s.Theme = settings.ThemeDark

	if err := p.SaveSettings(s); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	got, ok, err := p.LoadSettings(ctx)
	if err != nil || !ok {
		t.Fatalf("expected settings, got ok=%v err=%v", ok, err)
	}
	if got != s {
		t.Fatalf("round trip mismatch: %+v != %+v", got, s)
	}
}

func TestMigrateStampsSchema(t *testing.T) {
	base := t.TempDir()
	if _, err := Load(testConfig{path: base}); err != nil {
		t.Fatalf("load: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(base, schemaFile))
	if err != nil {
		t.Fatalf("expected schema stamp: %v", err)
	}
	if string(data) != "1" {
		t.Fatalf("unexpected schema version %q", data)
	}
	for _, dir := range []string{prefixEntries, prefixTemplate, prefixSettings} {
		if _, err := os.Stat(filepath.Join(base, dir)); err != nil {
			t.Fatalf("expected store directory %s: %v", dir, err)
		}
	}

	// Re-opening an already stamped base path is a no-op.
	if _, err := Load(testConfig{path: base}); err != nil {
		t.Fatalf("reopen: %v", err)
	}
}

func TestCounterRecoveredFromEntries(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	a, _ := p.Create(ctx, "one", "")
	b, _ := p.Create(ctx, "two", "")

	// Losing the counter must not lead to id reuse while entries remain.
	if err := os.Remove(filepath.Join(base, counterFile)); err != nil {
		t.Fatalf("remove counter: %v", err)
	}
	p2, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	c, err := p2.Create(ctx, "three", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID <= b.ID || c.ID <= a.ID {
		t.Fatalf("expected fresh id after counter loss, got %d", c.ID)
	}
}

func TestCreateFailsWhenStorageUnavailable(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := os.RemoveAll(base); err != nil {
		t.Fatalf("remove base: %v", err)
	}
	if err := os.WriteFile(base, []byte("not a directory"), 0o644); err != nil {
		t.Fatalf("block base path: %v", err)
	}

	_, err = p.Create(context.Background(), "doomed", "")
	if err == nil {
		t.Fatalf("expected create failure")
	}
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestCreateTimestampsWithClock(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	raw, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	p := raw.(*persistence)
	frozen := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)
	p.clock = func() time.Time { return frozen }

	e, err := p.Create(ctx, "frozen", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !e.Created.Equal(frozen) {
		t.Fatalf("expected %v, got %v", frozen, e.Created)
	}

	got, ok := p.Get(ctx, e.ID)
	if !ok {
		t.Fatalf("expected to read entry back")
	}
	if !got.Created.Equal(frozen) {
		t.Fatalf("persisted timestamp drifted: %v", got.Created)
	}
}
