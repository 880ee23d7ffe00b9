package remind

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/gratitude/pkg/notify"
	"tableflip.dev/gratitude/pkg/settings"
	"tableflip.dev/gratitude/pkg/store"
)

type staticSource struct {
	token string
	calls int
}

func (s *staticSource) Token(ctx context.Context) (string, error) {
	s.calls++
	return s.token, nil
}

func load(t *testing.T) store.Persistence {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

type testConfig struct{ path string }

func (t testConfig) BasePath() string       { return t.path }
func (t testConfig) NotifyEndpoint() string { return "" }
func (t testConfig) NotifyKey() string      { return "" }

func TestRegisterUsesDefaultsWhenUnset(t *testing.T) {
	src := &staticSource{token: "tok"}
	r := Register{Source: src, Persistence: load(t)}

	// Defaults have notifications on, so registration proceeds.
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.calls != 1 {
		t.Fatalf("expected one token request, got %d", src.calls)
	}
}

func TestRegisterRefusedWhenDisabled(t *testing.T) {
	p := load(t)
	s := settings.Defaults()
	s.NotificationsEnabled = false
	if err := p.SaveSettings(s); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	src := &staticSource{token: "tok"}
	r := Register{Source: src, Persistence: p}
	if err := r.Do(context.Background()); !errors.Is(err, notify.ErrNotificationsDisabled) {
		t.Fatalf("expected ErrNotificationsDisabled, got %v", err)
	}
	if src.calls != 0 {
		t.Fatalf("token requested despite disabled notifications")
	}
}
