package settings

import "testing"

func TestDefaults(t *testing.T) {
	d := Defaults()
	if !d.NotificationsEnabled {
		t.Fatalf("expected notifications on by default")
	}
	if d.ReminderTime != "20:00" {
		t.Fatalf("expected 20:00 default reminder, got %q", d.ReminderTime)
	}
	if d.Theme != ThemeSystem {
		t.Fatalf("expected system theme default, got %q", d.Theme)
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	s := Defaults()
	s.ReminderTime = "25:99"
	if err := s.Validate(); err == nil {
		t.Fatalf("expected error for bad reminder time")
	}

	s = Defaults()
	s.Theme = "sepia"
	if err := s.Validate(); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestParseTheme(t *testing.T) {
	for _, v := range []string{"light", "dark", "system"} {
		if _, err := ParseTheme(v); err != nil {
			t.Fatalf("expected %q to parse: %v", v, err)
		}
	}
	if _, err := ParseTheme("Dark"); err == nil {
		t.Fatalf("theme names are case sensitive")
	}
}
