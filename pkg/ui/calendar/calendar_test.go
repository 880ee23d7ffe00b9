package calendar

import (
	"strings"
	"testing"
	"time"
)

func TestRenderRowCount(t *testing.T) {
	// March 2026 starts on a Sunday and has 31 days: exactly 5 rows.
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	out := Render(month, nil, Options{ShowHeader: true})
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("expected header + 5 rows, got %d lines", len(lines))
	}
}

func TestRenderZeroMonth(t *testing.T) {
	if out := Render(time.Time{}, nil, DefaultOptions()); out != "" {
		t.Fatalf("expected empty render for zero month, got %q", out)
	}
}

func TestRenderIncludesEveryDayGlyph(t *testing.T) {
	month := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	out := Render(month, []Day{{Day: 14, Count: 2}}, Options{})
	for _, glyph := range []string{"①", "⑭", "㉘"} {
		if !strings.Contains(out, glyph) {
			t.Fatalf("expected %s in output", glyph)
		}
	}
	if strings.Contains(out, "㉙") {
		t.Fatalf("2026 February has 28 days")
	}
}
