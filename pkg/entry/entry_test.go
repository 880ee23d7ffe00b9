package entry

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	noon := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.Local)
	ts := Timestamp{Time: noon}

	if !ts.SameDay(noon.Add(11 * time.Hour)) {
		t.Fatalf("expected same day for 23:00 on the same date")
	}
	if ts.SameDay(noon.Add(13 * time.Hour)) {
		t.Fatalf("expected different day for 01:00 the next date")
	}
	if ts.SameDay(noon.AddDate(1, 0, 0)) {
		t.Fatalf("expected different day for the same date next year")
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	e := New("grateful for rain", "")
	e.Created = Timestamp{Time: time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)}

	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Entry
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Created.Equal(e.Created.Time) {
		t.Fatalf("expected %v, got %v", e.Created, got.Created)
	}
	if got.Image != "" {
		t.Fatalf("expected no image, got %q", got.Image)
	}
}

func TestPreview(t *testing.T) {
	e := New("first line\nsecond line", "")
	if got := e.Preview(0); got != "first line" {
		t.Fatalf("expected first line, got %q", got)
	}
	if got := e.Preview(6); got != "first…" {
		t.Fatalf("expected truncation, got %q", got)
	}
}
