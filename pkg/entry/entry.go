package entry

import (
	"strings"
	"time"
)

// New builds an entry with the provided body and optional image payload.
// The ID and Created fields are assigned by the store at write time.
func New(text, image string) *Entry {
	return &Entry{
		Text:  text,
		Image: image,
	}
}

// Entry is one journaled note. Entries are immutable once stored; the only
// lifecycle operations are create and delete.
type Entry struct {
	ID      int64     `json:"id"`
	Text    string    `json:"text"`
	Image   string    `json:"image,omitempty"`
	Created Timestamp `json:"created"`
}

// HasImage reports whether an image payload was attached.
func (e *Entry) HasImage() bool {
	return e != nil && e.Image != ""
}

// Title renders the entry heading used by list views, e.g. "January 2, 2006".
func (e *Entry) Title() string {
	if e == nil || e.Created.IsZero() {
		return ""
	}
	return e.Created.Local().Format("January 2, 2006")
}

// Preview returns the first line of the body, truncated for list views.
func (e *Entry) Preview(max int) string {
	if e == nil {
		return ""
	}
	text := e.Text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	if max > 0 && len(text) > max {
		return text[:max-1] + "…"
	}
	return text
}

// On reports whether the entry was created on the same calendar day as then.
func (e *Entry) On(then time.Time) bool {
	return e != nil && e.Created.SameDay(then)
}
