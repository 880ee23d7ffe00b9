package template

import (
	"strings"
	"time"
)

// Catalog is the in-memory template list for one session: the built-ins plus
// any customs created since startup. Customs deliberately do not survive a
// restart; only the selected template is persisted.
type Catalog struct {
	customs []Template
	now     func() time.Time
}

// NewCatalog returns a catalog seeded with the built-in templates.
func NewCatalog() *Catalog {
	return &Catalog{now: time.Now}
}

// All returns the built-ins followed by session-created customs, in creation
// order. The returned slice is a copy.
func (c *Catalog) All() []Template {
	all := Builtin()
	return append(all, c.customs...)
}

// Find returns the template with the given id, built-in or custom.
func (c *Catalog) Find(id int64) (Template, bool) {
	for _, t := range c.All() {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// AddCustom appends a user-created template. The id derives from the current
// time in milliseconds, which keeps customs structurally clear of the small
// built-in id range. Titles are not deduplicated.
func (c *Catalog) AddCustom(title, content string) (Template, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return Template{}, ErrInvalidTemplate
	}
	t := Template{
		ID:      c.now().UnixMilli(),
		Title:   title,
		Content: content,
	}
	c.customs = append(c.customs, t)
	return t, nil
}
