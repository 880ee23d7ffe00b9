// Package mcp provides the Model Context Protocol server integration for gratitude.
package mcp

import (
	"context"
	"errors"
	"sort"
	"time"

	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/settings"
	"tableflip.dev/gratitude/pkg/stats"
	"tableflip.dev/gratitude/pkg/store"
	"tableflip.dev/gratitude/pkg/template"
	"tableflip.dev/gratitude/pkg/timeutil"
)

// Service coordinates persistence-backed operations that are shared by the MCP server.
type Service struct {
	Persistence store.Persistence
	Catalog     *template.Catalog
}

// ErrEntryNotFound is returned when an entry cannot be located in persistence.
var ErrEntryNotFound = errors.New("entry not found")

// EntryDTO is a transport-friendly projection of a journal entry.
type EntryDTO struct {
	ID          int64  `json:"id"`
	Text        string `json:"text"`
	HasImage    bool   `json:"hasImage"`
	CreatedISO  string `json:"created"`
	CreatedUnix int64  `json:"createdUnix"`
}

// StreakDTO reports the current streak alongside the entry count it was computed from.
type StreakDTO struct {
	Days       int `json:"days"`
	EntryCount int `json:"entryCount"`
}

// HeatmapBucket is a single day of activity inside a heatmap window.
type HeatmapBucket struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// HeatmapDTO reports bucketed activity for a trailing window.
type HeatmapDTO struct {
	Window  string          `json:"window"`
	Start   string          `json:"start"`
	End     string          `json:"end"`
	Buckets []HeatmapBucket `json:"buckets"`
}

// TemplateDTO is a transport-friendly projection of a prompt template.
type TemplateDTO struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Selected bool   `json:"selected"`
}

// SettingsDTO mirrors the persisted settings shape.
type SettingsDTO struct {
	Notifications bool   `json:"notifications"`
	ReminderTime  string `json:"notificationTime"`
	Theme         string `json:"theme"`
	Saved         bool   `json:"saved"`
}

// NewService builds a service wrapper using the provided persistence layer.
func NewService(p store.Persistence) *Service {
	return &Service{
		Persistence: p,
		Catalog:     template.NewCatalog(),
	}
}

// AddEntry creates a new journal entry from the given text.
func (s *Service) AddEntry(ctx context.Context, text string) (EntryDTO, error) {
	if s.Persistence == nil {
		return EntryDTO{}, errors.New("persistence is not configured")
	}
	e, err := s.Persistence.Create(ctx, text, "")
	if err != nil {
		return EntryDTO{}, err
	}
	return toEntryDTO(e), nil
}

// ListEntries returns every entry, newest first.
func (s *Service) ListEntries(ctx context.Context) ([]EntryDTO, error) {
	if s.Persistence == nil {
		return nil, errors.New("persistence is not configured")
	}
	all := s.Persistence.ListAll(ctx)
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Created.Equal(all[j].Created.Time) {
			return all[i].ID > all[j].ID
		}
		return all[i].Created.After(all[j].Created.Time)
	})
	out := make([]EntryDTO, 0, len(all))
	for _, e := range all {
		out = append(out, toEntryDTO(e))
	}
	return out, nil
}

// GetEntry looks up a single entry by id.
func (s *Service) GetEntry(ctx context.Context, id int64) (EntryDTO, error) {
	if s.Persistence == nil {
		return EntryDTO{}, errors.New("persistence is not configured")
	}
	e, ok := s.Persistence.Get(ctx, id)
	if !ok {
		return EntryDTO{}, ErrEntryNotFound
	}
	return toEntryDTO(e), nil
}

// DeleteEntry removes an entry by id. Deleting an absent id is not an error.
func (s *Service) DeleteEntry(ctx context.Context, id int64) error {
	if s.Persistence == nil {
		return errors.New("persistence is not configured")
	}
	return s.Persistence.Delete(ctx, id)
}

// GetStreak computes the current consecutive-day streak.
func (s *Service) GetStreak(ctx context.Context) (StreakDTO, error) {
	if s.Persistence == nil {
		return StreakDTO{}, errors.New("persistence is not configured")
	}
	all := s.Persistence.ListAll(ctx)
	return StreakDTO{
		Days:       stats.Streak(all, time.Now()),
		EntryCount: len(all),
	}, nil
}

// GetHeatmap buckets entries per day over a trailing window such as "365d".
func (s *Service) GetHeatmap(ctx context.Context, window string) (HeatmapDTO, error) {
	if s.Persistence == nil {
		return HeatmapDTO{}, errors.New("persistence is not configured")
	}
	if window == "" {
		window = timeutil.DefaultWindow
	}
	d, normalized, err := timeutil.ParseWindow(window)
	if err != nil {
		return HeatmapDTO{}, err
	}
	start, end := stats.TrailingWindow(time.Now(), d)
	counts := stats.Heatmap(s.Persistence.ListAll(ctx), start, end)

	dto := HeatmapDTO{
		Window:  normalized,
		Start:   start.Format("2006-01-02"),
		End:     end.Format("2006-01-02"),
		Buckets: make([]HeatmapBucket, 0, len(counts)),
	}
	for _, day := range stats.Days(counts) {
		dto.Buckets = append(dto.Buckets, HeatmapBucket{
			Date:  day.Time(start.Location()).Format("2006-01-02"),
			Count: counts[day],
		})
	}
	return dto, nil
}

// ListTemplates returns the catalog with the current selection marked.
func (s *Service) ListTemplates(ctx context.Context) ([]TemplateDTO, error) {
	if s.Persistence == nil {
		return nil, errors.New("persistence is not configured")
	}
	selected := template.Default()
	if t, ok, err := s.Persistence.GetSelected(ctx); err != nil {
		return nil, err
	} else if ok {
		selected = t
	}
	all := s.catalog().All()
	out := make([]TemplateDTO, 0, len(all))
	for _, t := range all {
		out = append(out, TemplateDTO{
			ID:       t.ID,
			Title:    t.Title,
			Content:  t.Content,
			Selected: t.ID == selected.ID,
		})
	}
	return out, nil
}

// SelectTemplate makes the template with the given id the active one.
func (s *Service) SelectTemplate(ctx context.Context, id int64) (TemplateDTO, error) {
	if s.Persistence == nil {
		return TemplateDTO{}, errors.New("persistence is not configured")
	}
	t, ok := s.catalog().Find(id)
	if !ok {
		return TemplateDTO{}, errors.New("no template with that id")
	}
	if err := s.Persistence.SetSelected(t); err != nil {
		return TemplateDTO{}, err
	}
	return TemplateDTO{ID: t.ID, Title: t.Title, Content: t.Content, Selected: true}, nil
}

// CreateTemplate adds a custom template to the catalog and selects it.
func (s *Service) CreateTemplate(ctx context.Context, title, content string) (TemplateDTO, error) {
	if s.Persistence == nil {
		return TemplateDTO{}, errors.New("persistence is not configured")
	}
	t, err := s.catalog().AddCustom(title, content)
	if err != nil {
		return TemplateDTO{}, err
	}
	if err := s.Persistence.SetSelected(t); err != nil {
		return TemplateDTO{}, err
	}
	return TemplateDTO{ID: t.ID, Title: t.Title, Content: t.Content, Selected: true}, nil
}

// GetSettings loads the persisted settings, falling back to defaults.
func (s *Service) GetSettings(ctx context.Context) (SettingsDTO, error) {
	if s.Persistence == nil {
		return SettingsDTO{}, errors.New("persistence is not configured")
	}
	cfg, saved, err := s.Persistence.LoadSettings(ctx)
	if err != nil {
		return SettingsDTO{}, err
	}
	if !saved {
		cfg = settings.Defaults()
	}
	return SettingsDTO{
		Notifications: cfg.NotificationsEnabled,
		ReminderTime:  cfg.ReminderTime,
		Theme:         string(cfg.Theme),
		Saved:         saved,
	}, nil
}

func (s *Service) catalog() *template.Catalog {
	if s.Catalog == nil {
		s.Catalog = template.NewCatalog()
	}
	return s.Catalog
}

func toEntryDTO(e *entry.Entry) EntryDTO {
	return EntryDTO{
		ID:          e.ID,
		Text:        e.Text,
		HasImage:    e.HasImage(),
		CreatedISO:  entry.FormatTime(e.Created.Time),
		CreatedUnix: e.Created.Unix(),
	}
}
