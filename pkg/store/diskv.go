package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/settings"
	"tableflip.dev/gratitude/pkg/template"
)

const (
	prefixEntries  = "entries"
	prefixTemplate = "template"
	prefixSettings = "settings"

	selectedKey = prefixTemplate + "-selected"
	settingsKey = prefixSettings + "-user"

	schemaFile  = ".schema"
	counterFile = ".entries.counter"

	// schemaVersion is stamped at the base path. Opening a base path with a
	// lower or missing version creates any missing stores; there is no data
	// rewriting beyond that.
	schemaVersion = 1
)

// Persistence is the storage contract for the journal: entries keyed by a
// store-assigned id, plus the selected-template and settings singletons.
//
// Entries are append/delete only. A Create that has returned success is
// durable and visible to a subsequent ListAll. Absent singletons are not
// errors; callers apply their documented defaults.
type Persistence interface {
	Create(ctx context.Context, text, image string) (*entry.Entry, error)
	ListAll(ctx context.Context) []*entry.Entry
	Get(ctx context.Context, id int64) (*entry.Entry, bool)
	Delete(ctx context.Context, id int64) error

	SetSelected(t template.Template) error
	GetSelected(ctx context.Context) (template.Template, bool, error)

	SaveSettings(s settings.Settings) error
	LoadSettings(ctx context.Context) (settings.Settings, bool, error)

	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	p := &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		basePath: basePath,
		clock:    time.Now,
	}
	if err := p.migrate(); err != nil {
		return nil, err
	}
	return p, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	clock    func() time.Time

	// mu serializes id issuance so ids stay unique and monotonic within the
	// store's lifetime.
	mu sync.Mutex
}

// migrate stamps the schema version and creates any store directories that
// do not exist yet. Versions at or above the current one are left alone.
func (p *persistence) migrate() error {
	if p.basePath == "" {
		return unavailable("open", errors.New("base path unknown"))
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return unavailable("ensure base path", err)
	}

	version := 0
	path := filepath.Join(p.basePath, schemaFile)
	if data, err := os.ReadFile(path); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil {
			version = v
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return unavailable("read schema version", err)
	}

	if version >= schemaVersion {
		return nil
	}

	for _, store := range []string{prefixEntries, prefixTemplate, prefixSettings} {
		if err := os.MkdirAll(filepath.Join(p.basePath, store), 0o755); err != nil {
			return unavailable("create store "+store, err)
		}
	}
	if err := writeFileAtomic(path, []byte(strconv.Itoa(schemaVersion))); err != nil {
		return unavailable("stamp schema version", err)
	}
	return nil
}

func (p *persistence) Create(ctx context.Context, text, image string) (*entry.Entry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, err := p.nextID(ctx)
	if err != nil {
		return nil, err
	}

	e := entry.New(text, image)
	e.ID = id
	e.Created = entry.Timestamp{Time: p.clock()}

	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("store: encode entry: %w", err)
	}
	if err := p.d.Write(entryKey(id), data); err != nil {
		return nil, unavailable("write entry", err)
	}
	return e, nil
}

// nextID issues the next unused integer id and durably advances the counter
// before the entry itself is written. A failed entry write burns the id;
// ids are never reused.
func (p *persistence) nextID(ctx context.Context) (int64, error) {
	last, err := p.loadCounter(ctx)
	if err != nil {
		return 0, err
	}
	next := last + 1
	if err := writeFileAtomic(p.counterPath(), []byte(strconv.FormatInt(next, 10))); err != nil {
		return 0, unavailable("advance id counter", err)
	}
	return next, nil
}

func (p *persistence) counterPath() string {
	return filepath.Join(p.basePath, counterFile)
}

func (p *persistence) loadCounter(ctx context.Context) (int64, error) {
	data, err := os.ReadFile(p.counterPath())
	if err == nil {
		v, perr := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
		if perr == nil {
			return v, nil
		}
		log.Warn().Err(perr).Msg("id counter unreadable, rescanning entries")
	} else if !errors.Is(err, os.ErrNotExist) {
		return 0, unavailable("read id counter", err)
	}

	// First write, or a damaged counter: recover the high-water mark from
	// the entries already on disk.
	var max int64
	for key := range p.d.KeysPrefix(prefixEntries+"-", ctx.Done()) {
		if id, ok := idFromKey(key); ok && id > max {
			max = id
		}
	}
	return max, nil
}

func (p *persistence) ListAll(ctx context.Context) []*entry.Entry {
	all := make([]*entry.Entry, 0)
	for key := range p.d.KeysPrefix(prefixEntries+"-", ctx.Done()) {
		e, err := p.read(key)
		if err != nil {
			log.Warn().Str("key", key).Err(err).Msg("skipping unreadable entry")
			continue
		}
		all = append(all, e)
	}
	return all
}

func (p *persistence) Get(ctx context.Context, id int64) (*entry.Entry, bool) {
	key := entryKey(id)
	if !p.d.Has(key) {
		return nil, false
	}
	e, err := p.read(key)
	if err != nil {
		log.Warn().Str("key", key).Err(err).Msg("entry unreadable")
		return nil, false
	}
	return e, true
}

func (p *persistence) Delete(ctx context.Context, id int64) error {
	key := entryKey(id)
	if !p.d.Has(key) {
		// Deleting an id that does not exist is a no-op, not an error.
		return nil
	}
	if err := p.d.Erase(key); err != nil {
		return unavailable("delete entry", err)
	}
	return nil
}

func (p *persistence) SetSelected(t template.Template) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("store: encode template: %w", err)
	}
	// One fixed key holds the selection, so overwriting it is the
	// clear-then-write replace: a reader sees the old record or the new
	// one, never neither and never both.
	if err := p.d.Write(selectedKey, data); err != nil {
		return unavailable("write selected template", err)
	}
	return nil
}

func (p *persistence) GetSelected(ctx context.Context) (template.Template, bool, error) {
	var t template.Template
	if !p.d.Has(selectedKey) {
		return t, false, nil
	}
	data, err := p.d.Read(selectedKey)
	if err != nil {
		return t, false, unavailable("read selected template", err)
	}
	if err := json.Unmarshal(data, &t); err != nil {
		return t, false, unavailable("decode selected template", err)
	}
	return t, true, nil
}

func (p *persistence) SaveSettings(s settings.Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("store: encode settings: %w", err)
	}
	if err := p.d.Write(settingsKey, data); err != nil {
		return unavailable("write settings", err)
	}
	return nil
}

func (p *persistence) LoadSettings(ctx context.Context) (settings.Settings, bool, error) {
	var s settings.Settings
	if !p.d.Has(settingsKey) {
		return s, false, nil
	}
	data, err := p.d.Read(settingsKey)
	if err != nil {
		return s, false, unavailable("read settings", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, false, unavailable("decode settings", err)
	}
	return s, true, nil
}

func (p *persistence) read(key string) (*entry.Entry, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	e := entry.Entry{}
	if err := json.Unmarshal(val, &e); err != nil {
		return nil, err
	}
	// The file name is authoritative for the id.
	if id, ok := idFromKey(key); ok {
		e.ID = id
	}
	return &e, nil
}

func entryKey(id int64) string {
	return fmt.Sprintf("%s-%d", prefixEntries, id)
}

func idFromKey(key string) (int64, bool) {
	pk := keyToPathTransform(key)
	id, err := strconv.ParseInt(pk.FileName, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// keyToPathTransform maps `store-name` keys onto one subdirectory per store.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) == 1 {
		return &diskv.PathKey{Path: []string{}, FileName: parts[0]}
	}
	return &diskv.PathKey{
		Path:     parts[:1],
		FileName: parts[1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
