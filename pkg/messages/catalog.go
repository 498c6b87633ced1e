package messages

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"sync"
)

// DefaultLanguage is used when a language has no translation for a key.
const DefaultLanguage = "en"

//go:embed locales/*.yaml
var builtin embed.FS

// Catalog resolves translation keys to message templates.
type Catalog struct {
	mu           sync.RWMutex
	translations map[string]map[string]any
	defaultLang  string
	logMissing   bool
	logger       *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when a key is missing in the requested one.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) { c.defaultLang = lang }
}

// WithLogger sets the logger used to report missing translations.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMissingLog logs a warning for every key that falls back.
func WithMissingLog() Option {
	return func(c *Catalog) { c.logMissing = true }
}

// New returns a catalog holding the embedded messages.
func New(ctx context.Context, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		translations: make(map[string]map[string]any),
		defaultLang:  DefaultLanguage,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.LoadFS(ctx, builtin, "locales"); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(ctx context.Context, opts ...Option) *Catalog {
	c, err := New(ctx, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Add layers a parsed message tree over the catalog.
func (c *Catalog) Add(translations map[string]map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for lang, tree := range translations {
		dst, ok := c.translations[lang]
		if !ok {
			dst = make(map[string]any)
			c.translations[lang] = dst
		}
		merge(dst, tree)
	}
}

// Load reads one messages file.
func (c *Catalog) Load(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrLoadingCancelled, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrFailedToRead, err)
	}
	parsed, err := Parse(path, content)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	c.Add(parsed)
	c.logger.DebugContext(ctx, "messages loaded", "path", path, "languages", slices.Sorted(maps.Keys(parsed)))
	return nil
}

// LoadDir reads every YAML and JSON file of a directory.
func (c *Catalog) LoadDir(ctx context.Context, dir string) error {
	return c.LoadFS(ctx, os.DirFS(dir), ".")
}

// LoadFS reads every YAML and JSON file of dir in fsys, in name order.
func (c *Catalog) LoadFS(ctx context.Context, fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return errors.Join(ErrFailedToRead, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !supported(entry.Name()) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return errors.Join(ErrLoadingCancelled, err)
		}
		name := filepath.ToSlash(filepath.Join(dir, entry.Name()))
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return errors.Join(ErrFailedToRead, err)
		}
		parsed, err := Parse(name, content)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		c.Add(parsed)
	}
	return nil
}

func supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// Languages lists the loaded language codes, sorted.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Sorted(maps.Keys(c.translations))
}

// Has reports whether lang defines key.
func (c *Catalog) Has(lang, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := lookup(c.translations[lang], key)
	return ok
}

// T renders key for lang with named values. It falls back to the default
// language and then to the key itself.
func (c *Catalog) T(lang, key string, values map[string]any) string {
	c.mu.RLock()
	tmpl, ok := lookup(c.translations[lang], key)
	if !ok && lang != c.defaultLang {
		tmpl, ok = lookup(c.translations[c.defaultLang], key)
	}
	c.mu.RUnlock()

	if !ok {
		if c.logMissing {
			c.logger.Warn("message not found", "lang", lang, "key", key)
		}
		tmpl = key
	}
	return substitute(tmpl, values)
}

// lookup walks a message tree with a dotted key. Only string leaves match.
func lookup(tree map[string]any, key string) (string, bool) {
	if tree == nil {
		return "", false
	}
	node := any(tree)
	for part := range strings.SplitSeq(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		if node, ok = m[part]; !ok {
			return "", false
		}
	}
	s, ok := node.(string)
	return s, ok
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} with the matching value; unknown names are
// kept verbatim.
func substitute(tmpl string, values map[string]any) string {
	if len(values) == 0 {
		return tmpl
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := values[match[2:len(match)-1]]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}
