package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/heartmarshall/practice-text/internal/domain"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embedded embed.FS

// Supported languages. Indonesian is the default, English the first fallback.
var (
	Indonesian = language.Indonesian
	English    = language.English
)

// localeFile is the on-disk shape of locales/*.yaml.
type localeFile struct {
	Language string            `yaml:"language"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog is the full set of supported translations.
type Catalog struct {
	sets     map[language.Tag]*TranslationSet
	order    []language.Tag
	matcher  language.Matcher
	fallback []language.Tag
}

// NewCatalog builds a catalog from sets. The first set is the default language.
func NewCatalog(sets ...*TranslationSet) *Catalog {
	c := &Catalog{sets: make(map[language.Tag]*TranslationSet, len(sets))}
	for _, s := range sets {
		if _, dup := c.sets[s.lang]; dup {
			continue
		}
		c.sets[s.lang] = s
		c.order = append(c.order, s.lang)
	}
	c.matcher = language.NewMatcher(c.order)
	c.fallback = []language.Tag{English, Indonesian}
	return c
}

// Load reads every *.yaml file under dir in fsys. Files are ordered so that
// Indonesian comes first, then the rest alphabetically.
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("locale: read dir %s: %w", dir, err)
	}

	var sets []*TranslationSet
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		set, err := loadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("locale: no locale files in %s", dir)
	}

	sort.SliceStable(sets, func(i, j int) bool {
		if sets[i].lang == Indonesian || sets[j].lang == Indonesian {
			return sets[i].lang == Indonesian
		}
		return sets[i].lang.String() < sets[j].lang.String()
	})

	return NewCatalog(sets...), nil
}

func loadFile(fsys fs.FS, name string) (*TranslationSet, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("locale: read %s: %w", name, err)
	}

	var f localeFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("locale: decode %s: %w", name, err)
	}

	tag, err := language.Parse(f.Language)
	if err != nil {
		return nil, fmt.Errorf("locale: %s: language %q: %w", name, f.Language, err)
	}

	msgs := make(map[Key]string, len(f.Messages))
	for k, v := range f.Messages {
		msgs[Key(k)] = v
	}
	return NewTranslationSet(tag, msgs), nil
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Load(embedded, "locales")
})

// Default returns the catalog built from the embedded locale files.
func Default() *Catalog {
	c, err := loadDefault()
	if err != nil {
		// Embedded files are part of the binary; failing here is a build defect.
		panic(err)
	}
	return c
}

// Get returns the set for an exact supported tag.
func (c *Catalog) Get(tag language.Tag) (*TranslationSet, error) {
	if s, ok := c.sets[tag]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedLanguage, tag)
}

// Resolve maps a user-supplied code such as "en", "en-US" or "id" to a
// supported set.
func (c *Catalog) Resolve(code string) (*TranslationSet, error) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, code)
	}
	if s, ok := c.sets[tag]; ok {
		return s, nil
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, code)
	}
	return c.sets[c.order[idx]], nil
}

// Supports reports whether code resolves to a supported language.
func (c *Catalog) Supports(code string) bool {
	_, err := c.Resolve(code)
	return err == nil
}

// Sets returns every supported set, default language first.
func (c *Catalog) Sets() []*TranslationSet {
	out := make([]*TranslationSet, 0, len(c.order))
	for _, tag := range c.order {
		out = append(out, c.sets[tag])
	}
	return out
}

// WithActiveFirst returns every supported set with active moved to the
// front. An active set the catalog does not know is still put first.
func (c *Catalog) WithActiveFirst(active *TranslationSet) []*TranslationSet {
	out := make([]*TranslationSet, 0, len(c.order)+1)
	if active != nil {
		out = append(out, active)
	}
	for _, s := range c.Sets() {
		if s != active {
			out = append(out, s)
		}
	}
	return out
}

// Default returns the default language's set.
func (c *Catalog) Default() *TranslationSet {
	return c.sets[c.order[0]]
}

// T formats key in lang, falling back to English, then Indonesian, then
// the key itself.
func (c *Catalog) T(lang language.Tag, key Key, args ...any) string {
	candidates := append([]language.Tag{lang}, c.fallback...)
	for _, tag := range candidates {
		s, ok := c.sets[tag]
		if !ok {
			continue
		}
		if v, ok := s.Lookup(key); ok {
			return Format(v, args...)
		}
	}
	return string(key)
}
