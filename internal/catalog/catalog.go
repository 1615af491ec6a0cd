package catalog

import (
	"errors"
	"fmt"
)

var ErrUnknownStyle = errors.New("unknown style")

const (
	CategoryOptionalPresets = "category_optional_presets"
	CategoryTrending        = "category_trending"
	CategoryArtistic        = "category_artistic"
)

// StyleOption is a preset instruction. ID is stable across locales; the
// display label is resolved through the translation key "style_<id>".
type StyleOption struct {
	ID     string
	Prompt string
}

func (o StyleOption) LabelKey() string {
	return "style_" + o.ID
}

type Category struct {
	Key     string
	Note    string // translation key, may be empty
	Options []StyleOption
}

// Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	categories []Category
	byID       map[string]StyleOption
}

func Default() *Catalog {
	return New([]Category{
		{Key: CategoryOptionalPresets, Note: "optionalPresetsNote", Options: poses},
		{Key: CategoryTrending, Options: trending},
		{Key: CategoryArtistic, Note: "realisticStyleNote", Options: artistic},
	})
}

func New(categories []Category) *Catalog {
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		byID:       make(map[string]StyleOption),
	}
	for _, cat := range categories {
		opts := make([]StyleOption, 0, len(cat.Options))
		for _, o := range cat.Options {
			if _, dup := c.byID[o.ID]; dup || o.ID == "" {
				continue
			}
			c.byID[o.ID] = o
			opts = append(opts, o)
		}
		c.categories = append(c.categories, Category{Key: cat.Key, Note: cat.Note, Options: opts})
	}
	return c
}

func (c *Catalog) Categories() []Category {
	out := make([]Category, 0, len(c.categories))
	for _, cat := range c.categories {
		cat.Options = append([]StyleOption(nil), cat.Options...)
		out = append(out, cat)
	}
	return out
}

func (c *Catalog) Category(key string) (Category, bool) {
	for _, cat := range c.categories {
		if cat.Key == key {
			cat.Options = append([]StyleOption(nil), cat.Options...)
			return cat, true
		}
	}
	return Category{}, false
}

func (c *Catalog) Lookup(id string) (StyleOption, error) {
	o, ok := c.byID[id]
	if !ok {
		return StyleOption{}, fmt.Errorf("%w: %q", ErrUnknownStyle, id)
	}
	return o, nil
}

func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

func (c *Catalog) Len() int {
	return len(c.byID)
}

// CategoryOf returns the key of the category holding id.
func (c *Catalog) CategoryOf(id string) string {
	for _, cat := range c.categories {
		for _, o := range cat.Options {
			if o.ID == id {
				return cat.Key
			}
		}
	}
	return ""
}

type Translator interface {
	T(locale string, key string, args ...any) string
}

type LocalizedOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type LocalizedCategory struct {
	Key     string            `json:"key"`
	Title   string            `json:"title"`
	Note    string            `json:"note,omitempty"`
	Options []LocalizedOption `json:"options"`
}

// Localized resolves display labels for locale. Prompts are never
// translated.
func (c *Catalog) Localized(tr Translator, locale string) []LocalizedCategory {
	out := make([]LocalizedCategory, 0, len(c.categories))
	for _, cat := range c.categories {
		lc := LocalizedCategory{
			Key:     cat.Key,
			Title:   tr.T(locale, cat.Key),
			Options: make([]LocalizedOption, 0, len(cat.Options)),
		}
		if cat.Note != "" {
			lc.Note = tr.T(locale, cat.Note)
		}
		for _, o := range cat.Options {
			lc.Options = append(lc.Options, LocalizedOption{ID: o.ID, Name: tr.T(locale, o.LabelKey())})
		}
		out = append(out, lc)
	}
	return out
}
