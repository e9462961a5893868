package preset

import (
	"errors"
	"fmt"
	"strings"
)

type Typology string

const (
	TypologyReMarking          Typology = "Re-marking Streets"
	TypologyRepurposingParking Typology = "Re-purposing Parking"
	TypologyRepurposingSection Typology = "Re-purposing Sections"
	TypologyRepurposingStreet  Typology = "Re-purposing Entire Streets"
	TypologyIntersectionSafety Typology = "Intersection Safety"
	TypologyTrafficCalming     Typology = "Traffic Calming"
	TypologyAccessibility      Typology = "Accessibility"
)

// Preset is a named street-design intervention. Values are copied out of a
// Catalog so callers never hold a reference into catalog storage.
type Preset struct {
	Key             string   `json:"key"`
	EnglishName     string   `json:"englishName"`
	Typology        Typology `json:"typology"`
	Description     string   `json:"description"`
	Keywords        string   `json:"keywords"`
	NegativePrompt  string   `json:"negativePrompt"`
	ManualReference string   `json:"manualReference,omitempty"`
}

var (
	ErrDuplicateKey = errors.New("duplicate preset key")
	ErrEmptyKey     = errors.New("empty preset key")
)

// Source is anything that can resolve a preset by exact key.
type Source interface {
	Name() string
	Lookup(key string) (Preset, bool)
	Presets() []Preset
}

// Catalog is an immutable key -> Preset mapping. Insertion order is kept for listing only.
type Catalog struct {
	name    string
	presets map[string]Preset
	order   []string
}

func NewCatalog(name string, presets []Preset) (*Catalog, error) {
	c := &Catalog{
		name:    name,
		presets: make(map[string]Preset, len(presets)),
		order:   make([]string, 0, len(presets)),
	}
	for _, p := range presets {
		if strings.TrimSpace(p.Key) == "" {
			return nil, fmt.Errorf("%w in catalog %s", ErrEmptyKey, name)
		}
		if _, ok := c.presets[p.Key]; ok {
			return nil, fmt.Errorf("%w: %q in catalog %s", ErrDuplicateKey, p.Key, name)
		}
		c.presets[p.Key] = p
		c.order = append(c.order, p.Key)
	}
	return c, nil
}

func mustCatalog(name string, presets []Preset) *Catalog {
	c, err := NewCatalog(name, presets)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Name() string {
	return c.name
}

// Lookup matches key exactly: case-sensitive, no trimming, no partial matches.
func (c *Catalog) Lookup(key string) (Preset, bool) {
	p, ok := c.presets[key]
	return p, ok
}

func (c *Catalog) Presets() []Preset {
	out := make([]Preset, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.presets[key])
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.order)
}

// Composite tries its sources in order and returns the first match.
type Composite struct {
	sources []Source
}

func NewComposite(sources ...Source) *Composite {
	kept := make([]Source, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &Composite{sources: kept}
}

func (c *Composite) Name() string {
	names := make([]string, 0, len(c.sources))
	for _, s := range c.sources {
		names = append(names, s.Name())
	}
	return strings.Join(names, "+")
}

func (c *Composite) Lookup(key string) (Preset, bool) {
	p, _, ok := c.Resolve(key)
	return p, ok
}

// Resolve is Lookup that also reports which source matched.
func (c *Composite) Resolve(key string) (Preset, string, bool) {
	for _, s := range c.sources {
		if p, ok := s.Lookup(key); ok {
			return p, s.Name(), true
		}
	}
	return Preset{}, "", false
}

// Presets lists every preset in precedence order. A key shadowed by an
// earlier source is listed once, from the source that wins the lookup.
func (c *Composite) Presets() []Preset {
	listings := c.Listings()
	out := make([]Preset, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.Preset)
	}
	return out
}

// Listing pairs a preset with the name of the catalog that owns it.
type Listing struct {
	Preset
	Catalog string `json:"catalog"`
}

func (c *Composite) Listings() []Listing {
	seen := make(map[string]struct{})
	var out []Listing
	for _, s := range c.sources {
		for _, p := range s.Presets() {
			if _, ok := seen[p.Key]; ok {
				continue
			}
			seen[p.Key] = struct{}{}
			out = append(out, Listing{Preset: p, Catalog: s.Name()})
		}
	}
	return out
}

// Default returns the locale-specific catalog first, then the generic one.
func Default() *Composite {
	return NewComposite(Taiwan(), StreetExperiments())
}
