package unit

import (
	"math"
	"sort"

	"github.com/viant/unitconv-mcp/unit/catalog"
)

// Kind selects the conversion model of a category.
type Kind string

const (
	KindRatio  Kind = "ratio"
	KindAffine Kind = "affine"
)

// TemperatureCategory is the only category the affine model accepts.
const TemperatureCategory = "temperature"

// Def is a canonical unit definition.
type Def struct {
	Key     string
	Factor  float64
	Aliases []string
}

// Category is a set of mutually convertible units.
type Category struct {
	Name  string
	Kind  Kind
	Base  string
	Units map[string]*Def
}

// Catalog is the read-only, indexed unit catalog. It is safe for concurrent
// use once constructed.
type Catalog struct {
	raw        []byte
	document   *catalog.Document
	categories map[string]*Category
	aliases    map[string]string // normalized alias -> canonical key
	unitIndex  map[string]string // canonical key -> category name
}

// NewCatalog validates the document and builds the alias and category
// indexes. raw is kept verbatim for Document.
func NewCatalog(doc *catalog.Document, raw []byte) (*Catalog, error) {
	if doc == nil || len(doc.Categories) == 0 {
		return nil, integrityError("no categories")
	}
	ret := &Catalog{
		raw:        raw,
		document:   doc,
		categories: make(map[string]*Category, len(doc.Categories)),
		aliases:    map[string]string{},
		unitIndex:  map[string]string{},
	}
	// deterministic order so that integrity errors are reproducible
	for _, name := range doc.CategoryNames() {
		if err := ret.addCategory(name, doc.Categories[name]); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// LoadCatalog builds a Catalog from a loaded source.
func LoadCatalog(src *catalog.Source) (*Catalog, error) {
	return NewCatalog(src.Document, src.Raw)
}

// DefaultCatalog builds the catalog bundled with the module.
func DefaultCatalog() (*Catalog, error) {
	src, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	return LoadCatalog(src)
}

func (c *Catalog) addCategory(name string, doc *catalog.Category) error {
	if doc == nil || len(doc.Units) == 0 {
		return integrityError("category %q has no units", name)
	}
	category := &Category{Name: name, Kind: Kind(doc.Kind), Base: doc.Base, Units: make(map[string]*Def, len(doc.Units))}
	for _, key := range doc.UnitKeys() {
		if owner, ok := c.unitIndex[key]; ok {
			return integrityError("unit %q declared in both %q and %q", key, owner, name)
		}
		meta := doc.Units[key]
		def := &Def{Key: key, Aliases: append([]string{}, meta.Aliases...)}
		if category.Kind == KindRatio {
			if meta.Factor == nil {
				return integrityError("unit %q in ratio category %q has no factor", key, name)
			}
			factor := *meta.Factor
			if factor <= 0 || math.IsInf(factor, 0) || math.IsNaN(factor) {
				return integrityError("unit %q in category %q has invalid factor %v", key, name, factor)
			}
			def.Factor = factor
		}
		for _, alias := range append([]string{key}, meta.Aliases...) {
			if err := c.addAlias(alias, key); err != nil {
				return err
			}
		}
		c.unitIndex[key] = name
		category.Units[key] = def
	}
	if category.Kind == KindRatio && category.Base != "" {
		if _, ok := category.Units[category.Base]; !ok {
			return integrityError("base unit %q is not declared in category %q", category.Base, name)
		}
	}
	c.categories[name] = category
	return nil
}

func (c *Catalog) addAlias(alias, key string) error {
	normalized := Normalize(alias)
	if normalized == "" {
		return integrityError("alias %q of %q normalizes to an empty string", alias, key)
	}
	if prev, ok := c.aliases[normalized]; ok && prev != key {
		return integrityError("alias %q of %q collides with %q", alias, key, prev)
	}
	c.aliases[normalized] = key
	return nil
}

// Resolve maps a raw unit string to its canonical key.
func (c *Catalog) Resolve(raw string) (string, bool) {
	key, ok := c.aliases[Normalize(raw)]
	return key, ok
}

// CategoryOf returns the category owning a canonical key.
func (c *Catalog) CategoryOf(key string) (string, bool) {
	name, ok := c.unitIndex[key]
	return name, ok
}

// Category returns a category by name.
func (c *Catalog) Category(name string) (*Category, bool) {
	category, ok := c.categories[name]
	return category, ok
}

// Categories returns category names in lexical order.
func (c *Catalog) Categories() []string {
	return c.document.CategoryNames()
}

// Document returns the source document bytes verbatim.
func (c *Catalog) Document() []byte {
	return c.raw
}

// Unit returns the definition of a canonical key.
func (c *Catalog) Unit(key string) (*Def, *Category, bool) {
	name, ok := c.unitIndex[key]
	if !ok {
		return nil, nil, false
	}
	category := c.categories[name]
	return category.Units[key], category, true
}

// UnitKeys returns the canonical keys of a category in lexical order.
func (c *Category) UnitKeys() []string {
	keys := make([]string, 0, len(c.Units))
	for key := range c.Units {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
