package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultURI is the resource URI the catalog document is published under.
const DefaultURI = "units://supported_units.json"

//go:embed supported_units.json
var embedded []byte

// Document is the descriptive catalog source.
type Document struct {
	Categories map[string]*Category `yaml:"categories" json:"categories"`
}

// Category describes one measurement category.
type Category struct {
	Kind  string           `yaml:"kind" json:"kind"`
	Base  string           `yaml:"base,omitempty" json:"base,omitempty"`
	Units map[string]*Unit `yaml:"units" json:"units"`
}

// Unit describes one canonical unit.
type Unit struct {
	Factor  *float64 `yaml:"factor,omitempty" json:"factor,omitempty"`
	Aliases []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

// CategoryNames returns category names in lexical order.
func (d *Document) CategoryNames() []string {
	names := make([]string, 0, len(d.Categories))
	for name := range d.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnitKeys returns canonical unit keys in lexical order.
func (c *Category) UnitKeys() []string {
	keys := make([]string, 0, len(c.Units))
	for key := range c.Units {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Parse decodes a JSON or YAML catalog document.
func Parse(data []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if len(doc.Categories) == 0 {
		return nil, fmt.Errorf("catalog has no categories")
	}
	for name, category := range doc.Categories {
		if category == nil {
			return nil, fmt.Errorf("catalog category %q is empty", name)
		}
		if len(category.Units) == 0 {
			return nil, fmt.Errorf("catalog category %q has no units", name)
		}
		for key, u := range category.Units {
			if u == nil { // "unit": {} or "unit": null
				category.Units[key] = &Unit{}
			}
		}
	}
	return doc, nil
}

// Embedded returns the bundled document bytes.
func Embedded() []byte {
	return embedded
}
