package models

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Metadata holds the editor-side attributes of a schema entry
type Metadata struct {
	Title     string `yaml:"title,omitempty" json:"title,omitempty"`
	IsPrimary bool   `yaml:"isPrimary" json:"isPrimary"`
}

// SchemaEntry is a single structured-data entry attached to a content item.
// Properties carries the schema.org payload and is never interpreted here.
type SchemaEntry struct {
	Key        string         `yaml:"key" json:"key"`
	Type       string         `yaml:"@type" json:"@type"`
	Metadata   Metadata       `yaml:"metadata" json:"metadata"`
	Properties map[string]any `yaml:",inline" json:"properties,omitempty"`
}

// DisplayTitle returns the title, falling back to the schema type
func (e SchemaEntry) DisplayTitle() string {
	if e.Metadata.Title != "" {
		return e.Metadata.Title
	}
	return e.Type
}

func (e SchemaEntry) clone() SchemaEntry {
	if e.Properties != nil {
		props := make(map[string]any, len(e.Properties))
		for k, v := range e.Properties {
			props[k] = v
		}
		e.Properties = props
	}
	return e
}

// Collection is an insertion-ordered set of schema entries keyed by entry key.
// A Collection is a value: every mutating method returns a new Collection and
// leaves the receiver untouched, so snapshots handed to readers never change.
type Collection struct {
	keys    []string
	entries map[string]SchemaEntry
}

// NewCollection builds a collection from entries in order. A repeated key
// replaces the earlier entry but keeps its position.
func NewCollection(entries ...SchemaEntry) Collection {
	var c Collection
	for _, e := range entries {
		c = c.With(e)
	}
	return c
}

// Len returns the number of entries
func (c Collection) Len() int {
	return len(c.keys)
}

// IsEmpty reports whether the collection has no entries
func (c Collection) IsEmpty() bool {
	return len(c.keys) == 0
}

// Keys returns entry keys in insertion order
func (c Collection) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Has reports whether key is present
func (c Collection) Has(key string) bool {
	_, ok := c.entries[key]
	return ok
}

// Get returns the entry for key
func (c Collection) Get(key string) (SchemaEntry, bool) {
	e, ok := c.entries[key]
	if !ok {
		return SchemaEntry{}, false
	}
	return e.clone(), true
}

// Entries returns all entries in insertion order
func (c Collection) Entries() []SchemaEntry {
	out := make([]SchemaEntry, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.entries[k].clone())
	}
	return out
}

// Primary returns the first entry flagged primary
func (c Collection) Primary() (SchemaEntry, bool) {
	for _, k := range c.keys {
		if e := c.entries[k]; e.Metadata.IsPrimary {
			return e.clone(), true
		}
	}
	return SchemaEntry{}, false
}

// PrimaryCount returns how many entries are flagged primary
func (c Collection) PrimaryCount() int {
	n := 0
	for _, e := range c.entries {
		if e.Metadata.IsPrimary {
			n++
		}
	}
	return n
}

// With returns a copy of c with e added at the end, or replaced in place if
// an entry with the same key exists.
func (c Collection) With(e SchemaEntry) Collection {
	out := c.copy()
	if _, exists := out.entries[e.Key]; !exists {
		out.keys = append(out.keys, e.Key)
	}
	out.entries[e.Key] = e.clone()
	return out
}

// Without returns a copy of c with key removed. The second result is false
// when key was not present.
func (c Collection) Without(key string) (Collection, bool) {
	if !c.Has(key) {
		return c, false
	}
	out := Collection{
		keys:    make([]string, 0, len(c.keys)-1),
		entries: make(map[string]SchemaEntry, len(c.entries)-1),
	}
	for _, k := range c.keys {
		if k == key {
			continue
		}
		out.keys = append(out.keys, k)
		out.entries[k] = c.entries[k]
	}
	return out, true
}

// WithPrimary returns a copy of c where key is the only primary entry.
// The second result is false when key was not present.
func (c Collection) WithPrimary(key string) (Collection, bool) {
	if !c.Has(key) {
		return c, false
	}
	out := c.copy()
	for k, e := range out.entries {
		e.Metadata.IsPrimary = k == key
		out.entries[k] = e
	}
	return out, true
}

func (c Collection) copy() Collection {
	out := Collection{
		keys:    make([]string, len(c.keys), len(c.keys)+1),
		entries: make(map[string]SchemaEntry, len(c.entries)+1),
	}
	copy(out.keys, c.keys)
	for k, e := range c.entries {
		out.entries[k] = e
	}
	return out
}

// MarshalJSON encodes the collection as an ordered list of entries
func (c Collection) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Entries())
}

// MarshalYAML encodes the collection as an ordered list of entries
func (c Collection) MarshalYAML() (any, error) {
	return c.Entries(), nil
}

// UnmarshalYAML decodes an ordered list of entries
func (c *Collection) UnmarshalYAML(node *yaml.Node) error {
	var entries []SchemaEntry
	if err := node.Decode(&entries); err != nil {
		return err
	}
	*c = NewCollection(entries...)
	return nil
}
