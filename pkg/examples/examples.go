package examples

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pluqqy/schemadeck/pkg/files"
	"github.com/pluqqy/schemadeck/pkg/models"
)

// ExampleSet represents a collection of related examples
type ExampleSet struct {
	Category    string
	Name        string
	Description string
	Templates   []Template
	Items       []ExampleItem
}

// Template seeds a new schema entry of one @type
type Template struct {
	Type       string
	Title      string
	Properties func() map[string]any
}

// ExampleItem is a ready-made content item built from templates
type ExampleItem struct {
	Name    string
	Types   []string
	Primary string
}

// GetExamples returns example sets for the given category
func GetExamples(category string) []ExampleSet {
	switch category {
	case "content":
		return withCategory("content", getContentExamples())
	case "commerce":
		return withCategory("commerce", getCommerceExamples())
	case "all":
		var all []ExampleSet
		all = append(all, withCategory("content", getContentExamples())...)
		all = append(all, withCategory("commerce", getCommerceExamples())...)
		return all
	default:
		return []ExampleSet{}
	}
}

func withCategory(category string, sets []ExampleSet) []ExampleSet {
	for i := range sets {
		sets[i].Category = category
	}
	return sets
}

// Lookup finds the template for a schema.org type, case-insensitively
func Lookup(schemaType string) (Template, bool) {
	for _, set := range GetExamples("all") {
		for _, tpl := range set.Templates {
			if strings.EqualFold(tpl.Type, schemaType) {
				return tpl, true
			}
		}
	}
	return Template{}, false
}

// Types lists every type a template exists for, sorted
func Types() []string {
	var types []string
	for _, set := range GetExamples("all") {
		for _, tpl := range set.Templates {
			types = append(types, tpl.Type)
		}
	}
	sort.Strings(types)
	return types
}

// NewEntry builds an unkeyed entry from the template for schemaType. Unknown
// types get an empty property bag.
func NewEntry(schemaType, title string) models.SchemaEntry {
	entry := models.SchemaEntry{Type: schemaType, Metadata: models.Metadata{Title: title}}
	if tpl, ok := Lookup(schemaType); ok {
		entry.Type = tpl.Type
		if entry.Metadata.Title == "" {
			entry.Metadata.Title = tpl.Title
		}
		entry.Properties = tpl.Properties()
	}
	return entry
}

// InstallItem writes an example item to repo
func InstallItem(repo *files.Repository, item ExampleItem, force bool) (bool, error) {
	if !force && repo.ItemExists(item.Name) {
		return false, fmt.Errorf("item already exists at %s", repo.ItemPath(item.Name))
	}

	var entries []models.SchemaEntry
	for _, t := range item.Types {
		entry := NewEntry(t, "")
		entry.Key = files.NewEntryKey()
		entry.Metadata.IsPrimary = t == item.Primary
		entries = append(entries, entry)
	}

	if err := repo.WriteItem(item.Name, models.NewCollection(entries...)); err != nil {
		return false, err
	}
	return true, nil
}
