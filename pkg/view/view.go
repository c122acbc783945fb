// Package view turns a schema collection into the rows the presentation layer
// draws. It owns the render-level rules: an empty collection renders nothing,
// and a gated collection exposes no primary-selection control.
package view

import (
	"github.com/pluqqy/schemadeck/pkg/models"
)

const (
	SectionTitle = "Schema in Use"
	ProNotice    = "Multiple Schemas are allowed in the PRO Version"
)

// Row is one rendered schema entry
type Row struct {
	Key                string
	Title              string
	Type               string
	Icon               string
	Primary            bool
	ShowPrimaryControl bool
	DeleteArmed        bool
}

// Section is the rendered schema list
type Section struct {
	Title         string
	ShowProNotice bool
	Rows          []Row
}

// Build returns the section for schemas, or nil when there is nothing to
// render. armed reports whether an entry's delete confirmation is pending and
// may be nil.
func Build(schemas models.Collection, gated bool, armed func(key string) bool) *Section {
	if schemas.IsEmpty() {
		return nil
	}
	sec := &Section{
		Title:         SectionTitle,
		ShowProNotice: gated,
		Rows:          make([]Row, 0, schemas.Len()),
	}
	for _, e := range schemas.Entries() {
		sec.Rows = append(sec.Rows, Row{
			Key:                e.Key,
			Title:              e.DisplayTitle(),
			Type:               e.Type,
			Icon:               IconFor(e.Type),
			Primary:            e.Metadata.IsPrimary,
			ShowPrimaryControl: !gated,
			DeleteArmed:        armed != nil && armed(e.Key),
		})
	}
	return sec
}

// Index returns the row position of key, or -1
func (s *Section) Index(key string) int {
	if s == nil {
		return -1
	}
	for i, r := range s.Rows {
		if r.Key == key {
			return i
		}
	}
	return -1
}
