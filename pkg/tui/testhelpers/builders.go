package testhelpers

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/schemadeck/pkg/controller"
	"github.com/pluqqy/schemadeck/pkg/models"
	"github.com/pluqqy/schemadeck/pkg/session"
	"github.com/pluqqy/schemadeck/pkg/store"
)

// EntryBuilder builds schema entries for tests
type EntryBuilder struct {
	entry models.SchemaEntry
}

// NewEntry starts an entry with the given key and @type
func NewEntry(key, schemaType string) *EntryBuilder {
	return &EntryBuilder{entry: models.SchemaEntry{Key: key, Type: schemaType}}
}

// WithTitle sets the display title
func (b *EntryBuilder) WithTitle(title string) *EntryBuilder {
	b.entry.Metadata.Title = title
	return b
}

// Primary marks the entry primary
func (b *EntryBuilder) Primary() *EntryBuilder {
	b.entry.Metadata.IsPrimary = true
	return b
}

// WithProperty sets one JSON-LD property
func (b *EntryBuilder) WithProperty(name string, value any) *EntryBuilder {
	if b.entry.Properties == nil {
		b.entry.Properties = map[string]any{}
	}
	b.entry.Properties[name] = value
	return b
}

// Build returns the entry
func (b *EntryBuilder) Build() models.SchemaEntry {
	return b.entry
}

// ThreeSchemas returns an Article (primary), a Product and an FAQPage
func ThreeSchemas() models.Collection {
	return models.NewCollection(
		NewEntry("s1", "Article").WithTitle("Launch post").Primary().WithProperty("headline", "We launched").Build(),
		NewEntry("s2", "Product").Build(),
		NewEntry("s3", "FAQPage").WithTitle("Questions").Build(),
	)
}

// NewController returns a controller over an in-memory store and session
// holding schemas. It is closed when the test ends.
func NewController(t *testing.T, schemas models.Collection, entitled bool) *controller.Controller {
	t.Helper()
	st := store.New("post", schemas, entitled)
	sess := session.New(models.TabDefault)
	ctrl := controller.New(st, sess, controller.Options{})
	t.Cleanup(ctrl.Close)
	return ctrl
}

// KeyPress returns the key message bubbletea delivers for s. Named keys
// ("esc", "tab", "up", "down", "enter", "space", "ctrl+c") map to their key
// types; anything else is sent as runes.
func KeyPress(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
