package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/schemadeck/pkg/controller"
	"github.com/pluqqy/schemadeck/pkg/models"
	"github.com/pluqqy/schemadeck/pkg/view"
)

// SchemaListModel is the "Schema in Use" list of one content item
type SchemaListModel struct {
	ctx       context.Context
	ctrl      *controller.Controller
	cursor    int
	selected  string
	width     int
	height    int
	showIcons bool
	confirm   *ConfirmationModel
}

// NewSchemaListModel creates the list over ctrl
func NewSchemaListModel(ctx context.Context, ctrl *controller.Controller, showIcons bool) *SchemaListModel {
	return &SchemaListModel{
		ctx:       ctx,
		ctrl:      ctrl,
		showIcons: showIcons,
		confirm:   NewConfirmation(),
	}
}

func (m *SchemaListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the entry under the cursor
func (m *SchemaListModel) Selected() (models.SchemaEntry, bool) {
	keys := m.ctrl.ListEntries().Keys()
	if m.cursor < 0 || m.cursor >= len(keys) {
		return models.SchemaEntry{}, false
	}
	return m.ctrl.ListEntries().Get(keys[m.cursor])
}

// Confirming reports whether a delete prompt is waiting for an answer
func (m *SchemaListModel) Confirming() bool {
	return m.confirm.Active()
}

// clamp keeps the cursor on the selected entry when rows move, and on a
// row when the collection shrinks. A prompt whose entry is gone is dropped.
func (m *SchemaListModel) clamp() {
	snap := m.ctrl.Snapshot()
	sec := view.Build(snap.Schemas, snap.Gated(), m.ctrl.DeleteArmed)
	if i := sec.Index(m.selected); i >= 0 {
		m.cursor = i
	}
	n := snap.Schemas.Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	entry, ok := m.Selected()
	m.selected = entry.Key
	if m.confirm.Active() && (!ok || !m.ctrl.DeleteArmed(entry.Key)) {
		m.confirm.Hide()
	}
}

func (m *SchemaListModel) moveTo(i int) {
	m.cursor = i
	if entry, ok := m.Selected(); ok {
		m.selected = entry.Key
	}
}

func (m *SchemaListModel) Update(msg tea.KeyMsg) tea.Cmd {
	if m.confirm.Active() {
		return m.confirm.Update(msg)
	}

	entry, ok := m.Selected()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.moveTo(m.cursor - 1)
		}
	case "down", "j":
		if m.cursor < m.ctrl.ListEntries().Len()-1 {
			m.moveTo(m.cursor + 1)
		}
	case " ":
		// no primary control exists while gated
		if !ok || m.ctrl.IsGated() {
			return nil
		}
		if err := m.ctrl.SetPrimary(m.ctx, entry.Key, m.ctrl.ListEntries()); err != nil {
			return errCmd(err)
		}
		return statusCmd(fmt.Sprintf("✓ %s is now the primary schema", entry.DisplayTitle()))
	case "e":
		if !ok {
			return nil
		}
		if err := m.ctrl.SelectForEdit(entry.Key); err != nil {
			return errCmd(err)
		}
	case "p":
		if !ok {
			return nil
		}
		if err := m.ctrl.SelectForPreview(entry.Key); err != nil {
			return errCmd(err)
		}
	case "d":
		if !ok {
			return nil
		}
		return m.requestDelete(entry)
	}
	return nil
}

func (m *SchemaListModel) requestDelete(entry models.SchemaEntry) tea.Cmd {
	outcome, err := m.ctrl.RequestDelete(m.ctx, entry.Key)
	if err != nil {
		return errCmd(err)
	}
	if outcome == controller.DeleteRemoved {
		return statusCmd(fmt.Sprintf("✓ Deleted %s", entry.DisplayTitle()))
	}

	key := entry.Key
	m.confirm.Show(ConfirmationConfig{
		Message:     fmt.Sprintf("Delete %s?", entry.DisplayTitle()),
		Destructive: true,
		ConfirmKeys: []string{"d"},
	}, func() tea.Cmd {
		return m.requestDelete(entry)
	}, func() tea.Cmd {
		m.ctrl.CancelDelete(key)
		return statusCmd("Deletion cancelled")
	})
	return nil
}

func (m *SchemaListModel) View() string {
	snap := m.ctrl.Snapshot()
	sec := view.Build(snap.Schemas, snap.Gated(), m.ctrl.DeleteArmed)
	out := view.Render(sec, view.RenderOptions{
		Width:     m.width,
		Cursor:    m.cursor,
		ShowIcons: m.showIcons,
	})
	if m.confirm.Active() {
		out += m.confirm.ViewWithWidth(m.width) + "\n"
	}
	return out
}
