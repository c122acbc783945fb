package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/schemadeck/pkg/composer"
	"github.com/pluqqy/schemadeck/pkg/controller"
	"github.com/pluqqy/schemadeck/pkg/models"
)

var writeClipboard = clipboard.WriteAll

var tabLabels = map[models.EditorTab]string{
	models.TabDefault:        "Default",
	models.TabCodeValidation: "Code Validation",
}

// EditorModel is the shared editing surface. It shows whatever entry the
// editor session is bound to, on the session's tab.
type EditorModel struct {
	ctrl     *controller.Controller
	viewport viewport.Model
	width    int
	height   int
	content  string
	err      error
}

func NewEditorModel(ctrl *controller.Controller) *EditorModel {
	return &EditorModel{
		ctrl:     ctrl,
		viewport: viewport.New(80, 20),
	}
}

// Open reports whether the editor surface is shown
func (m *EditorModel) Open() bool {
	return m.ctrl.Session().Open
}

func (m *EditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = max(width-4, 20)
	m.viewport.Height = max(height/2-4, 5)
	m.Refresh()
}

// Refresh rebuilds the panel content from the session and collection
func (m *EditorModel) Refresh() {
	sess := m.ctrl.Session()
	m.content, m.err = "", nil
	if !sess.Open {
		return
	}

	entry, ok := m.ctrl.ListEntries().Get(sess.EditingKey)
	if !ok {
		m.err = fmt.Errorf("schema %s no longer exists", sess.EditingKey)
		m.viewport.SetContent(errorStyle.Render(m.err.Error()))
		return
	}

	switch sess.Tab {
	case models.TabCodeValidation:
		m.content, m.err = composer.ComposeEntry(entry)
	default:
		var out []byte
		out, m.err = yaml.Marshal(entry)
		m.content = string(out)
	}
	if m.err != nil {
		m.viewport.SetContent(errorStyle.Render(m.err.Error()))
		return
	}
	m.viewport.SetContent(wordwrap.String(m.content, m.viewport.Width))
}

// Content returns the unwrapped text of the active tab
func (m *EditorModel) Content() string {
	return m.content
}

func (m *EditorModel) Update(msg tea.KeyMsg) tea.Cmd {
	sess := m.ctrl.Session()
	switch msg.String() {
	case "tab":
		if err := m.ctrl.SwitchTab(sess.Tab.Next()); err != nil {
			return errCmd(err)
		}
		return nil
	case "esc":
		if err := m.ctrl.CloseEditor(); err != nil {
			return errCmd(err)
		}
		return nil
	case "c":
		entry, ok := m.ctrl.ListEntries().Get(sess.EditingKey)
		if !ok {
			return errCmd(fmt.Errorf("schema %s no longer exists", sess.EditingKey))
		}
		doc, err := composer.ComposeEntry(entry)
		if err != nil {
			return errCmd(err)
		}
		if err := writeClipboard(composer.ScriptTag(doc)); err != nil {
			return errCmd(fmt.Errorf("failed to copy to clipboard: %w", err))
		}
		return statusCmd(fmt.Sprintf("✓ Copied %s JSON-LD to clipboard", entry.DisplayTitle()))
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *EditorModel) View() string {
	if !m.Open() {
		return ""
	}
	sess := m.ctrl.Session()

	var tabs []string
	for _, tab := range []models.EditorTab{models.TabDefault, models.TabCodeValidation} {
		if tab == sess.Tab {
			tabs = append(tabs, activeTabStyle.Render(tabLabels[tab]))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(tabLabels[tab]))
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Editing " + sess.EditingKey))
	b.WriteString("  ")
	b.WriteString(strings.Join(tabs, " │ "))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())

	style := editorBorderStyle
	if m.width > 0 {
		style = style.Width(m.width - 2)
	}
	return style.Render(b.String())
}
