package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Message     string // Main confirmation message
	Destructive bool   // If true, Yes is red, No is green
	YesLabel    string // Custom label for Yes (default: "Yes")
	NoLabel     string // Custom label for No (default: "No")
	// ConfirmKeys are extra keys that also confirm, e.g. the key that opened
	// the prompt.
	ConfirmKeys []string
}

// ConfirmationModel handles confirmation prompts
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
	viewWidth int // Width for centering inline messages
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel

	if m.config.YesLabel == "" {
		m.config.YesLabel = "Yes"
	}
	if m.config.NoLabel == "" {
		m.config.NoLabel = "No"
	}
}

// Hide deactivates the confirmation without running either callback
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation. Keys other than yes, no
// and the configured confirm keys are swallowed while active.
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	key := msg.String()
	switch key {
	case "y", "Y":
		return m.confirm()
	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}
	for _, k := range m.config.ConfirmKeys {
		if key == k {
			return m.confirm()
		}
	}
	return nil
}

func (m *ConfirmationModel) confirm() tea.Cmd {
	m.active = false
	if m.onConfirm != nil {
		return m.onConfirm()
	}
	return nil
}

// View renders the confirmation as one inline line
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	options := formatConfirmOptions(m.config.Destructive, m.config.YesLabel, m.config.NoLabel)
	message := fmt.Sprintf("%s %s", m.config.Message, options)

	if m.viewWidth > 0 {
		messageWidth := lipgloss.Width(message)
		if messageWidth < m.viewWidth {
			centeredStyle := lipgloss.NewStyle().
				Width(m.viewWidth).
				Align(lipgloss.Center)
			return centeredStyle.Render(message)
		}
	}

	return message
}

// ViewWithWidth renders the confirmation with a specific width for centering
func (m *ConfirmationModel) ViewWithWidth(width int) string {
	m.viewWidth = width
	return m.View()
}

func formatConfirmOptions(destructive bool, yes, no string) string {
	yesStyle := confirmSafeStyle
	noStyle := confirmDangerStyle
	if destructive {
		yesStyle, noStyle = confirmDangerStyle, confirmSafeStyle
	}
	return yesStyle.Render("[y] "+yes) + " / " + noStyle.Render("[n] "+no)
}
