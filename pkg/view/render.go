package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	radioOn  = "(•)"
	radioOff = "( )"
)

// RenderOptions controls how a section is drawn
type RenderOptions struct {
	Width     int
	Cursor    int
	ShowIcons bool
	// NoActions hides the edit/preview/delete hints, for non-interactive output.
	NoActions bool
}

// Render draws sec as terminal text. A nil section renders as the empty
// string: no header, no notice, no rows.
func Render(sec *Section, opts RenderOptions) string {
	if sec == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(SectionTitleStyle.Render(sec.Title))
	b.WriteString("\n")
	if sec.ShowProNotice {
		b.WriteString(NoticeStyle.Render(ProNotice))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, row := range sec.Rows {
		line := renderRow(row, opts)
		if !opts.NoActions && i == opts.Cursor {
			line = SelectedStyle.Render(line)
		} else {
			line = NormalStyle.Render(line)
		}
		if opts.Width > 0 {
			line = lipgloss.NewStyle().MaxWidth(opts.Width).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func renderRow(row Row, opts RenderOptions) string {
	var parts []string
	if row.ShowPrimaryControl {
		if row.Primary {
			parts = append(parts, PrimaryMarkStyle.Render(radioOn))
		} else {
			parts = append(parts, radioOff)
		}
	}
	if opts.ShowIcons {
		parts = append(parts, row.Icon)
	}
	parts = append(parts, row.Title)

	if opts.NoActions {
		return strings.Join(parts, " ")
	}
	actions := ActionStyle.Render("[e]dit  [p]review  [d]elete")
	if row.DeleteArmed {
		actions = ConfirmDangerStyle.Render("Delete? [y]es / [n]o")
	}
	return strings.Join(parts, " ") + "  " + actions
}
