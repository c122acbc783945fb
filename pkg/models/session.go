package models

import "fmt"

// EditorTab identifies which tab of the schema editor is active
type EditorTab string

const (
	TabDefault        EditorTab = "default"
	TabCodeValidation EditorTab = "codeValidation"
)

// ParseEditorTab converts a config or flag value to an EditorTab
func ParseEditorTab(s string) (EditorTab, error) {
	switch EditorTab(s) {
	case TabDefault, "":
		return TabDefault, nil
	case TabCodeValidation:
		return TabCodeValidation, nil
	}
	return "", fmt.Errorf("unknown editor tab %q (valid: default, codeValidation)", s)
}

// Next returns the tab that follows t when cycling
func (t EditorTab) Next() EditorTab {
	if t == TabCodeValidation {
		return TabDefault
	}
	return TabCodeValidation
}

// EditorSession describes what the editing surface currently targets.
// EditingKey is a weak reference: it may name an entry that has since been
// deleted, and readers must treat such a key as stale.
type EditorSession struct {
	EditingKey string    `json:"editing_key,omitempty"`
	Tab        EditorTab `json:"tab"`
	Open       bool      `json:"open"`
}

// Validate checks the session invariant: an open session is bound to a key
func (s EditorSession) Validate() error {
	if s.Open && s.EditingKey == "" {
		return fmt.Errorf("open editor session without an entry key: %w", ErrInvalidState)
	}
	return nil
}
