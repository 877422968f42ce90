package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// SearchInput wraps bubbles/textinput for the knowledge search box.
type SearchInput struct {
	Model textinput.Model
}

// NewSearchInput creates an unfocused search box holding value.
func NewSearchInput(placeholder, value string, width int) SearchInput {
	ti := textinput.New()
	ti.Prompt = "⌕ "
	ti.Placeholder = placeholder
	ti.SetValue(value)
	if width > 0 {
		ti.SetWidth(width)
	}
	return SearchInput{Model: ti}
}

// Focus starts capturing keys.
func (s *SearchInput) Focus() tea.Cmd {
	return s.Model.Focus()
}

// Blur stops capturing keys.
func (s *SearchInput) Blur() {
	s.Model.Blur()
}

// Focused reports whether the box captures keys.
func (s SearchInput) Focused() bool {
	return s.Model.Focused()
}

// Update forwards msg to the text input.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the input.
func (s SearchInput) View() string {
	return s.Model.View()
}

// Value returns the current text.
func (s SearchInput) Value() string {
	return s.Model.Value()
}
