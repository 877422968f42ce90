package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/skyguardian/uavacademy/internal/state"
	"github.com/skyguardian/uavacademy/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header, sidebar and footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens that sometimes take raw text
// input. While CapturingInput is true the app forwards every key except
// ctrl+c to the screen.
type InputCapturer interface {
	CapturingInput() bool
}

// NavigateMsg asks the app to switch pages.
type NavigateMsg struct {
	Page    state.Page
	TopicID string
}

// Navigate returns a command emitting a NavigateMsg.
func Navigate(page state.Page, topicID string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Page: page, TopicID: topicID}
	}
}
