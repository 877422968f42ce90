package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/skyguardian/uavacademy/internal/screen"
)

type initMsg struct{ title string }

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	updates int
	onMsg   func()
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	title := s.title
	return func() tea.Msg { return initMsg{title: title} }
}

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	if s.onMsg != nil {
		s.onMsg()
	}
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replacement screen")
	}

	cmd := r.Flush()
	if cmd == nil {
		t.Fatal("expected queued init command")
	}
	if r.Flush() != nil {
		t.Error("expected queue to be empty after flush")
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if s1.updates != 1 {
		t.Errorf("expected 1 update, got %d", s1.updates)
	}
}

func TestReplaceDuringUpdateWins(t *testing.T) {
	s2 := &stubScreen{title: "second"}
	r := New(nil)
	s1 := &stubScreen{title: "first", onMsg: func() { r.Replace(s2) }}
	r.Replace(s1)
	r.Flush()

	cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if r.Active() != s2 {
		t.Fatalf("expected replacement to stay active, got %q", r.Active().Title())
	}
	if cmd == nil {
		t.Fatal("expected replacement init command from Update")
	}
}

func TestViewRendersActive(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	if got := r.View(80, 24); got != "first" {
		t.Errorf("View = %q, want %q", got, "first")
	}
}

func TestNilRouterScreen(t *testing.T) {
	r := New(nil)
	if r.View(80, 24) != "" {
		t.Error("expected empty view with no screen")
	}
	if r.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) != nil {
		t.Error("expected nil command with no screen")
	}
}
