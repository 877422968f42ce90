// Package screentest builds screen environments backed by a throwaway
// database for screen tests.
package screentest

import (
	"context"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap/zaptest"

	"github.com/skyguardian/uavacademy/internal/content"
	"github.com/skyguardian/uavacademy/internal/controller"
	"github.com/skyguardian/uavacademy/internal/i18n"
	"github.com/skyguardian/uavacademy/internal/screen"
	"github.com/skyguardian/uavacademy/internal/store"
)

// Env returns an Env over the embedded content and catalogs with state kept
// in a temporary SQLite database.
func Env(t testing.TB) screen.Env {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	pack, err := content.LoadEmbedded()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	text, err := i18n.LoadEmbedded()
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}

	ctrl := controller.New(context.Background(), controller.Options{
		Content:  pack,
		States:   st.StateRepo(),
		Attempts: st.AttemptRepo(),
		Logger:   zaptest.NewLogger(t),
	})
	return screen.Env{Ctrl: ctrl, Text: text}
}

// Rune returns a key press for a printable character.
func Rune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Key returns a key press for a special key such as tea.KeyEnter.
func Key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// NavigateTarget runs cmd and returns the NavigateMsg it produced.
func NavigateTarget(t testing.TB, cmd tea.Cmd) screen.NavigateMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a navigate command, got nil")
	}
	msg, ok := cmd().(screen.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", cmd())
	}
	return msg
}
