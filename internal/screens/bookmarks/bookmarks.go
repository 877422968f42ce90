package bookmarks

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/skyguardian/uavacademy/internal/content"
	"github.com/skyguardian/uavacademy/internal/i18n"
	"github.com/skyguardian/uavacademy/internal/screen"
	"github.com/skyguardian/uavacademy/internal/screens/knowledge"
	"github.com/skyguardian/uavacademy/internal/state"
	"github.com/skyguardian/uavacademy/internal/ui/components"
	"github.com/skyguardian/uavacademy/internal/ui/layout"
	"github.com/skyguardian/uavacademy/internal/views"
)

// BookmarksScreen lists bookmarked topics in content order.
type BookmarksScreen struct {
	env  screen.Env
	list components.TopicList
}

var _ screen.Screen = (*BookmarksScreen)(nil)

// New creates a new BookmarksScreen.
func New(env screen.Env) *BookmarksScreen {
	b := &BookmarksScreen{env: env}
	b.list.SetLen(len(b.entries()))
	return b
}

func (b *BookmarksScreen) entries() []content.KnowledgeEntry {
	return views.BookmarkedTopics(b.env.Ctrl.Content(), b.env.Ctrl.State())
}

func (b *BookmarksScreen) Init() tea.Cmd {
	return nil
}

func (b *BookmarksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	entries := b.entries()
	switch kmsg.String() {
	case "enter":
		if b.list.Cursor < len(entries) {
			return b, screen.Navigate(state.PageDetail, entries[b.list.Cursor].ID)
		}
		return b, nil
	case "b", "x":
		if b.list.Cursor < len(entries) {
			b.env.Ctrl.ToggleBookmark(entries[b.list.Cursor].ID)
			b.list.SetLen(len(b.entries()))
		}
		return b, nil
	}

	b.list, _ = b.list.Update(msg)
	return b, nil
}

func (b *BookmarksScreen) View(width, height int) string {
	st := b.env.Styles()
	entries := b.entries()
	b.list.SetLen(len(entries))

	var sb strings.Builder
	sb.WriteString(st.Title.Render("★ " + b.env.T(i18n.KeyBookmarks)))
	sb.WriteString("\n\n")

	if len(entries) == 0 {
		sb.WriteString(st.Hint.Render(b.env.T(i18n.KeyNoBookmarks)))
		return sb.String()
	}

	sb.WriteString(st.Neutral.Render(fmt.Sprintf("%d %s", len(entries), b.env.T(i18n.KeyTopics))))
	sb.WriteString("\n\n")
	sb.WriteString(b.list.View(knowledge.Rows(b.env, entries), width, height-4, st))
	return sb.String()
}

func (b *BookmarksScreen) Title() string {
	return b.env.T(i18n.KeyBookmarks)
}

func (b *BookmarksScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: b.env.T(i18n.KeyHintNavigate)},
		{Key: "Enter", Description: b.env.T(i18n.KeyHintSelect)},
		{Key: "b", Description: b.env.T(i18n.KeyHintBookmark)},
		{Key: "Esc", Description: b.env.T(i18n.KeyHintBack)},
	}
}
