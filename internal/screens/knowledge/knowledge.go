package knowledge

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/skyguardian/uavacademy/internal/content"
	"github.com/skyguardian/uavacademy/internal/i18n"
	"github.com/skyguardian/uavacademy/internal/screen"
	"github.com/skyguardian/uavacademy/internal/state"
	"github.com/skyguardian/uavacademy/internal/ui/components"
	"github.com/skyguardian/uavacademy/internal/ui/layout"
	"github.com/skyguardian/uavacademy/internal/views"
)

// KnowledgeScreen lists topics filtered by the search query.
type KnowledgeScreen struct {
	env    screen.Env
	search components.SearchInput
	list   components.TopicList
}

var _ screen.Screen = (*KnowledgeScreen)(nil)

// New creates a new KnowledgeScreen showing the saved query.
func New(env screen.Env) *KnowledgeScreen {
	s := env.Ctrl.State()
	k := &KnowledgeScreen{
		env:    env,
		search: components.NewSearchInput(env.T(i18n.KeySearchPlaceholder), s.SearchQuery, 40),
	}
	k.list.SetLen(len(k.entries()))
	return k
}

func (k *KnowledgeScreen) entries() []content.KnowledgeEntry {
	return views.FilteredEntries(k.env.Ctrl.Content(), k.env.Ctrl.State())
}

func (k *KnowledgeScreen) Init() tea.Cmd {
	return nil
}

// CapturingInput reports whether the search box has focus.
func (k *KnowledgeScreen) CapturingInput() bool {
	return k.search.Focused()
}

func (k *KnowledgeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	if k.search.Focused() {
		if isKey && (kmsg.String() == "esc" || kmsg.String() == "enter") {
			k.search.Blur()
			return k, nil
		}
		var cmd tea.Cmd
		k.search, cmd = k.search.Update(msg)
		if v := k.search.Value(); v != k.env.Ctrl.State().SearchQuery {
			k.env.Ctrl.SetSearchQuery(v)
			k.list.SetLen(len(k.entries()))
		}
		return k, cmd
	}

	if !isKey {
		return k, nil
	}

	switch kmsg.String() {
	case "/":
		return k, k.search.Focus()
	case "enter":
		if e, ok := k.selected(); ok {
			return k, screen.Navigate(state.PageDetail, e.ID)
		}
		return k, nil
	case "b":
		if e, ok := k.selected(); ok {
			k.env.Ctrl.ToggleBookmark(e.ID)
		}
		return k, nil
	}

	k.list, _ = k.list.Update(msg)
	return k, nil
}

func (k *KnowledgeScreen) selected() (content.KnowledgeEntry, bool) {
	entries := k.entries()
	if k.list.Cursor < 0 || k.list.Cursor >= len(entries) {
		return content.KnowledgeEntry{}, false
	}
	return entries[k.list.Cursor], true
}

func (k *KnowledgeScreen) View(width, height int) string {
	st := k.env.Styles()
	entries := k.entries()
	k.list.SetLen(len(entries))

	var b strings.Builder
	b.WriteString(st.Title.Render(k.env.T(i18n.KeyKnowledgeBase)))
	b.WriteString("\n\n")
	b.WriteString(k.search.View())
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(st.Hint.Render(k.env.T(i18n.KeyNoResults)))
		return b.String()
	}

	b.WriteString(st.Neutral.Render(fmt.Sprintf("%d %s", len(entries), k.env.T(i18n.KeyTopics))))
	b.WriteString("\n\n")
	b.WriteString(k.list.View(Rows(k.env, entries), width, height-6, st))
	return b.String()
}

func (k *KnowledgeScreen) Title() string {
	return k.env.T(i18n.KeyKnowledgeBase)
}

func (k *KnowledgeScreen) KeyHints() []layout.KeyHint {
	if k.search.Focused() {
		return []layout.KeyHint{
			{Key: "Enter/Esc", Description: k.env.T(i18n.KeyHintBack)},
			{Key: "Ctrl+C", Description: k.env.T(i18n.KeyHintQuit)},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: k.env.T(i18n.KeyHintNavigate)},
		{Key: "Enter", Description: k.env.T(i18n.KeyHintSelect)},
		{Key: "/", Description: k.env.T(i18n.KeyHintSearch)},
		{Key: "b", Description: k.env.T(i18n.KeyHintBookmark)},
		{Key: "Esc", Description: k.env.T(i18n.KeyHintBack)},
	}
}

// Rows converts entries into list rows for the current locale.
func Rows(env screen.Env, entries []content.KnowledgeEntry) []components.TopicRow {
	s := env.Ctrl.State()
	loc := env.Locale()
	rows := make([]components.TopicRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, components.TopicRow{
			Icon:       e.Icon,
			Title:      e.Title.In(loc),
			Category:   string(e.Category),
			Tag:        env.T(e.Category.MessageKey()),
			Difficulty: env.T(i18n.KeyDifficulty) + ": " + env.T(e.Difficulty.MessageKey()),
			Bookmarked: s.IsBookmarked(e.ID),
			Viewed:     s.HasViewed(e.ID),
		})
	}
	return rows
}
