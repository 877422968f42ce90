package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skyguardian/uavacademy/internal/content"
	"github.com/skyguardian/uavacademy/internal/i18n"
	"github.com/skyguardian/uavacademy/internal/screen"
	"github.com/skyguardian/uavacademy/internal/state"
	"github.com/skyguardian/uavacademy/internal/ui/components"
	"github.com/skyguardian/uavacademy/internal/ui/layout"
	"github.com/skyguardian/uavacademy/internal/ui/theme"
	"github.com/skyguardian/uavacademy/internal/views"
)

// previewCount is how many topics each category card lists.
const previewCount = 2

// HomeScreen shows the hero, learning progress and category previews.
type HomeScreen struct {
	env    screen.Env
	menu   components.Menu
	locale i18n.Locale
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env screen.Env) *HomeScreen {
	h := &HomeScreen{env: env}
	h.buildMenu()
	return h
}

// buildMenu (re)creates the menu labels for the current locale.
func (h *HomeScreen) buildMenu() {
	h.locale = h.env.Locale()
	loc := h.locale

	items := []components.MenuItem{
		{Label: h.env.T(i18n.KeyGetStarted), Action: func() tea.Cmd {
			return screen.Navigate(state.PageKnowledge, "")
		}},
	}
	for _, sum := range views.Categories(h.env.Ctrl.Content(), views.HomeCategories, previewCount) {
		for _, e := range sum.Preview {
			id := e.ID
			items = append(items, components.MenuItem{
				Label: fmt.Sprintf("%s %s", icon(e), e.Title.In(loc)),
				Action: func() tea.Cmd {
					return screen.Navigate(state.PageDetail, id)
				},
			})
		}
	}
	items = append(items, components.MenuItem{
		Label: h.env.T(i18n.KeyStartQuiz),
		Action: func() tea.Cmd {
			return screen.Navigate(state.PageQuiz, "")
		},
	})

	if h.menu.Items == nil {
		h.menu = components.NewMenu(items)
		return
	}
	h.menu.SetItems(items)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.locale != h.env.Locale() {
		h.buildMenu()
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	if h.locale != h.env.Locale() {
		h.buildMenu()
	}
	st := h.env.Styles()
	store := h.env.Ctrl.Content()
	prog := views.ProgressOf(store, h.env.Ctrl.State())

	var sections []string

	// 1. Hero
	hero := st.Title.Render(h.env.T(i18n.KeyExploreUAV)) + "\n" +
		st.Subtitle.Width(max(width-18, 20)).Render(h.env.T(i18n.KeyHeroSubtitle))
	if height >= 28 {
		hero = lipgloss.JoinHorizontal(lipgloss.Center, RenderDrone(VariantFor(prog.Percentage), st), "   ", hero)
	}
	sections = append(sections, hero)

	// 2. Progress
	bar := components.NewProgressBar(h.env.T(i18n.KeyProgress), prog.Fraction(), true, min(width, 60)).View(st)
	viewed := st.Neutral.Render(fmt.Sprintf("%s %d / %d · ★ %d",
		h.env.T(i18n.KeyViewed), prog.Learned, prog.Total, prog.BookmarkCount))
	sections = append(sections, bar+"\n"+viewed)

	// 3. Category counts
	sections = append(sections, h.renderCategories(st))

	// 4. Menu
	sections = append(sections, h.menu.View(st))

	return strings.Join(sections, "\n\n")
}

func (h *HomeScreen) renderCategories(st theme.Styles) string {
	store := h.env.Ctrl.Content()
	var cards []string
	for _, sum := range views.Categories(store, views.HomeCategories, previewCount) {
		name := lipgloss.NewStyle().
			Foreground(st.CategoryColor(string(sum.Category))).
			Bold(true).
			Render(h.env.T(sum.Category.MessageKey()))
		count := st.Neutral.Render(fmt.Sprintf("%d %s", sum.Count, h.env.T(i18n.KeyTopics)))
		cards = append(cards, name+"  "+count)
	}
	return st.Heading.Render(h.env.T(i18n.KeyCategories)) + "\n" + strings.Join(cards, "    ")
}

func (h *HomeScreen) Title() string {
	return h.env.T(i18n.KeyHome)
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: h.env.T(i18n.KeyHintNavigate)},
		{Key: "Enter", Description: h.env.T(i18n.KeyHintSelect)},
		{Key: "1-5", Description: h.env.T(i18n.KeyHintPages)},
		{Key: "Ctrl+C", Description: h.env.T(i18n.KeyHintQuit)},
	}
}

func icon(e content.KnowledgeEntry) string {
	if e.Icon == "" {
		return "•"
	}
	return e.Icon
}
