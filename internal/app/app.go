package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/skyguardian/uavacademy/internal/controller"
	"github.com/skyguardian/uavacademy/internal/i18n"
	"github.com/skyguardian/uavacademy/internal/router"
	"github.com/skyguardian/uavacademy/internal/screen"
	"github.com/skyguardian/uavacademy/internal/screens"
	"github.com/skyguardian/uavacademy/internal/state"
	"github.com/skyguardian/uavacademy/internal/ui/layout"
	"github.com/skyguardian/uavacademy/internal/views"
)

// pageKeys maps number keys to sidebar pages.
var pageKeys = map[string]state.Page{
	"1": state.PageHome,
	"2": state.PageKnowledge,
	"3": state.PageQuiz,
	"4": state.PageBookmarks,
	"5": state.PageSettings,
}

// pageLabels is the sidebar label of each page.
var pageLabels = map[state.Page]i18n.Key{
	state.PageHome:      i18n.KeyHome,
	state.PageKnowledge: i18n.KeyKnowledgeBase,
	state.PageQuiz:      i18n.KeyQuizCenter,
	state.PageBookmarks: i18n.KeyBookmarks,
	state.PageSettings:  i18n.KeySettings,
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    screen.Env
	router *router.Router
	width  int
	height int
}

// New creates the root model showing the controller's current page. Every
// navigation rebuilds the page screen.
func New(env screen.Env) AppModel {
	r := router.New(screens.Build(env, env.Ctrl.State().CurrentPage))
	env.Ctrl.Subscribe(func(ch controller.Change) {
		if ch.Action == controller.ActionNavigate {
			r.Replace(screens.Build(env, ch.Next.CurrentPage))
		}
	})
	return AppModel{env: env, router: r}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.NavigateMsg:
		m.env.Ctrl.NavigateTo(msg.Page, msg.TopicID)
		return m, m.router.Flush()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.capturing() {
			if handled, cmd := m.handleGlobalKey(msg.String()); handled {
				return m, cmd
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturingInput()
}

func (m AppModel) handleGlobalKey(key string) (bool, tea.Cmd) {
	ctrl := m.env.Ctrl
	if page, ok := pageKeys[key]; ok {
		ctrl.NavigateTo(page, "")
		return true, m.router.Flush()
	}

	switch key {
	case "esc":
		switch ctrl.State().CurrentPage {
		case state.PageHome:
			return true, nil
		case state.PageDetail:
			ctrl.NavigateTo(state.PageKnowledge, "")
		default:
			ctrl.NavigateTo(state.PageHome, "")
		}
		return true, m.router.Flush()
	case "t":
		ctrl.ToggleTheme()
		return true, nil
	case "l":
		ctrl.ToggleLocale()
		return true, nil
	}
	return false, nil
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current size.
func (m AppModel) render() string {
	st := m.env.Styles()
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height, st)
	}

	s := m.env.Ctrl.State()
	active := m.router.Active()

	right := fmt.Sprintf("★ %d", len(s.Bookmarks))
	header := layout.RenderHeader(m.env.T(i18n.KeyAppName), active.Title(), right, m.width, st)

	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	footer := layout.RenderFooter(hints, m.width, st)

	w, h := layout.ContentSize(m.width, m.height, header, footer)
	sidebar := layout.RenderSidebar(m.navItems(s.CurrentPage), m.badge(), h, st)
	content := m.router.View(w, h)

	return layout.RenderFrame(header, sidebar, content, footer, m.width, m.height)
}

func (m AppModel) navItems(current state.Page) []layout.NavItem {
	if current == state.PageDetail {
		current = state.PageKnowledge
	}
	pages := state.Pages()
	items := make([]layout.NavItem, 0, len(pages))
	for i, p := range pages {
		items = append(items, layout.NavItem{
			Key:    fmt.Sprint(i + 1),
			Label:  m.env.T(pageLabels[p]),
			Active: p == current,
		})
	}
	return items
}

func (m AppModel) badge() string {
	st := m.env.Styles()
	prog := views.ProgressOf(m.env.Ctrl.Content(), m.env.Ctrl.State())
	return st.Badge.Render(fmt.Sprintf(" %s %s", m.env.T(i18n.KeyLevel), m.env.T(i18n.KeyLearner))) + "\n" +
		st.Neutral.Render(fmt.Sprintf(" %d%% %s", prog.Percentage, m.env.T(i18n.KeyTotalProgress)))
}

// Run starts the Bubble Tea program.
func Run(env screen.Env) error {
	p := tea.NewProgram(New(env))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
