package settings

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/skyguardian/uavacademy/internal/i18n"
	"github.com/skyguardian/uavacademy/internal/screen"
	"github.com/skyguardian/uavacademy/internal/state"
	"github.com/skyguardian/uavacademy/internal/ui/components"
	"github.com/skyguardian/uavacademy/internal/ui/layout"
)

// SettingsScreen toggles language and theme.
type SettingsScreen struct {
	env  screen.Env
	menu components.Menu
}

var _ screen.Screen = (*SettingsScreen)(nil)

// New creates a new SettingsScreen.
func New(env screen.Env) *SettingsScreen {
	s := &SettingsScreen{env: env}
	s.menu = components.NewMenu(s.items())
	return s
}

func (s *SettingsScreen) items() []components.MenuItem {
	st := s.env.Ctrl.State()

	theme := i18n.KeyLight
	if st.Theme == state.ThemeDark {
		theme = i18n.KeyDark
	}

	return []components.MenuItem{
		{
			Label: s.env.T(i18n.KeyLanguage) + ": " + s.env.T(i18n.KeyOtherLanguage),
			Action: func() tea.Cmd {
				s.env.Ctrl.ToggleLocale()
				return nil
			},
		},
		{
			Label: s.env.T(i18n.KeyTheme) + ": " + s.env.T(theme),
			Action: func() tea.Cmd {
				s.env.Ctrl.ToggleTheme()
				return nil
			},
		},
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	// Labels follow the current locale and theme.
	s.menu.SetItems(s.items())
	return s, cmd
}

func (s *SettingsScreen) View(width, height int) string {
	st := s.env.Styles()
	s.menu.SetItems(s.items())

	var b strings.Builder
	b.WriteString(st.Title.Render("⚙ " + s.env.T(i18n.KeySettings)))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View(st))
	b.WriteString("\n\n")
	b.WriteString(st.Heading.Render(s.env.T(i18n.KeyAbout)))
	b.WriteString("\n")
	b.WriteString(st.Body.Render(s.env.T(i18n.KeyAppName)))
	b.WriteString("\n")
	b.WriteString(st.Hint.Render(s.env.T(i18n.KeyTagline)))
	return b.String()
}

func (s *SettingsScreen) Title() string {
	return s.env.T(i18n.KeySettings)
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: s.env.T(i18n.KeyHintNavigate)},
		{Key: "Enter", Description: s.env.T(i18n.KeyHintSelect)},
		{Key: "Esc", Description: s.env.T(i18n.KeyHintBack)},
	}
}
