package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyguardian/uavacademy/internal/screen"
	"github.com/skyguardian/uavacademy/internal/screen/screentest"
	"github.com/skyguardian/uavacademy/internal/screens/detail"
	"github.com/skyguardian/uavacademy/internal/screens/home"
	"github.com/skyguardian/uavacademy/internal/screens/knowledge"
	"github.com/skyguardian/uavacademy/internal/state"
)

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok, "Update returned %T", next)
	return am, cmd
}

func TestAppModel_NavigateMsgSwitchesScreen(t *testing.T) {
	env := screentest.Env(t)
	m := New(env)
	_, ok := m.router.Active().(*home.HomeScreen)
	require.True(t, ok)

	m, _ = update(t, m, screen.NavigateMsg{Page: state.PageDetail, TopicID: "flight-principles"})
	_, ok = m.router.Active().(*detail.DetailScreen)
	assert.True(t, ok)
	assert.Equal(t, state.PageDetail, env.Ctrl.State().CurrentPage)
	assert.Equal(t, []string{"flight-principles"}, env.Ctrl.State().ViewedTopics)
}

func TestAppModel_NumberKeysAndEsc(t *testing.T) {
	env := screentest.Env(t)
	m := New(env)

	m, _ = update(t, m, screentest.Rune('2'))
	_, ok := m.router.Active().(*knowledge.KnowledgeScreen)
	assert.True(t, ok)

	m, _ = update(t, m, screen.NavigateMsg{Page: state.PageDetail, TopicID: "uav-definition"})
	m, _ = update(t, m, screentest.Key(tea.KeyEscape))
	assert.Equal(t, state.PageKnowledge, env.Ctrl.State().CurrentPage)

	m, _ = update(t, m, screentest.Key(tea.KeyEscape))
	assert.Equal(t, state.PageHome, env.Ctrl.State().CurrentPage)

	_, cmd := update(t, m, screentest.Key(tea.KeyEscape))
	assert.Nil(t, cmd)
	assert.Equal(t, state.PageHome, env.Ctrl.State().CurrentPage)
}

func TestAppModel_ToggleKeys(t *testing.T) {
	env := screentest.Env(t)
	m := New(env)

	m, _ = update(t, m, screentest.Rune('t'))
	assert.Equal(t, state.ThemeDark, env.Ctrl.State().Theme)

	_, _ = update(t, m, screentest.Rune('l'))
	assert.Equal(t, "en", string(env.Ctrl.State().Locale))
}

func TestAppModel_SearchCapturesGlobalKeys(t *testing.T) {
	env := screentest.Env(t)
	m := New(env)

	m, _ = update(t, m, screentest.Rune('2'))
	m, _ = update(t, m, screentest.Rune('/'))
	m, _ = update(t, m, screentest.Rune('t'))

	assert.Equal(t, state.ThemeLight, env.Ctrl.State().Theme)
	assert.Equal(t, "t", env.Ctrl.State().SearchQuery)
	assert.Equal(t, state.PageKnowledge, env.Ctrl.State().CurrentPage)
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := New(screentest.Env(t))

	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestAppModel_View(t *testing.T) {
	env := screentest.Env(t)
	env.Ctrl.ToggleLocale()
	m := New(env)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.render(), "Terminal too small")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	out := m.render()
	for _, want := range []string{"UAV Academy", "Knowledge Base", "Total Progress"} {
		assert.True(t, strings.Contains(out, want), "view missing %q", want)
	}
}
