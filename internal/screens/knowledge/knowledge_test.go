package knowledge

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyguardian/uavacademy/internal/screen/screentest"
	"github.com/skyguardian/uavacademy/internal/state"
)

func TestKnowledgeScreen_SearchUpdatesQuery(t *testing.T) {
	env := screentest.Env(t)
	k := New(env)

	k.Update(screentest.Rune('/'))
	require.True(t, k.CapturingInput())

	for _, r := range "遥感" {
		k.Update(screentest.Rune(r))
	}
	assert.Equal(t, "遥感", env.Ctrl.State().SearchQuery)

	k.Update(screentest.Key(tea.KeyEscape))
	assert.False(t, k.CapturingInput())

	_, cmd := k.Update(screentest.Key(tea.KeyEnter))
	msg := screentest.NavigateTarget(t, cmd)
	assert.Equal(t, state.PageDetail, msg.Page)
	assert.Equal(t, "remote-sensing-basics", msg.TopicID)
}

func TestKnowledgeScreen_NoResults(t *testing.T) {
	env := screentest.Env(t)
	env.Ctrl.ToggleLocale()
	env.Ctrl.SetSearchQuery("zzz-nothing")
	k := New(env)

	out := k.View(80, 20)
	assert.Contains(t, out, "No matching topics found.")

	_, cmd := k.Update(screentest.Key(tea.KeyEnter))
	assert.Nil(t, cmd)
}

func TestKnowledgeScreen_BookmarkSelected(t *testing.T) {
	env := screentest.Env(t)
	k := New(env)

	k.Update(screentest.Key(tea.KeyDown))
	k.Update(screentest.Rune('b'))
	assert.Equal(t, []string{"flight-principles"}, env.Ctrl.State().Bookmarks)

	k.Update(screentest.Rune('b'))
	assert.Empty(t, env.Ctrl.State().Bookmarks)
}

func TestKnowledgeScreen_ViewListsAllTopics(t *testing.T) {
	env := screentest.Env(t)
	env.Ctrl.ToggleLocale()
	k := New(env)

	out := k.View(100, 40)
	for _, title := range []string{"UAV Definition", "Flight Principles"} {
		assert.True(t, strings.Contains(out, title), "missing %q", title)
	}
}
