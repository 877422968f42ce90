package detail

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skyguardian/uavacademy/internal/content"
	"github.com/skyguardian/uavacademy/internal/i18n"
	"github.com/skyguardian/uavacademy/internal/screen"
	"github.com/skyguardian/uavacademy/internal/state"
	"github.com/skyguardian/uavacademy/internal/ui/layout"
	"github.com/skyguardian/uavacademy/internal/ui/theme"
	"github.com/skyguardian/uavacademy/internal/views"
)

// DetailScreen shows one topic in a scrollable viewport. A new screen is
// built for every navigation, so each topic opens at the top.
type DetailScreen struct {
	env     screen.Env
	vp      viewport.Model
	related int
}

var _ screen.Screen = (*DetailScreen)(nil)

// New creates a new DetailScreen for the selected topic.
func New(env screen.Env) *DetailScreen {
	return &DetailScreen{
		env: env,
		vp:  viewport.New(viewport.WithWidth(60), viewport.WithHeight(20)),
	}
}

func (d *DetailScreen) topic() (content.KnowledgeEntry, bool) {
	return views.SelectedTopic(d.env.Ctrl.Content(), d.env.Ctrl.State())
}

func (d *DetailScreen) Init() tea.Cmd {
	return nil
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	e, ok := d.topic()
	if !ok {
		return d, nil
	}
	related := views.RelatedTopics(d.env.Ctrl.Content(), e)

	if kmsg, isKey := msg.(tea.KeyMsg); isKey {
		switch kmsg.String() {
		case "b":
			d.env.Ctrl.ToggleBookmark(e.ID)
			return d, nil
		case "tab":
			if len(related) > 0 {
				d.related = (d.related + 1) % len(related)
			}
			return d, nil
		case "shift+tab":
			if len(related) > 0 {
				d.related = (d.related - 1 + len(related)) % len(related)
			}
			return d, nil
		case "enter":
			if d.related < len(related) {
				return d, screen.Navigate(state.PageDetail, related[d.related].ID)
			}
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.vp, cmd = d.vp.Update(msg)
	return d, cmd
}

// ScrollOffset returns the viewport's vertical offset.
func (d *DetailScreen) ScrollOffset() int {
	return d.vp.YOffset()
}

func (d *DetailScreen) View(width, height int) string {
	st := d.env.Styles()
	e, ok := d.topic()
	if !ok {
		return st.Hint.Render(d.env.T(i18n.KeyTopicUnavailable))
	}

	d.vp.SetWidth(width)
	d.vp.SetHeight(height)
	d.vp.SetContent(d.render(e, width, st))
	return d.vp.View()
}

func (d *DetailScreen) render(e content.KnowledgeEntry, width int, st theme.Styles) string {
	loc := d.env.Locale()
	s := d.env.Ctrl.State()
	wrap := lipgloss.NewStyle().Width(max(width-2, 20))

	var b strings.Builder

	tag := lipgloss.NewStyle().
		Foreground(st.CategoryColor(string(e.Category))).
		Render("[" + d.env.T(e.Category.MessageKey()) + "]")
	level := st.Neutral.Render(d.env.T(i18n.KeyDifficulty) + ": " + d.env.T(e.Difficulty.MessageKey()))
	b.WriteString(tag + "  " + level)
	if s.IsBookmarked(e.ID) {
		b.WriteString("  " + st.Badge.Render("★ "+d.env.T(i18n.KeyBookmarked)))
	}
	b.WriteString("\n\n")

	icon := e.Icon
	if icon != "" {
		icon += " "
	}
	b.WriteString(st.Title.Render(icon + e.Title.In(loc)))
	b.WriteString("\n\n")

	b.WriteString(st.Heading.Render(d.env.T(i18n.KeyDefinition)))
	b.WriteString("\n")
	b.WriteString(wrap.Render(st.Body.Render(e.Definition.In(loc))))
	b.WriteString("\n\n")

	b.WriteString(st.Heading.Render(d.env.T(i18n.KeyKeyPoints)))
	b.WriteString("\n")
	for _, p := range e.KeyPoints.In(loc) {
		b.WriteString(wrap.Render(st.Body.Render(" • " + p)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(st.Heading.Render(d.env.T(i18n.KeyExamples)))
	b.WriteString("\n")
	for _, ex := range e.Examples.In(loc) {
		b.WriteString(st.Body.Render(" ◦ " + ex))
		b.WriteString("\n")
	}

	related := views.RelatedTopics(d.env.Ctrl.Content(), e)
	if len(related) > 0 {
		b.WriteString("\n")
		b.WriteString(st.Heading.Render(d.env.T(i18n.KeyRelatedTerms)))
		b.WriteString("\n")
		for i, r := range related {
			if i == d.related {
				b.WriteString(st.Selected.Render(" ▸ " + r.Title.In(loc)))
			} else {
				b.WriteString(st.Unselected.Render("   " + r.Title.In(loc)))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (d *DetailScreen) Title() string {
	if e, ok := d.topic(); ok {
		return e.Title.In(d.env.Locale())
	}
	return d.env.T(i18n.KeyKnowledgeBase)
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: d.env.T(i18n.KeyHintScroll)},
		{Key: "Tab", Description: d.env.T(i18n.KeyHintRelated)},
		{Key: "Enter", Description: d.env.T(i18n.KeyHintSelect)},
		{Key: "b", Description: d.env.T(i18n.KeyHintBookmark)},
		{Key: "Esc", Description: d.env.T(i18n.KeyHintBack)},
	}
}
