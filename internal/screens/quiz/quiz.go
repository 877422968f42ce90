package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skyguardian/uavacademy/internal/i18n"
	"github.com/skyguardian/uavacademy/internal/quiz"
	"github.com/skyguardian/uavacademy/internal/screen"
	"github.com/skyguardian/uavacademy/internal/state"
	"github.com/skyguardian/uavacademy/internal/ui/components"
	"github.com/skyguardian/uavacademy/internal/ui/layout"
	"github.com/skyguardian/uavacademy/internal/ui/theme"
)

// QuizScreen drives the controller's quiz session.
type QuizScreen struct {
	env     screen.Env
	cursor  int
	shownAt int
}

var _ screen.Screen = (*QuizScreen)(nil)

// New creates a new QuizScreen.
func New(env screen.Env) *QuizScreen {
	return &QuizScreen{env: env}
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return q, nil
	}
	qz, s, ok := q.env.Ctrl.Quiz()
	if !ok {
		return q, nil
	}
	q.syncCursor(s)
	key := kmsg.String()

	switch {
	case s.Finished():
		switch key {
		case "r", "enter":
			q.env.Ctrl.QuizRestart()
		case "h":
			return q, screen.Navigate(state.PageHome, "")
		}

	case s.Answered():
		switch key {
		case "enter", "n", "space":
			q.env.Ctrl.QuizAdvance()
		}

	default:
		cur, _ := qz.Current(s)
		if i, ok := components.LabelIndex(key); ok && i < cur.OptionCount() {
			q.cursor = i
			q.env.Ctrl.QuizAnswer(i)
			return q, nil
		}
		switch key {
		case "enter", "space":
			q.env.Ctrl.QuizAnswer(q.cursor)
		default:
			opts := components.OptionList{Options: cur.Options.In(q.env.Locale()), Cursor: q.cursor}
			opts, _ = opts.Update(msg)
			q.cursor = opts.Cursor
		}
	}
	return q, nil
}

// syncCursor resets the cursor when the session shows a new question.
func (q *QuizScreen) syncCursor(s quiz.State) {
	if s.CurrentIndex() != q.shownAt {
		q.shownAt = s.CurrentIndex()
		q.cursor = 0
	}
}

func (q *QuizScreen) View(width, height int) string {
	st := q.env.Styles()
	qz, s, ok := q.env.Ctrl.Quiz()
	if !ok {
		return ""
	}
	q.syncCursor(s)

	if qz.Total() == 0 {
		return st.Hint.Render(q.env.T(i18n.KeyNoQuestions))
	}
	if s.Finished() {
		return q.renderFinished(qz, s, st)
	}

	cur, _ := qz.Current(s)
	loc := q.env.Locale()
	wrap := lipgloss.NewStyle().Width(max(width-2, 20))

	var b strings.Builder

	label := fmt.Sprintf("%s %d / %d", q.env.T(i18n.KeyQuestion), s.CurrentIndex()+1, qz.Total())
	frac := float64(s.CurrentIndex()+1) / float64(qz.Total())
	b.WriteString(components.NewProgressBar(label, frac, false, min(width, 60)).View(st))
	b.WriteString("\n\n")

	b.WriteString(wrap.Render(st.Title.Render(cur.Question.In(loc))))
	b.WriteString("\n\n")

	opts := components.OptionList{
		Options: cur.Options.In(loc),
		Marks:   optionMarks(qz.Marks(s)),
		Cursor:  q.cursor,
		Locked:  s.Answered(),
	}
	b.WriteString(opts.View(st))

	if qz.ExplanationVisible(s) {
		b.WriteString("\n")
		sel, _ := s.SelectedOption()
		if cur.IsCorrect(sel) {
			b.WriteString(st.Correct.Render(q.env.T(i18n.KeyCorrect)))
		} else {
			b.WriteString(st.Incorrect.Render(q.env.T(i18n.KeyIncorrect)))
		}
		b.WriteString("\n")
		b.WriteString(st.Heading.Render(q.env.T(i18n.KeyExplanation)))
		b.WriteString("\n")
		b.WriteString(wrap.Render(st.Body.Render(cur.Explanation.In(loc))))
		b.WriteString("\n\n")

		next := i18n.KeyNext
		if s.CurrentIndex() == qz.Total()-1 {
			next = i18n.KeyFinish
		}
		b.WriteString(st.Selected.Render("  ▸ " + q.env.T(next)))
	}

	return b.String()
}

func (q *QuizScreen) renderFinished(qz *quiz.Quiz, s quiz.State, st theme.Styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("🏆 " + q.env.T(i18n.KeyQuizDone)))
	b.WriteString("\n\n")
	b.WriteString(st.Body.Render(fmt.Sprintf("%s: %d / %d", q.env.T(i18n.KeyScore), s.Score(), qz.Total())))
	b.WriteString("\n\n")
	b.WriteString(st.Selected.Render("  ▸ " + q.env.T(i18n.KeyRestartQuiz)))
	b.WriteString("\n")
	b.WriteString(st.Unselected.Render("    " + q.env.T(i18n.KeyHome)))
	return b.String()
}

func optionMarks(marks []quiz.Mark) []components.OptionMark {
	out := make([]components.OptionMark, len(marks))
	for i, m := range marks {
		switch m {
		case quiz.MarkCorrect:
			out[i] = components.OptionCorrect
		case quiz.MarkSelectedWrong:
			out[i] = components.OptionWrong
		case quiz.MarkNeutral:
			out[i] = components.OptionNeutral
		default:
			out[i] = components.OptionPlain
		}
	}
	return out
}

func (q *QuizScreen) Title() string {
	return q.env.T(i18n.KeyQuizCenter)
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	_, s, _ := q.env.Ctrl.Quiz()
	switch {
	case s.Finished():
		return []layout.KeyHint{
			{Key: "r", Description: q.env.T(i18n.KeyRestartQuiz)},
			{Key: "h", Description: q.env.T(i18n.KeyHome)},
		}
	case s.Answered():
		return []layout.KeyHint{
			{Key: "Enter", Description: q.env.T(i18n.KeyNext)},
			{Key: "Esc", Description: q.env.T(i18n.KeyHintBack)},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: q.env.T(i18n.KeyHintNavigate)},
		{Key: "A-D/Enter", Description: q.env.T(i18n.KeyHintAnswer)},
		{Key: "Esc", Description: q.env.T(i18n.KeyHintBack)},
	}
}
