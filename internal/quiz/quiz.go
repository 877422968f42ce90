// Package quiz implements the quiz session state machine. Transitions are
// pure: each returns a new State and invalid inputs return the input state.
package quiz

import "github.com/skyguardian/uavacademy/internal/content"

// State is a snapshot of a quiz session. The zero value is the initial
// state: first question, nothing answered, score 0.
type State struct {
	index    int
	selected int
	answered bool
	score    int
	finished bool
}

// CurrentIndex returns the index of the question being shown.
func (s State) CurrentIndex() int { return s.index }

// SelectedOption returns the chosen option of the current question.
func (s State) SelectedOption() (int, bool) { return s.selected, s.answered }

// Answered reports whether the current question has been answered.
func (s State) Answered() bool { return s.answered }

// Score returns the number of correct answers so far.
func (s State) Score() int { return s.score }

// Finished reports whether every question has been answered and advanced.
func (s State) Finished() bool { return s.finished }

// Quiz runs sessions over a fixed, ordered question list.
type Quiz struct {
	questions []content.QuizQuestion
}

// New creates a quiz over questions in the given order.
func New(questions []content.QuizQuestion) *Quiz {
	return &Quiz{questions: questions}
}

// Total returns the number of questions.
func (q *Quiz) Total() int {
	return len(q.questions)
}

// Start returns the initial state. A quiz with no questions starts finished.
func (q *Quiz) Start() State {
	return State{finished: len(q.questions) == 0}
}

// Current returns the question at the state's index.
func (q *Quiz) Current(s State) (content.QuizQuestion, bool) {
	if s.finished || s.index < 0 || s.index >= len(q.questions) {
		return content.QuizQuestion{}, false
	}
	return q.questions[s.index], true
}

// Answer selects option k for the current question. The first answer wins:
// answering again, answering after the end or picking an option outside the
// question's range leaves s unchanged.
func (q *Quiz) Answer(s State, k int) State {
	cur, ok := q.Current(s)
	if !ok || s.answered || k < 0 || k >= cur.OptionCount() {
		return s
	}
	s.selected = k
	s.answered = true
	if cur.IsCorrect(k) {
		s.score++
	}
	return s
}

// Advance moves past an answered question, finishing after the last one.
func (q *Quiz) Advance(s State) State {
	if s.finished || !s.answered {
		return s
	}
	if s.index >= len(q.questions)-1 {
		return State{index: s.index, score: s.score, finished: true}
	}
	return State{index: s.index + 1, score: s.score}
}

// Restart returns a finished session to the initial state.
func (q *Quiz) Restart(s State) State {
	if !s.finished {
		return s
	}
	return q.Start()
}

// ExplanationVisible reports whether the current explanation is revealed.
func (q *Quiz) ExplanationVisible(s State) bool {
	return !s.finished && s.answered
}

// Mark classifies an option once the question is answered.
type Mark int

const (
	MarkUnrevealed Mark = iota
	MarkNeutral
	MarkCorrect
	MarkSelectedWrong
)

// Marks classifies every option of the current question. Before an answer
// all options are unrevealed.
func (q *Quiz) Marks(s State) []Mark {
	cur, ok := q.Current(s)
	if !ok {
		return nil
	}
	marks := make([]Mark, cur.OptionCount())
	if !s.answered {
		return marks
	}
	for i := range marks {
		switch {
		case cur.IsCorrect(i):
			marks[i] = MarkCorrect
		case i == s.selected:
			marks[i] = MarkSelectedWrong
		default:
			marks[i] = MarkNeutral
		}
	}
	return marks
}
