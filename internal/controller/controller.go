// Package controller owns the live AppState and quiz session. It is the only
// place actions are applied: each action runs a pure transition, persists
// the result and notifies subscribers.
//
// A Controller is not safe for concurrent use. The UI event loop serializes
// all calls.
package controller

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skyguardian/uavacademy/internal/content"
	"github.com/skyguardian/uavacademy/internal/quiz"
	"github.com/skyguardian/uavacademy/internal/state"
	"github.com/skyguardian/uavacademy/internal/store"
)

// Action identifies what produced a Change.
type Action int

const (
	ActionNavigate Action = iota
	ActionToggleBookmark
	ActionToggleLocale
	ActionToggleTheme
	ActionSearch
	ActionQuiz
)

// Change is delivered to subscribers after every action.
type Change struct {
	Action Action
	Prev   state.AppState
	Next   state.AppState
}

// Listener observes changes.
type Listener func(Change)

// Options configures a Controller. Content and States are required.
type Options struct {
	Content  *content.Store
	States   store.StateRepo
	Attempts store.AttemptRepo
	Logger   *zap.Logger
	Now      func() time.Time
	NewID    func() string
}

// Controller applies actions to the app state.
type Controller struct {
	ctx      context.Context
	content  *content.Store
	states   store.StateRepo
	attempts store.AttemptRepo
	log      *zap.Logger
	now      func() time.Time
	newID    func() string

	state     state.AppState
	quiz      *quiz.Quiz
	session   quiz.State
	inSession bool

	listeners []subscription
	nextSub   int
}

type subscription struct {
	id int
	l  Listener
}

// New restores the saved state and returns a ready Controller. A missing or
// unreadable record starts from the default state.
func New(ctx context.Context, opts Options) *Controller {
	c := &Controller{
		ctx:      ctx,
		content:  opts.Content,
		states:   opts.States,
		attempts: opts.Attempts,
		log:      opts.Logger,
		now:      opts.Now,
		newID:    opts.NewID,
		quiz:     quiz.New(opts.Content.Questions()),
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}

	c.state = c.restore()
	if c.state.CurrentPage == state.PageQuiz {
		c.startSession()
	}
	return c
}

func (c *Controller) restore() state.AppState {
	data, err := c.states.LoadState(c.ctx)
	if err != nil {
		c.log.Warn("load saved state failed, using defaults", zap.Error(err))
		return state.Default()
	}
	s, err := state.Restore(data)
	if err != nil {
		c.log.Info("saved state unreadable, using defaults", zap.Error(err))
	}
	return s
}

// State returns the current state.
func (c *Controller) State() state.AppState {
	return c.state
}

// Content returns the content store.
func (c *Controller) Content() *content.Store {
	return c.content
}

// Quiz returns the quiz and the live session. ok is false when the quiz
// page is not active.
func (c *Controller) Quiz() (q *quiz.Quiz, s quiz.State, ok bool) {
	return c.quiz, c.session, c.inSession
}

// Subscribe registers l and returns a function that removes it.
func (c *Controller) Subscribe(l Listener) (unsubscribe func()) {
	id := c.nextSub
	c.nextSub++
	c.listeners = append(c.listeners, subscription{id: id, l: l})
	return func() {
		c.listeners = slices.DeleteFunc(c.listeners, func(s subscription) bool { return s.id == id })
	}
}

// NavigateTo switches pages. Entering the quiz page always starts a fresh
// session and leaving it discards the session.
func (c *Controller) NavigateTo(page state.Page, topicID string) {
	next := state.Navigate(c.state, page, topicID)
	if page == state.PageQuiz {
		c.startSession()
	} else {
		c.inSession = false
		c.session = quiz.State{}
	}
	c.apply(ActionNavigate, next)
}

// ToggleBookmark adds or removes id from the bookmarks.
func (c *Controller) ToggleBookmark(id string) {
	c.apply(ActionToggleBookmark, state.ToggleBookmark(c.state, id))
}

// ToggleLocale switches the display language.
func (c *Controller) ToggleLocale() {
	c.apply(ActionToggleLocale, state.ToggleLocale(c.state))
}

// ToggleTheme switches between light and dark.
func (c *Controller) ToggleTheme() {
	c.apply(ActionToggleTheme, state.ToggleTheme(c.state))
}

// SetSearchQuery replaces the knowledge list search text.
func (c *Controller) SetSearchQuery(q string) {
	c.apply(ActionSearch, state.SetSearchQuery(c.state, q))
}

// QuizAnswer answers the current question with option k.
func (c *Controller) QuizAnswer(k int) {
	if !c.inSession {
		return
	}
	c.setSession(c.quiz.Answer(c.session, k))
}

// QuizAdvance moves to the next question and records the attempt when the
// last one is passed.
func (c *Controller) QuizAdvance() {
	if !c.inSession {
		return
	}
	wasFinished := c.session.Finished()
	c.setSession(c.quiz.Advance(c.session))
	if !wasFinished && c.session.Finished() {
		c.recordAttempt()
	}
}

// QuizRestart resets a finished session.
func (c *Controller) QuizRestart() {
	if !c.inSession {
		return
	}
	c.setSession(c.quiz.Restart(c.session))
}

func (c *Controller) startSession() {
	c.session = c.quiz.Start()
	c.inSession = true
}

func (c *Controller) setSession(s quiz.State) {
	if s == c.session {
		return
	}
	c.session = s
	c.notify(Change{Action: ActionQuiz, Prev: c.state, Next: c.state})
}

// apply persists next, makes it current and notifies subscribers.
func (c *Controller) apply(action Action, next state.AppState) {
	c.persist(next)
	prev := c.state
	c.state = next
	c.notify(Change{Action: action, Prev: prev, Next: next})
}

func (c *Controller) persist(s state.AppState) {
	data, err := state.Encode(s)
	if err != nil {
		c.log.Warn("encode state failed", zap.Error(err))
		return
	}
	if err := c.states.SaveState(c.ctx, data); err != nil {
		c.log.Warn("persist state failed", zap.Error(err))
	}
}

func (c *Controller) notify(ch Change) {
	for _, sub := range slices.Clone(c.listeners) {
		sub.l(ch)
	}
}

func (c *Controller) recordAttempt() {
	if c.attempts == nil {
		return
	}
	a := store.Attempt{
		ID:         c.newID(),
		Score:      c.session.Score(),
		Total:      c.quiz.Total(),
		FinishedAt: c.now(),
	}
	if err := c.attempts.Append(c.ctx, a); err != nil {
		c.log.Warn("record quiz attempt failed", zap.String("attempt", a.ID), zap.Error(err))
		return
	}
	c.log.Info("quiz finished",
		zap.String("attempt", a.ID),
		zap.Int("score", a.Score),
		zap.Int("total", a.Total),
	)
}
