package screens

import (
	"testing"

	"github.com/skyguardian/uavacademy/internal/screen/screentest"
	"github.com/skyguardian/uavacademy/internal/screens/bookmarks"
	"github.com/skyguardian/uavacademy/internal/screens/detail"
	"github.com/skyguardian/uavacademy/internal/screens/home"
	"github.com/skyguardian/uavacademy/internal/screens/knowledge"
	"github.com/skyguardian/uavacademy/internal/screens/quiz"
	"github.com/skyguardian/uavacademy/internal/screens/settings"
	"github.com/skyguardian/uavacademy/internal/state"
)

func TestBuild(t *testing.T) {
	env := screentest.Env(t)

	checks := map[state.Page]func(any) bool{
		state.PageHome:      func(s any) bool { _, ok := s.(*home.HomeScreen); return ok },
		state.PageKnowledge: func(s any) bool { _, ok := s.(*knowledge.KnowledgeScreen); return ok },
		state.PageDetail:    func(s any) bool { _, ok := s.(*detail.DetailScreen); return ok },
		state.PageQuiz:      func(s any) bool { _, ok := s.(*quiz.QuizScreen); return ok },
		state.PageBookmarks: func(s any) bool { _, ok := s.(*bookmarks.BookmarksScreen); return ok },
		state.PageSettings:  func(s any) bool { _, ok := s.(*settings.SettingsScreen); return ok },
		state.Page("bogus"): func(s any) bool { _, ok := s.(*home.HomeScreen); return ok },
	}
	for page, check := range checks {
		if s := Build(env, page); !check(s) {
			t.Errorf("Build(%q) = %T", page, s)
		}
	}
}
