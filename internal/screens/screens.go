// Package screens maps pages to their screen implementations.
package screens

import (
	"github.com/skyguardian/uavacademy/internal/screen"
	"github.com/skyguardian/uavacademy/internal/screens/bookmarks"
	"github.com/skyguardian/uavacademy/internal/screens/detail"
	"github.com/skyguardian/uavacademy/internal/screens/home"
	"github.com/skyguardian/uavacademy/internal/screens/knowledge"
	"github.com/skyguardian/uavacademy/internal/screens/quiz"
	"github.com/skyguardian/uavacademy/internal/screens/settings"
	"github.com/skyguardian/uavacademy/internal/state"
)

// Build returns a fresh screen for page. Unknown pages fall back to home.
func Build(env screen.Env, page state.Page) screen.Screen {
	switch page {
	case state.PageKnowledge:
		return knowledge.New(env)
	case state.PageDetail:
		return detail.New(env)
	case state.PageQuiz:
		return quiz.New(env)
	case state.PageBookmarks:
		return bookmarks.New(env)
	case state.PageSettings:
		return settings.New(env)
	default:
		return home.New(env)
	}
}
