// Package state defines the persisted application state and the pure
// reducer functions that produce each next state.
package state

import (
	"slices"

	"github.com/skyguardian/uavacademy/internal/i18n"
)

// Page is a top-level view of the app.
type Page string

const (
	PageHome      Page = "home"
	PageKnowledge Page = "knowledge"
	PageDetail    Page = "detail"
	PageQuiz      Page = "quiz"
	PageBookmarks Page = "bookmarks"
	PageSettings  Page = "settings"
)

// Pages returns every page in sidebar order. Detail is reached from a list,
// never directly.
func Pages() []Page {
	return []Page{PageHome, PageKnowledge, PageQuiz, PageBookmarks, PageSettings}
}

// Valid reports whether p is a known page.
func (p Page) Valid() bool {
	switch p {
	case PageHome, PageKnowledge, PageDetail, PageQuiz, PageBookmarks, PageSettings:
		return true
	}
	return false
}

// Theme is the color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// AppState is the whole persisted state. Values are never mutated in place:
// every reducer returns a fresh value with its own slices.
type AppState struct {
	Locale          i18n.Locale
	Theme           Theme
	Bookmarks       []string
	ViewedTopics    []string
	CurrentPage     Page
	SelectedTopicID string
	SearchQuery     string
}

// Default returns the state used on first launch.
func Default() AppState {
	return AppState{
		Locale:       i18n.LocaleZH,
		Theme:        ThemeLight,
		Bookmarks:    []string{},
		ViewedTopics: []string{},
		CurrentPage:  PageHome,
	}
}

// HasSelection reports whether a topic is selected.
func (s AppState) HasSelection() bool {
	return s.SelectedTopicID != ""
}

// IsBookmarked reports whether id is bookmarked.
func (s AppState) IsBookmarked(id string) bool {
	return slices.Contains(s.Bookmarks, id)
}

// HasViewed reports whether the detail page of id was ever opened.
func (s AppState) HasViewed(id string) bool {
	return slices.Contains(s.ViewedTopics, id)
}

// Equal reports whether two states hold the same values.
func (s AppState) Equal(o AppState) bool {
	return s.Locale == o.Locale &&
		s.Theme == o.Theme &&
		slices.Equal(s.Bookmarks, o.Bookmarks) &&
		slices.Equal(s.ViewedTopics, o.ViewedTopics) &&
		s.CurrentPage == o.CurrentPage &&
		s.SelectedTopicID == o.SelectedTopicID &&
		s.SearchQuery == o.SearchQuery
}

// clone returns a copy that shares no slices with s.
func (s AppState) clone() AppState {
	s.Bookmarks = cloneSet(s.Bookmarks)
	s.ViewedTopics = cloneSet(s.ViewedTopics)
	return s
}

func cloneSet(ids []string) []string {
	out := make([]string, len(ids), len(ids)+1)
	copy(out, ids)
	return out
}
