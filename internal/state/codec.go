package state

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/skyguardian/uavacademy/internal/i18n"
)

// ErrMalformed is returned by Decode for data that is not a valid state.
var ErrMalformed = errors.New("malformed app state")

// wireState is the JSON layout. A missing selection is written as null.
type wireState struct {
	Locale          *i18n.Locale `json:"locale"`
	Theme           *Theme       `json:"theme"`
	Bookmarks       []string     `json:"bookmarks"`
	ViewedTopics    []string     `json:"viewedTopics"`
	CurrentPage     *Page        `json:"currentPage"`
	SelectedTopicID *string      `json:"selectedTopicId"`
	SearchQuery     *string      `json:"searchQuery"`
}

// Encode serializes s.
func Encode(s AppState) ([]byte, error) {
	w := wireState{
		Locale:       &s.Locale,
		Theme:        &s.Theme,
		Bookmarks:    nonNil(s.Bookmarks),
		ViewedTopics: nonNil(s.ViewedTopics),
		CurrentPage:  &s.CurrentPage,
		SearchQuery:  &s.SearchQuery,
	}
	if s.SelectedTopicID != "" {
		w.SelectedTopicID = &s.SelectedTopicID
	}
	data, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("encode app state: %w", err)
	}
	return data, nil
}

// Decode parses data produced by Encode. Every field is required and must
// hold a known value; anything else yields ErrMalformed.
func Decode(data []byte) (AppState, error) {
	var w wireState
	if err := json.Unmarshal(data, &w); err != nil {
		return AppState{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	switch {
	case w.Locale == nil || !w.Locale.Valid():
		return AppState{}, fmt.Errorf("%w: bad locale", ErrMalformed)
	case w.Theme == nil || !w.Theme.Valid():
		return AppState{}, fmt.Errorf("%w: bad theme", ErrMalformed)
	case w.CurrentPage == nil || !w.CurrentPage.Valid():
		return AppState{}, fmt.Errorf("%w: bad currentPage", ErrMalformed)
	case w.Bookmarks == nil || hasDuplicates(w.Bookmarks):
		return AppState{}, fmt.Errorf("%w: bad bookmarks", ErrMalformed)
	case w.ViewedTopics == nil || hasDuplicates(w.ViewedTopics):
		return AppState{}, fmt.Errorf("%w: bad viewedTopics", ErrMalformed)
	case w.SearchQuery == nil:
		return AppState{}, fmt.Errorf("%w: missing searchQuery", ErrMalformed)
	}

	s := AppState{
		Locale:       *w.Locale,
		Theme:        *w.Theme,
		Bookmarks:    w.Bookmarks,
		ViewedTopics: w.ViewedTopics,
		CurrentPage:  *w.CurrentPage,
		SearchQuery:  *w.SearchQuery,
	}
	if w.SelectedTopicID != nil {
		s.SelectedTopicID = *w.SelectedTopicID
	}
	return s, nil
}

// Restore decodes a saved record, falling back to Default when data is
// absent or malformed. The error explains a fallback and is nil otherwise.
func Restore(data []byte) (AppState, error) {
	if len(data) == 0 {
		return Default(), nil
	}
	s, err := Decode(data)
	if err != nil {
		return Default(), err
	}
	return s, nil
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

func hasDuplicates(ids []string) bool {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
