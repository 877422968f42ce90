package state

import "slices"

// Navigate switches to page and replaces the selection with topicID ("" for
// none). Opening a detail page records the topic as viewed the first time.
func Navigate(s AppState, page Page, topicID string) AppState {
	next := s.clone()
	next.CurrentPage = page
	next.SelectedTopicID = topicID
	if page == PageDetail && topicID != "" && !next.HasViewed(topicID) {
		next.ViewedTopics = append(next.ViewedTopics, topicID)
	}
	return next
}

// ToggleBookmark removes id from the bookmarks if present, else appends it.
func ToggleBookmark(s AppState, id string) AppState {
	next := s.clone()
	if i := slices.Index(next.Bookmarks, id); i >= 0 {
		next.Bookmarks = slices.Delete(next.Bookmarks, i, i+1)
		return next
	}
	next.Bookmarks = append(next.Bookmarks, id)
	return next
}

// ToggleLocale flips between the two locales.
func ToggleLocale(s AppState) AppState {
	next := s.clone()
	next.Locale = s.Locale.Other()
	return next
}

// ToggleTheme flips between light and dark.
func ToggleTheme(s AppState) AppState {
	next := s.clone()
	if s.Theme == ThemeDark {
		next.Theme = ThemeLight
	} else {
		next.Theme = ThemeDark
	}
	return next
}

// SetSearchQuery stores q verbatim.
func SetSearchQuery(s AppState, q string) AppState {
	next := s.clone()
	next.SearchQuery = q
	return next
}
