// Package views derives everything the UI shows from the content store and
// the current AppState. All functions are pure and recomputed on read.
package views

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/skyguardian/uavacademy/internal/content"
	"github.com/skyguardian/uavacademy/internal/state"
)

// Filter returns the entries whose title or definition, in either locale,
// contains query case-insensitively. An empty query matches everything.
// Store order is kept.
func Filter(entries []content.KnowledgeEntry, query string) []content.KnowledgeEntry {
	if query == "" {
		return entries
	}

	lower := cases.Lower(language.Und)
	q := lower.String(query)

	var out []content.KnowledgeEntry
	for _, e := range entries {
		fields := [...]string{e.Title.ZH, e.Title.EN, e.Definition.ZH, e.Definition.EN}
		for _, f := range fields {
			if strings.Contains(lower.String(f), q) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// FilteredEntries applies the state's search query to the store.
func FilteredEntries(store *content.Store, s state.AppState) []content.KnowledgeEntry {
	return Filter(store.Entries(), s.SearchQuery)
}

// SelectedTopic resolves the selected topic id.
func SelectedTopic(store *content.Store, s state.AppState) (content.KnowledgeEntry, bool) {
	if !s.HasSelection() {
		return content.KnowledgeEntry{}, false
	}
	return store.Entry(s.SelectedTopicID)
}

// RelatedTopics resolves e's related ids, dropping ids with no entry.
func RelatedTopics(store *content.Store, e content.KnowledgeEntry) []content.KnowledgeEntry {
	var out []content.KnowledgeEntry
	for _, id := range e.RelatedTerms {
		if rel, ok := store.Entry(id); ok {
			out = append(out, rel)
		}
	}
	return out
}

// BookmarkedTopics returns the bookmarked entries in store order. Bookmarks
// naming unknown ids are skipped.
func BookmarkedTopics(store *content.Store, s state.AppState) []content.KnowledgeEntry {
	var out []content.KnowledgeEntry
	for _, e := range store.Entries() {
		if s.IsBookmarked(e.ID) {
			out = append(out, e)
		}
	}
	return out
}

// CategorySummary is one home-page category card.
type CategorySummary struct {
	Category content.Category
	Count    int
	Preview  []content.KnowledgeEntry
}

// HomeCategories lists the categories featured on the home page.
var HomeCategories = []content.Category{
	content.CategoryBasics,
	content.CategoryTechnology,
	content.CategoryApplications,
}

// Categories summarizes each category with up to preview entries.
func Categories(store *content.Store, cats []content.Category, preview int) []CategorySummary {
	out := make([]CategorySummary, 0, len(cats))
	for _, c := range cats {
		entries := store.ByCategory(c)
		sum := CategorySummary{Category: c, Count: len(entries)}
		if len(entries) > preview {
			entries = entries[:preview]
		}
		sum.Preview = entries
		out = append(out, sum)
	}
	return out
}
