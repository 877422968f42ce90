package views

import (
	"github.com/skyguardian/uavacademy/internal/content"
	"github.com/skyguardian/uavacademy/internal/state"
)

// Progress summarizes learning progress.
type Progress struct {
	Total         int
	Learned       int
	BookmarkCount int
	Percentage    int
}

// ProgressOf computes progress for s against the store.
func ProgressOf(store *content.Store, s state.AppState) Progress {
	total := store.Len()
	learned := len(s.ViewedTopics)
	return Progress{
		Total:         total,
		Learned:       learned,
		BookmarkCount: len(s.Bookmarks),
		Percentage:    Percentage(learned, total),
	}
}

// Percentage returns learned/total as a whole percent rounded half up,
// clamped to [0, 100]. A zero total yields 0.
func Percentage(learned, total int) int {
	if total <= 0 || learned <= 0 {
		return 0
	}
	p := (200*learned + total) / (2 * total)
	return min(p, 100)
}

// Fraction returns the percentage as a value in [0, 1] for progress bars.
func (p Progress) Fraction() float64 {
	return float64(p.Percentage) / 100
}
