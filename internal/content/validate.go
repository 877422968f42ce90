package content

import (
	"errors"
	"fmt"
)

// ErrInvalidContent is returned when a content pack fails validation.
var ErrInvalidContent = errors.New("invalid content")

// Validate checks the structural rules every content pack must satisfy and
// returns all violations joined into one error wrapping ErrInvalidContent.
// Related terms and question topics may point at missing entries.
func Validate(entries []KnowledgeEntry, questions []QuizQuestion) error {
	var errs []error

	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			errs = append(errs, fmt.Errorf("entry %d: empty id", i))
			continue
		}
		if seen[e.ID] {
			errs = append(errs, fmt.Errorf("entry %q: duplicate id", e.ID))
		}
		seen[e.ID] = true

		if !e.Category.Valid() {
			errs = append(errs, fmt.Errorf("entry %q: unknown category %q", e.ID, e.Category))
		}
		if !e.Difficulty.Valid() {
			errs = append(errs, fmt.Errorf("entry %q: unknown difficulty %q", e.ID, e.Difficulty))
		}
		if e.Title.ZH == "" || e.Title.EN == "" {
			errs = append(errs, fmt.Errorf("entry %q: title missing a locale", e.ID))
		}
	}

	seenQ := make(map[string]bool, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			errs = append(errs, fmt.Errorf("question %d: empty id", i))
			continue
		}
		if seenQ[q.ID] {
			errs = append(errs, fmt.Errorf("question %q: duplicate id", q.ID))
		}
		seenQ[q.ID] = true

		if len(q.Options.ZH) != len(q.Options.EN) {
			errs = append(errs, fmt.Errorf("question %q: %d zh options but %d en options",
				q.ID, len(q.Options.ZH), len(q.Options.EN)))
		}
		if len(q.Options.ZH) == 0 {
			errs = append(errs, fmt.Errorf("question %q: no options", q.ID))
		} else if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options.ZH) {
			errs = append(errs, fmt.Errorf("question %q: correctIndex %d out of range [0, %d)",
				q.ID, q.CorrectIndex, len(q.Options.ZH)))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidContent, errors.Join(errs...))
	}
	return nil
}
