package content

import "slices"

// Store is the read-only content repository. Entries and questions keep the
// order they were loaded in.
type Store struct {
	version   string
	entries   []KnowledgeEntry
	questions []QuizQuestion
	byID      map[string]int
}

// NewStore validates entries and questions and indexes them. The slices are
// copied.
func NewStore(entries []KnowledgeEntry, questions []QuizQuestion) (*Store, error) {
	if err := Validate(entries, questions); err != nil {
		return nil, err
	}
	return newStore("", entries, questions), nil
}

func newStore(version string, entries []KnowledgeEntry, questions []QuizQuestion) *Store {
	s := &Store{
		version:   version,
		entries:   slices.Clone(entries),
		questions: slices.Clone(questions),
		byID:      make(map[string]int, len(entries)),
	}
	for i, e := range s.entries {
		s.byID[e.ID] = i
	}
	return s
}

// Version returns the pack version, or "" when built in code.
func (s *Store) Version() string {
	return s.version
}

// Entries returns all entries in load order.
func (s *Store) Entries() []KnowledgeEntry {
	return slices.Clone(s.entries)
}

// Questions returns all quiz questions in load order.
func (s *Store) Questions() []QuizQuestion {
	return slices.Clone(s.questions)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Entry looks up an entry by ID.
func (s *Store) Entry(id string) (KnowledgeEntry, bool) {
	i, ok := s.byID[id]
	if !ok {
		return KnowledgeEntry{}, false
	}
	return s.entries[i], true
}

// ByCategory returns the entries in category c, in load order.
func (s *Store) ByCategory(c Category) []KnowledgeEntry {
	var out []KnowledgeEntry
	for _, e := range s.entries {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}
