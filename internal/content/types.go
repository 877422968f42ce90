// Package content holds the immutable knowledge base and quiz question bank.
package content

import "github.com/skyguardian/uavacademy/internal/i18n"

// Category groups knowledge entries on the home page and in lists.
type Category string

const (
	CategoryBasics       Category = "Basics"
	CategoryTechnology   Category = "Technology"
	CategoryApplications Category = "Applications"
	CategorySafety       Category = "Safety"
	CategoryRegulations  Category = "Regulations"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryBasics,
		CategoryTechnology,
		CategoryApplications,
		CategorySafety,
		CategoryRegulations,
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryBasics, CategoryTechnology, CategoryApplications, CategorySafety, CategoryRegulations:
		return true
	}
	return false
}

// MessageKey returns the localization key for the category label.
func (c Category) MessageKey() i18n.Key {
	switch c {
	case CategoryBasics:
		return i18n.KeyBasics
	case CategoryTechnology:
		return i18n.KeyTechnology
	case CategoryApplications:
		return i18n.KeyApplications
	case CategorySafety:
		return i18n.KeySafety
	case CategoryRegulations:
		return i18n.KeyRegulations
	}
	return i18n.Key(c)
}

// Difficulty is the learning level of an entry.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// MessageKey returns the localization key for the difficulty label.
func (d Difficulty) MessageKey() i18n.Key {
	switch d {
	case DifficultyBeginner:
		return i18n.KeyBeginner
	case DifficultyIntermediate:
		return i18n.KeyIntermediate
	case DifficultyAdvanced:
		return i18n.KeyAdvanced
	}
	return i18n.Key(d)
}

// KnowledgeEntry is one topic of the knowledge base.
type KnowledgeEntry struct {
	ID           string     `yaml:"id"`
	Category     Category   `yaml:"category"`
	Difficulty   Difficulty `yaml:"difficulty"`
	Icon         string     `yaml:"icon,omitempty"`
	Title        i18n.Text  `yaml:"title"`
	Definition   i18n.Text  `yaml:"definition"`
	KeyPoints    i18n.List  `yaml:"keyPoints"`
	Examples     i18n.List  `yaml:"examples"`
	RelatedTerms []string   `yaml:"relatedTerms"`
}

// QuizQuestion is a single multiple-choice question. TopicID is a soft
// reference and may name an entry that does not exist.
type QuizQuestion struct {
	ID           string    `yaml:"id"`
	TopicID      string    `yaml:"topicId"`
	CorrectIndex int       `yaml:"correctIndex"`
	Question     i18n.Text `yaml:"question"`
	Options      i18n.List `yaml:"options"`
	Explanation  i18n.Text `yaml:"explanation"`
}

// OptionCount returns the number of answer options.
func (q QuizQuestion) OptionCount() int {
	return len(q.Options.ZH)
}

// IsCorrect reports whether option k is the correct answer.
func (q QuizQuestion) IsCorrect(k int) bool {
	return k == q.CorrectIndex
}

// Pack is the serialized form of a content bundle.
type Pack struct {
	Version   string           `yaml:"version"`
	Entries   []KnowledgeEntry `yaml:"entries"`
	Questions []QuizQuestion   `yaml:"questions"`
}
