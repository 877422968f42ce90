package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyguardian/uavacademy/internal/i18n"
)

func TestLoadEmbedded(t *testing.T) {
	s, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, "v1.0.0", s.Version())
	assert.Equal(t, 5, s.Len())
	require.Len(t, s.Questions(), 3)

	ids := make([]string, 0, s.Len())
	for _, e := range s.Entries() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{
		"uav-definition",
		"flight-principles",
		"classification-weight",
		"agriculture-application",
		"remote-sensing-basics",
	}, ids)

	e, ok := s.Entry("flight-principles")
	require.True(t, ok)
	assert.Equal(t, CategoryTechnology, e.Category)
	assert.Equal(t, DifficultyIntermediate, e.Difficulty)
	assert.Equal(t, "Flight Principles & Lift", e.Title.In(i18n.LocaleEN))
	assert.Equal(t, []string{"uav-definition", "propulsion-systems"}, e.RelatedTerms)
	assert.Len(t, e.KeyPoints.ZH, 4)

	q := s.Questions()[0]
	assert.Equal(t, "q1", q.ID)
	assert.Equal(t, 2, q.CorrectIndex)
	assert.Equal(t, 4, q.OptionCount())
	assert.True(t, q.IsCorrect(2))
}

func TestEntryMissing(t *testing.T) {
	s, err := LoadEmbedded()
	require.NoError(t, err)

	_, ok := s.Entry("propulsion-systems")
	assert.False(t, ok)
}

func TestStoreReturnsCopies(t *testing.T) {
	s, err := LoadEmbedded()
	require.NoError(t, err)

	entries := s.Entries()
	entries[0].ID = "mutated"
	qs := s.Questions()
	qs[0].CorrectIndex = 0

	assert.Equal(t, "uav-definition", s.Entries()[0].ID)
	assert.Equal(t, 2, s.Questions()[0].CorrectIndex)
}

func TestByCategory(t *testing.T) {
	s, err := LoadEmbedded()
	require.NoError(t, err)

	basics := s.ByCategory(CategoryBasics)
	require.Len(t, basics, 2)
	assert.Equal(t, "uav-definition", basics[0].ID)
	assert.Equal(t, "classification-weight", basics[1].ID)
	assert.Empty(t, s.ByCategory(CategorySafety))
}

const minimalPack = `
version: %s
entries:
  - id: a
    category: Basics
    difficulty: Beginner
    title: {zh: 甲, en: A}
    definition: {zh: 甲, en: A}
    keyPoints: {zh: [], en: []}
    examples: {zh: [], en: []}
questions:
  - id: q
    topicId: a
    correctIndex: %s
    question: {zh: 问, en: Q}
    options: {zh: [一, 二], en: [one, two]}
    explanation: {zh: 解, en: E}
`

func pack(version, correct string) []byte {
	return []byte(fmt.Sprintf(minimalPack, version, correct))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "valid", data: pack("v1.2.0", "1")},
		{name: "major two", data: pack("v2.0.0", "1"), wantErr: ErrUnsupportedVersion},
		{name: "not semver", data: pack("latest", "1"), wantErr: ErrUnsupportedVersion},
		{name: "index out of range", data: pack("v1.0.0", "2"), wantErr: ErrInvalidContent},
		{name: "negative index", data: pack("v1.0.0", "-1"), wantErr: ErrInvalidContent},
		{name: "not yaml", data: []byte("version: [v1"), wantErr: ErrInvalidContent},
		{name: "missing entries", data: []byte("version: v1.0.0\nquestions: []\n"), wantErr: ErrInvalidContent},
		{
			name:    "bad category",
			data:    []byte(strings.Replace(string(pack("v1.0.0", "0")), "Basics", "Weather", 1)),
			wantErr: ErrInvalidContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.data)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, s.Len())
		})
	}
}

func TestValidate(t *testing.T) {
	entry := KnowledgeEntry{
		ID:         "a",
		Category:   CategoryBasics,
		Difficulty: DifficultyBeginner,
		Title:      i18n.Text{ZH: "甲", EN: "A"},
	}
	question := QuizQuestion{
		ID:           "q",
		CorrectIndex: 0,
		Options:      i18n.List{ZH: []string{"一", "二"}, EN: []string{"one", "two"}},
	}

	t.Run("dangling references are allowed", func(t *testing.T) {
		e := entry
		e.RelatedTerms = []string{"missing"}
		q := question
		q.TopicID = "missing"
		assert.NoError(t, Validate([]KnowledgeEntry{e}, []QuizQuestion{q}))
	})

	t.Run("duplicate entry ids", func(t *testing.T) {
		err := Validate([]KnowledgeEntry{entry, entry}, nil)
		require.ErrorIs(t, err, ErrInvalidContent)
		assert.Contains(t, err.Error(), "duplicate id")
	})

	t.Run("mismatched option lengths", func(t *testing.T) {
		q := question
		q.Options.EN = []string{"one"}
		err := Validate(nil, []QuizQuestion{q})
		require.ErrorIs(t, err, ErrInvalidContent)
		assert.Contains(t, err.Error(), "2 zh options but 1 en options")
	})

	t.Run("all violations reported", func(t *testing.T) {
		bad := entry
		bad.Category = "Weather"
		bad.Difficulty = "Expert"
		err := Validate([]KnowledgeEntry{bad}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown category")
		assert.Contains(t, err.Error(), "unknown difficulty")
	})
}

func TestNewStoreRejectsInvalid(t *testing.T) {
	_, err := NewStore([]KnowledgeEntry{{ID: ""}}, nil)
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, PackFile), pack("v1.1.0", "0"), 0o644))

	s, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "v1.1.0", s.Version())

	_, err = Load(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestLoadEmptyDirUsesEmbedded(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, s.Len())
}
