package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupFallsBackToKey(t *testing.T) {
	tbl := NewTable(map[Locale]map[Key]string{
		LocaleZH: {KeyHome: "首页"},
		LocaleEN: {KeyHome: "Home"},
	})

	assert.Equal(t, "首页", tbl.Lookup(KeyHome, LocaleZH))
	assert.Equal(t, "Home", tbl.Lookup(KeyHome, LocaleEN))
	assert.Equal(t, "settings", tbl.Lookup(KeySettings, LocaleEN))
	assert.Equal(t, "whatever", tbl.Lookup(Key("whatever"), LocaleZH))
	assert.Equal(t, "home", tbl.Lookup(KeyHome, Locale("fr")))
}

func TestNilTableLookup(t *testing.T) {
	var tbl *Table
	assert.Equal(t, "home", tbl.Lookup(KeyHome, LocaleZH))
	assert.False(t, tbl.Has(KeyHome, LocaleZH))
}

func TestNewTableCopiesInput(t *testing.T) {
	src := map[Locale]map[Key]string{LocaleEN: {KeyHome: "Home"}}
	tbl := NewTable(src)
	src[LocaleEN][KeyHome] = "Changed"

	assert.Equal(t, "Home", tbl.Lookup(KeyHome, LocaleEN))
}

func TestEmbeddedCatalogsAreComplete(t *testing.T) {
	tbl, err := LoadEmbedded()
	require.NoError(t, err)

	keys := []Key{
		KeyAppName, KeyHome, KeyKnowledgeBase, KeyQuizCenter, KeyBookmarks, KeySettings,
		KeyExploreUAV, KeyHeroSubtitle, KeyGetStarted, KeyCategories, KeyTopics,
		KeyProgress, KeyViewed, KeyKeepLearning, KeyStartQuiz,
		KeySearchPlaceholder, KeyNoResults, KeyNoBookmarks, KeyTopicUnavailable,
		KeyDifficulty, KeyBeginner, KeyIntermediate, KeyAdvanced,
		KeyBasics, KeyTechnology, KeyApplications, KeySafety, KeyRegulations,
		KeyDefinition, KeyKeyPoints, KeyExamples, KeyRelatedTerms, KeyBookmarked,
		KeyQuestion, KeyExplanation, KeyCorrect, KeyIncorrect, KeyNext, KeyFinish,
		KeyScore, KeyQuizDone, KeyRestartQuiz, KeyNoQuestions,
		KeyLanguage, KeyOtherLanguage, KeyTheme, KeyLight, KeyDark, KeyAbout, KeyTagline,
		KeyLevel, KeyLearner, KeyTotalProgress,
		KeyHintNavigate, KeyHintSelect, KeyHintBack, KeyHintQuit, KeyHintBookmark,
		KeyHintSearch, KeyHintScroll, KeyHintRelated, KeyHintAnswer, KeyHintPages,
		KeyStatsTopicsLearned, KeyStatsBookmarks, KeyStatsAttempts, KeyStatsBestScore,
	}
	for _, loc := range Locales() {
		for _, k := range keys {
			assert.Truef(t, tbl.Has(k, loc), "locale %s missing key %s", loc, k)
		}
	}
	assert.Equal(t, "首页", tbl.Lookup(KeyHome, LocaleZH))
	assert.Equal(t, "Home", tbl.Lookup(KeyHome, LocaleEN))
}

func TestLoadFSRejectsBadCatalogs(t *testing.T) {
	tests := []struct {
		name  string
		files fstest.MapFS
	}{
		{
			name:  "empty dir",
			files: fstest.MapFS{"c/readme.txt": {Data: []byte("x")}},
		},
		{
			name:  "unknown locale",
			files: fstest.MapFS{"c/fr.yaml": {Data: []byte("locale: fr\nmessages: {}\n")}},
		},
		{
			name: "duplicate locale",
			files: fstest.MapFS{
				"c/a.yaml": {Data: []byte("locale: en\nmessages: {}\n")},
				"c/b.yaml": {Data: []byte("locale: en-US\nmessages: {}\n")},
			},
		},
		{
			name:  "bad yaml",
			files: fstest.MapFS{"c/en.yaml": {Data: []byte("locale: [en\n")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFS(tt.files, "c")
			assert.Error(t, err)
		})
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in   string
		want Locale
		ok   bool
	}{
		{"zh", LocaleZH, true},
		{"EN", LocaleEN, true},
		{"zh-CN", LocaleZH, true},
		{"zh_Hant_TW", LocaleZH, true},
		{"en-US", LocaleEN, true},
		{"fr", "", false},
		{"", "", false},
		{"!!", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseLocale(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestLocaleOther(t *testing.T) {
	assert.Equal(t, LocaleEN, LocaleZH.Other())
	assert.Equal(t, LocaleZH, LocaleEN.Other())
	assert.Equal(t, LocaleZH, LocaleZH.Other().Other())
}

func TestTextIn(t *testing.T) {
	txt := Text{ZH: "无人机", EN: "Drone"}
	assert.Equal(t, "无人机", txt.In(LocaleZH))
	assert.Equal(t, "Drone", txt.In(LocaleEN))

	ls := List{ZH: []string{"一"}, EN: []string{"one"}}
	assert.Equal(t, []string{"one"}, ls.In(LocaleEN))
}
