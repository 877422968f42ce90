package i18n

// Key names a localized UI string.
type Key string

const (
	KeyAppName       Key = "appName"
	KeyHome          Key = "home"
	KeyKnowledgeBase Key = "knowledgeBase"
	KeyQuizCenter    Key = "quizCenter"
	KeyBookmarks     Key = "bookmarks"
	KeySettings      Key = "settings"

	KeyExploreUAV   Key = "exploreUAV"
	KeyHeroSubtitle Key = "heroSubtitle"
	KeyGetStarted   Key = "getStarted"
	KeyCategories   Key = "categories"
	KeyTopics       Key = "topics"
	KeyProgress     Key = "progress"
	KeyViewed       Key = "viewed"
	KeyKeepLearning Key = "keepLearning"
	KeyStartQuiz    Key = "startQuiz"

	KeySearchPlaceholder Key = "searchPlaceholder"
	KeyNoResults         Key = "noResults"
	KeyNoBookmarks       Key = "noBookmarks"
	KeyTopicUnavailable  Key = "topicUnavailable"

	KeyDifficulty   Key = "difficulty"
	KeyBeginner     Key = "beginner"
	KeyIntermediate Key = "intermediate"
	KeyAdvanced     Key = "advanced"

	KeyBasics       Key = "basics"
	KeyTechnology   Key = "technology"
	KeyApplications Key = "applications"
	KeySafety       Key = "safety"
	KeyRegulations  Key = "regulations"

	KeyDefinition   Key = "definition"
	KeyKeyPoints    Key = "keyPoints"
	KeyExamples     Key = "examples"
	KeyRelatedTerms Key = "relatedTerms"
	KeyBookmarked   Key = "bookmarked"

	KeyQuestion    Key = "question"
	KeyExplanation Key = "explanation"
	KeyCorrect     Key = "correct"
	KeyIncorrect   Key = "incorrect"
	KeyNext        Key = "next"
	KeyFinish      Key = "finish"
	KeyScore       Key = "score"
	KeyQuizDone    Key = "quizDone"
	KeyRestartQuiz Key = "restartQuiz"
	KeyNoQuestions Key = "noQuestions"

	KeyLanguage      Key = "language"
	KeyOtherLanguage Key = "otherLanguage"
	KeyTheme         Key = "theme"
	KeyLight         Key = "light"
	KeyDark          Key = "dark"
	KeyAbout         Key = "about"
	KeyTagline       Key = "tagline"

	KeyLevel         Key = "level"
	KeyLearner       Key = "learner"
	KeyTotalProgress Key = "totalProgress"

	KeyHintNavigate Key = "hintNavigate"
	KeyHintSelect   Key = "hintSelect"
	KeyHintBack     Key = "hintBack"
	KeyHintQuit     Key = "hintQuit"
	KeyHintBookmark Key = "hintBookmark"
	KeyHintSearch   Key = "hintSearch"
	KeyHintScroll   Key = "hintScroll"
	KeyHintRelated  Key = "hintRelated"
	KeyHintAnswer   Key = "hintAnswer"
	KeyHintPages    Key = "hintPages"

	KeyStatsTopicsLearned Key = "statsTopicsLearned"
	KeyStatsBookmarks     Key = "statsBookmarks"
	KeyStatsAttempts      Key = "statsAttempts"
	KeyStatsBestScore     Key = "statsBestScore"
)
