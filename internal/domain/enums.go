package domain

// Level is a CEFR proficiency level.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

func (l Level) String() string { return string(l) }

func (l Level) IsValid() bool {
	switch l {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return true
	}
	return false
}

// IsLearnerLevel reports whether l is one of the levels a learner can pick
// in the listening and writing panels (B1 through C2).
func (l Level) IsLearnerLevel() bool {
	switch l {
	case LevelB1, LevelB2, LevelC1, LevelC2:
		return true
	}
	return false
}

// TextSource tells where submitted reading text came from.
type TextSource string

const (
	TextSourceFile  TextSource = "file"
	TextSourcePaste TextSource = "paste"
	TextSourceURL   TextSource = "url"
)

func (s TextSource) String() string { return string(s) }

func (s TextSource) IsValid() bool {
	switch s {
	case TextSourceFile, TextSourcePaste, TextSourceURL:
		return true
	}
	return false
}

// ToolID identifies a dashboard tile.
type ToolID string

const (
	ToolVocabulary   ToolID = "vocabulary"
	ToolListening    ToolID = "listening"
	ToolReading      ToolID = "reading"
	ToolWriting      ToolID = "writing"
	ToolAchievements ToolID = "achievements"
)

func (t ToolID) String() string { return string(t) }

func (t ToolID) IsValid() bool {
	switch t {
	case ToolVocabulary, ToolListening, ToolReading, ToolWriting, ToolAchievements:
		return true
	}
	return false
}

// SuggestionCategory separates grammar suggestions from style suggestions.
type SuggestionCategory string

const (
	SuggestionGrammar SuggestionCategory = "grammar"
	SuggestionStyle   SuggestionCategory = "style"
)

// SuggestionKind is the badge shown on a suggestion card.
type SuggestionKind string

const (
	KindSpelling    SuggestionKind = "spelling"
	KindGrammar     SuggestionKind = "grammar"
	KindPunctuation SuggestionKind = "punctuation"
	KindClarity     SuggestionKind = "clarity"
	KindConciseness SuggestionKind = "conciseness"
	KindFormality   SuggestionKind = "formality"
	KindVocabulary  SuggestionKind = "vocabulary"
)

// Category returns the list a kind belongs to.
func (k SuggestionKind) Category() SuggestionCategory {
	switch k {
	case KindSpelling, KindGrammar, KindPunctuation:
		return SuggestionGrammar
	}
	return SuggestionStyle
}

// WritingTab is the active tab of the writing panel.
type WritingTab string

const (
	TabWrite       WritingTab = "write"
	TabSuggestions WritingTab = "suggestions"
	TabTopics      WritingTab = "topics"
)

func (t WritingTab) IsValid() bool {
	switch t {
	case TabWrite, TabSuggestions, TabTopics:
		return true
	}
	return false
}

// SortOrder is the direction used when listing daily words by level.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)
