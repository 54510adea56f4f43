package domain

import "testing"

func TestLevel_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level Level
		valid bool
		learn bool
	}{
		{LevelA1, true, false},
		{LevelA2, true, false},
		{LevelB1, true, true},
		{LevelB2, true, true},
		{LevelC1, true, true},
		{LevelC2, true, true},
		{Level("D1"), false, false},
		{Level(""), false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			t.Parallel()
			if got := tt.level.IsValid(); got != tt.valid {
				t.Errorf("Level(%q).IsValid() = %v, want %v", tt.level, got, tt.valid)
			}
			if got := tt.level.IsLearnerLevel(); got != tt.learn {
				t.Errorf("Level(%q).IsLearnerLevel() = %v, want %v", tt.level, got, tt.learn)
			}
		})
	}
}

func TestTextSource_IsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []TextSource{TextSourceFile, TextSourcePaste, TextSourceURL} {
		if !s.IsValid() {
			t.Errorf("TextSource(%q).IsValid() = false", s)
		}
	}
	if TextSource("ftp").IsValid() {
		t.Error(`TextSource("ftp").IsValid() = true`)
	}
}

func TestToolID_IsValid(t *testing.T) {
	t.Parallel()

	for _, id := range []ToolID{ToolVocabulary, ToolListening, ToolReading, ToolWriting, ToolAchievements} {
		if !id.IsValid() {
			t.Errorf("ToolID(%q).IsValid() = false", id)
		}
	}
	if ToolID("speaking").IsValid() {
		t.Error(`ToolID("speaking").IsValid() = true`)
	}
}

func TestSuggestionKind_Category(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind SuggestionKind
		want SuggestionCategory
	}{
		{KindSpelling, SuggestionGrammar},
		{KindGrammar, SuggestionGrammar},
		{KindPunctuation, SuggestionGrammar},
		{KindClarity, SuggestionStyle},
		{KindConciseness, SuggestionStyle},
		{KindFormality, SuggestionStyle},
		{KindVocabulary, SuggestionStyle},
	}
	for _, tt := range tests {
		if got := tt.kind.Category(); got != tt.want {
			t.Errorf("%q.Category() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
