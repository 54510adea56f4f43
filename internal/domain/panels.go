package domain

// Tool is a dashboard tile.
type Tool struct {
	ID          ToolID
	Title       string
	Description string
	ButtonText  string
}

// Quote is the motivational quote shown above the tool grid.
type Quote struct {
	Text   string
	Author string
}

// GlossaryWord is a word the reading assistant knows how to highlight.
type GlossaryWord struct {
	Word       string
	Definition string
	Details    WordDetails
}

// Highlight marks a glossary word inside analyzed text.
// StartIndex and EndIndex are byte offsets, EndIndex exclusive.
type Highlight struct {
	Word       string
	Definition string
	StartIndex int
	EndIndex   int
}

// Analysis is the result of a reading submission.
type Analysis struct {
	Text       string
	Source     TextSource
	Title      string
	Highlights []Highlight
}

// Suggestion is a canned grammar or style recommendation.
type Suggestion struct {
	ID          string
	Original    string
	Suggestion  string
	Kind        SuggestionKind
	Explanation string
}

// Category returns the list this suggestion belongs to.
func (s Suggestion) Category() SuggestionCategory {
	return s.Kind.Category()
}

// SkillProgress is one bar of the achievements tracker.
type SkillProgress struct {
	Skill   string
	Percent int
	Streak  int
}

// DayActivity is one bar of the weekly progress chart.
type DayActivity struct {
	Day     string
	Percent int
}

// Achievements is the mock progress snapshot.
type Achievements struct {
	Skills []SkillProgress
	Week   []DayActivity
}
