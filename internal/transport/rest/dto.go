package rest

import (
	"github.com/heartmarshall/myenglish-suite/internal/domain"
	"github.com/heartmarshall/myenglish-suite/internal/service/listening"
	"github.com/heartmarshall/myenglish-suite/internal/service/reading"
	"github.com/heartmarshall/myenglish-suite/internal/service/vocabulary"
	"github.com/heartmarshall/myenglish-suite/internal/service/writing"
)

// ---------------------------------------------------------------------------
// Shared
// ---------------------------------------------------------------------------

type entryResponse struct {
	ID         string   `json:"id"`
	Word       string   `json:"word"`
	Definition string   `json:"definition"`
	Timestamp  string   `json:"timestamp"`
	Examples   []string `json:"examples"`
	Saved      bool     `json:"saved"`
}

func toEntries(entries []domain.VocabularyEntry) []entryResponse {
	out := make([]entryResponse, len(entries))
	for i, e := range entries {
		out[i] = entryResponse{
			ID:         e.ID,
			Word:       e.Word,
			Definition: e.Definition,
			Timestamp:  e.Timestamp,
			Examples:   nonNil(e.Examples),
			Saved:      e.Saved,
		}
	}
	return out
}

type wordDetailsResponse struct {
	Word         string   `json:"word"`
	Phonetic     string   `json:"phonetic"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Definition   string   `json:"definition"`
	Level        string   `json:"level"`
	Synonyms     []string `json:"synonyms"`
	Examples     []string `json:"examples"`
}

func toWordDetails(d domain.WordDetails) *wordDetailsResponse {
	if d.IsEmpty() {
		return nil
	}
	return &wordDetailsResponse{
		Word:         d.Word,
		Phonetic:     d.Phonetic,
		PartOfSpeech: d.PartOfSpeech,
		Definition:   d.Definition,
		Level:        string(d.Level),
		Synonyms:     nonNil(d.Synonyms),
		Examples:     nonNil(d.Examples),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// ---------------------------------------------------------------------------
// Dashboard
// ---------------------------------------------------------------------------

type toolResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ButtonText  string `json:"buttonText"`
}

type quoteResponse struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

type skillResponse struct {
	Skill   string `json:"skill"`
	Percent int    `json:"percent"`
	Streak  int    `json:"streak"`
}

type dayResponse struct {
	Day     string `json:"day"`
	Percent int    `json:"percent"`
}

type achievementsResponse struct {
	Skills []skillResponse `json:"skills"`
	Week   []dayResponse   `json:"week"`
}

func toAchievements(a domain.Achievements) achievementsResponse {
	resp := achievementsResponse{
		Skills: make([]skillResponse, len(a.Skills)),
		Week:   make([]dayResponse, len(a.Week)),
	}
	for i, s := range a.Skills {
		resp.Skills[i] = skillResponse{Skill: s.Skill, Percent: s.Percent, Streak: s.Streak}
	}
	for i, d := range a.Week {
		resp.Week[i] = dayResponse{Day: d.Day, Percent: d.Percent}
	}
	return resp
}

// ---------------------------------------------------------------------------
// Listening
// ---------------------------------------------------------------------------

type listeningResponse struct {
	Status         string          `json:"status"`
	Generation     uint64          `json:"generation"`
	URL            string          `json:"url"`
	VideoID        string          `json:"videoId"`
	Level          string          `json:"level"`
	SelectedWordID string          `json:"selectedWordId,omitempty"`
	CurrentTime    float64         `json:"currentTime"`
	Words          []entryResponse `json:"words"`
}

func toListening(s listening.State) listeningResponse {
	return listeningResponse{
		Status:         string(s.Status),
		Generation:     s.Generation,
		URL:            s.URL,
		VideoID:        s.VideoID,
		Level:          string(s.Level),
		SelectedWordID: s.SelectedWordID,
		CurrentTime:    s.CurrentTime,
		Words:          toEntries(s.Words),
	}
}

type recentVideoResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	WatchedAgo string `json:"watchedAgo"`
}

// ---------------------------------------------------------------------------
// Reading
// ---------------------------------------------------------------------------

type highlightResponse struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
	StartIndex int    `json:"startIndex"`
	EndIndex   int    `json:"endIndex"`
}

type readingResponse struct {
	Status     string               `json:"status"`
	Generation uint64               `json:"generation"`
	Text       string               `json:"text"`
	Source     string               `json:"source,omitempty"`
	Title      string               `json:"title,omitempty"`
	Highlights []highlightResponse  `json:"highlights"`
	Selected   *wordDetailsResponse `json:"selected,omitempty"`
	Error      string               `json:"error,omitempty"`
}

func toReading(s reading.State) readingResponse {
	hl := make([]highlightResponse, len(s.Analysis.Highlights))
	for i, h := range s.Analysis.Highlights {
		hl[i] = highlightResponse{
			Word:       h.Word,
			Definition: h.Definition,
			StartIndex: h.StartIndex,
			EndIndex:   h.EndIndex,
		}
	}
	return readingResponse{
		Status:     string(s.Status),
		Generation: s.Generation,
		Text:       s.Analysis.Text,
		Source:     string(s.Analysis.Source),
		Title:      s.Analysis.Title,
		Highlights: hl,
		Selected:   toWordDetails(s.Selected),
		Error:      errString(s.Err),
	}
}

// ---------------------------------------------------------------------------
// Writing
// ---------------------------------------------------------------------------

type suggestionResponse struct {
	ID          string `json:"id"`
	Original    string `json:"original"`
	Suggestion  string `json:"suggestion"`
	Type        string `json:"type"`
	Explanation string `json:"explanation"`
}

func toSuggestion(s domain.Suggestion) suggestionResponse {
	return suggestionResponse{
		ID:          s.ID,
		Original:    s.Original,
		Suggestion:  s.Suggestion,
		Type:        string(s.Kind),
		Explanation: s.Explanation,
	}
}

func toSuggestions(list []domain.Suggestion) []suggestionResponse {
	out := make([]suggestionResponse, len(list))
	for i, s := range list {
		out[i] = toSuggestion(s)
	}
	return out
}

type writingResponse struct {
	Status     string               `json:"status"`
	Generation uint64               `json:"generation"`
	Content    string               `json:"content"`
	Level      string               `json:"level"`
	Tab        string               `json:"tab"`
	Analyzed   bool                 `json:"analyzed"`
	Grammar    []suggestionResponse `json:"grammarSuggestions"`
	Style      []suggestionResponse `json:"styleSuggestions"`
}

func toWriting(s writing.State) writingResponse {
	return writingResponse{
		Status:     string(s.Status),
		Generation: s.Generation,
		Content:    s.Content,
		Level:      string(s.Level),
		Tab:        string(s.Tab),
		Analyzed:   s.Analyzed,
		Grammar:    toSuggestions(s.Suggestions.Grammar),
		Style:      toSuggestions(s.Suggestions.Style),
	}
}

// ---------------------------------------------------------------------------
// Vocabulary
// ---------------------------------------------------------------------------

type dailyWordResponse struct {
	ID    int    `json:"id"`
	Word  string `json:"word"`
	Level string `json:"level"`
	Saved bool   `json:"saved"`
}

type vocabularyResponse struct {
	Order    string               `json:"order"`
	Words    []dailyWordResponse  `json:"words"`
	Selected *wordDetailsResponse `json:"selected,omitempty"`
}

func toDailyWords(words []domain.DailyWord) []dailyWordResponse {
	out := make([]dailyWordResponse, len(words))
	for i, w := range words {
		out[i] = dailyWordResponse{ID: w.ID, Word: w.Word, Level: string(w.Level), Saved: w.Saved}
	}
	return out
}

func toVocabulary(s vocabulary.State) vocabularyResponse {
	return vocabularyResponse{
		Order:    string(s.Order),
		Words:    toDailyWords(s.Words),
		Selected: toWordDetails(s.Details),
	}
}
