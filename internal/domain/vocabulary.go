package domain

// BaseWord is one curated entry of a base set: a word with a literal
// definition and two literal example sentences.
type BaseWord struct {
	Word       string
	Definition string
	Examples   []string
}

// VocabularyEntry is one record of a synthesized batch.
type VocabularyEntry struct {
	ID         string
	Word       string
	Definition string
	Timestamp  string // MM:SS
	Examples   []string
	Saved      bool
}

// Clone returns a deep copy so callers can flip Saved without touching
// the batch held by a panel.
func (e VocabularyEntry) Clone() VocabularyEntry {
	e.Examples = append([]string(nil), e.Examples...)
	return e
}

// CloneEntries deep-copies a batch.
func CloneEntries(entries []VocabularyEntry) []VocabularyEntry {
	if entries == nil {
		return nil
	}
	out := make([]VocabularyEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}

// RecentVideo is an item of the listening panel history.
type RecentVideo struct {
	ID         string
	Title      string
	WatchedAgo string
}

// DailyWord is an item of the vocabulary panel word list.
type DailyWord struct {
	ID    int
	Word  string
	Level Level
	Saved bool
}

// WordDetails is the detail card shown for a selected word.
type WordDetails struct {
	Word         string
	Phonetic     string
	PartOfSpeech string
	Definition   string
	Level        Level
	Synonyms     []string
	Examples     []string
}

// IsEmpty reports whether no word is selected.
func (d WordDetails) IsEmpty() bool {
	return d.Word == ""
}
