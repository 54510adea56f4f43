package domain

import "testing"

func TestVocabularyEntry_CloneIsDeep(t *testing.T) {
	t.Parallel()

	orig := VocabularyEntry{ID: "v1", Word: "lucid", Examples: []string{"a", "b"}}
	c := orig.Clone()
	c.Examples[0] = "changed"
	c.Saved = true

	if orig.Examples[0] != "a" {
		t.Errorf("original examples mutated: %v", orig.Examples)
	}
	if orig.Saved {
		t.Error("original Saved mutated")
	}
}

func TestCloneEntries_Nil(t *testing.T) {
	t.Parallel()

	if got := CloneEntries(nil); got != nil {
		t.Errorf("CloneEntries(nil) = %v, want nil", got)
	}
}

func TestWordDetails_IsEmpty(t *testing.T) {
	t.Parallel()

	if !(WordDetails{}).IsEmpty() {
		t.Error("zero WordDetails should be empty")
	}
	if (WordDetails{Word: "paradigm"}).IsEmpty() {
		t.Error("WordDetails with word should not be empty")
	}
}
