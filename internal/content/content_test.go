package content

import (
	"strings"
	"testing"

	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

func TestBaseSets_WellFormed(t *testing.T) {
	t.Parallel()

	sets := Builtin().Sets

	for name, set := range sets {
		if len(set) != 10 {
			t.Errorf("set %s: got %d words, want 10", name, len(set))
		}
		for _, w := range set {
			if w.Word == "" || w.Definition == "" {
				t.Errorf("set %s: empty word or definition: %+v", name, w)
			}
			if len(w.Examples) != 2 {
				t.Errorf("set %s: word %q has %d examples, want 2", name, w.Word, len(w.Examples))
			}
		}
	}
}

func TestKeyedSets_FirstWords(t *testing.T) {
	t.Parallel()

	sets := KeyedSets()
	if got := sets[KeyPerseverance][0].Word; got != "perseverance" {
		t.Errorf("perseverance set starts with %q", got)
	}
	if got := sets[KeyPhenomenon][0].Word; got != "phenomenon" {
		t.Errorf("phenomenon set starts with %q", got)
	}
	if got := DefaultSet()[0].Word; got != "pioneering" {
		t.Errorf("default set starts with %q", got)
	}
}

func TestExtensionPool(t *testing.T) {
	t.Parallel()

	pool := ExtensionPool()
	if len(pool) != 60 {
		t.Fatalf("pool size: got %d, want 60", len(pool))
	}
	if pool[0] != "profound" || pool[59] != "standard" {
		t.Errorf("pool bounds: got %q..%q", pool[0], pool[59])
	}
}

func TestSampleText_ContainsGlossarySample(t *testing.T) {
	t.Parallel()

	for _, w := range []string{"ubiquitous", "ephemeral", "paradigm"} {
		if !strings.Contains(SampleText, w) {
			t.Errorf("sample text missing %q", w)
		}
	}
}

func TestWritingTopics_AllLearnerLevels(t *testing.T) {
	t.Parallel()

	topics := WritingTopics()
	if len(topics) != 4 {
		t.Fatalf("got %d levels, want 4", len(topics))
	}
	for level, list := range topics {
		if !level.IsLearnerLevel() {
			t.Errorf("unexpected level %q", level)
		}
		if len(list) != 3 {
			t.Errorf("level %s: got %d topics, want 3", level, len(list))
		}
	}
}

func TestPack_Merge(t *testing.T) {
	t.Parallel()

	base := Builtin()
	overlay := Pack{Sets: map[string][]domain.BaseWord{
		KeyPerseverance: {{Word: "grit", Definition: "courage", Examples: []string{"a", "b"}}},
		"custom":        {{Word: "zeal", Definition: "passion", Examples: []string{"c", "d"}}},
	}}

	merged := base.Merge(overlay)

	if got := merged.Sets[KeyPerseverance][0].Word; got != "grit" {
		t.Errorf("overlay set not applied: %q", got)
	}
	if _, ok := merged.Sets["custom"]; !ok {
		t.Error("new set missing after merge")
	}
	if len(merged.Pool) != 60 {
		t.Errorf("empty overlay pool must keep base pool, got %d words", len(merged.Pool))
	}
	if got := base.Sets[KeyPerseverance][0].Word; got != "perseverance" {
		t.Errorf("merge mutated receiver: %q", got)
	}
}

func TestIsReservedName(t *testing.T) {
	t.Parallel()

	if !IsReservedName(SetDefault) || !IsReservedName(SetSubmitted) {
		t.Error("unkeyed set names must be reserved")
	}
	if IsReservedName(KeyPerseverance) {
		t.Error("video ids must not be reserved")
	}
}
