// Package content holds the curated mock content served by the suite:
// base-word sets, the shared extension pool, and the fixed data behind
// each tool panel.
package content

import (
	"strings"

	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

// Well-known content keys.
const (
	KeyPerseverance = "dQw4w9WgXcQ"
	KeyPhenomenon   = "9bZkp7q19f0"
	KeyZoo          = "jNQXAC9IVRw"

	// SetDefault and SetSubmitted name the unkeyed sets. The '@' keeps them
	// out of the video id space, so no lookup key can address them.
	SetDefault   = "@default"
	SetSubmitted = "@submitted"
)

// IsReservedName reports whether name addresses an unkeyed set.
func IsReservedName(name string) bool {
	return strings.HasPrefix(name, "@")
}

// Pack is a complete catalog: named base sets plus the extension pool.
type Pack struct {
	Sets map[string][]domain.BaseWord
	Pool []string
}

// Builtin returns the curated catalog shipped with the suite.
func Builtin() Pack {
	sets := KeyedSets()
	sets[SetDefault] = DefaultSet()
	sets[SetSubmitted] = SubmittedSet()
	return Pack{Sets: sets, Pool: ExtensionPool()}
}

// Merge overlays other on p: sets in other replace sets of the same name,
// and a non-empty pool replaces the pool.
func (p Pack) Merge(other Pack) Pack {
	out := Pack{Sets: make(map[string][]domain.BaseWord, len(p.Sets)+len(other.Sets)), Pool: p.Pool}
	for k, v := range p.Sets {
		out.Sets[k] = v
	}
	for k, v := range other.Sets {
		out.Sets[k] = v
	}
	if len(other.Pool) > 0 {
		out.Pool = other.Pool
	}
	return out
}

func bw(word, definition string, examples ...string) domain.BaseWord {
	return domain.BaseWord{Word: word, Definition: definition, Examples: examples}
}

// KeyedSets returns the curated base sets addressed by content key.
func KeyedSets() map[string][]domain.BaseWord {
	return map[string][]domain.BaseWord{
		KeyPerseverance: perseveranceSet(),
		KeyPhenomenon:   phenomenonSet(),
	}
}

// DefaultSet is returned for every key without a curated set.
func DefaultSet() []domain.BaseWord {
	return []domain.BaseWord{
		bw("pioneering", "Introducing new and better methods or ideas for the first time.",
			"The pioneering work changed the entire field.",
			"She was a pioneering researcher in artificial intelligence."),
		bw("fundamental", "Forming a necessary base or core; of central importance.",
			"Understanding grammar is fundamental to learning a language.",
			"They disagreed on the fundamental principles."),
		bw("perspective", "A particular attitude toward or way of regarding something; a point of view.",
			"The book offers a new perspective on the historical events.",
			"Try to see it from my perspective."),
		bw("innovative", "Featuring new methods; advanced and original.",
			"The company is known for its innovative approach to design.",
			"They developed an innovative solution to the problem."),
		bw("significant", "Sufficiently great or important to be worthy of attention; noteworthy.",
			"The discovery was significant for the entire scientific community.",
			"There has been a significant improvement in her condition."),
		bw("authentic", "Of undisputed origin and not a copy; genuine.",
			"The museum contains authentic artifacts from ancient Egypt.",
			"She has an authentic approach to teaching that students appreciate."),
		bw("comprehensive", "Complete and including everything that is necessary.",
			"The book provides a comprehensive guide to learning English.",
			"They conducted a comprehensive review of the system."),
		bw("substantial", "Of considerable importance, size, or worth.",
			"The project required a substantial investment of time.",
			"There is a substantial difference between the two versions."),
		bw("intricate", "Very complicated or detailed.",
			"The watch has an intricate mechanism.",
			"She explained the intricate details of the plan."),
		bw("versatile", "Able to adapt or be adapted to many different functions or situations.",
			"She's a versatile actress who performs in both comedy and drama.",
			"This versatile tool can be used for many different tasks."),
	}
}

// SubmittedSet is used when a learner submits a video URL directly.
func SubmittedSet() []domain.BaseWord {
	return []domain.BaseWord{
		bw("innovative", "Featuring new methods; advanced and original.",
			"The company is known for its innovative approach to design.",
			"They developed an innovative solution to the problem."),
		bw("comprehensive", "Complete and including everything that is necessary.",
			"The book provides a comprehensive guide to learning English.",
			"They conducted a comprehensive review of the system."),
		bw("substantial", "Of considerable importance, size, or worth.",
			"The project required a substantial investment of time.",
			"There is a substantial difference between the two versions."),
		bw("intricate", "Very complicated or detailed.",
			"The watch has an intricate mechanism.",
			"She explained the intricate details of the plan."),
		bw("versatile", "Able to adapt or be adapted to many different functions or situations.",
			"She's a versatile actress who performs in both comedy and drama.",
			"This versatile tool can be used for many different tasks."),
		bw("meticulous", "Showing great attention to detail; very careful and precise.",
			"He was meticulous in his research.",
			"The work requires meticulous attention to detail."),
		bw("eloquent", "Fluent or persuasive in speaking or writing.",
			"She gave an eloquent speech that moved the audience.",
			"His eloquent writing style makes complex topics easy to understand."),
		bw("pragmatic", "Dealing with things sensibly and realistically in a way that is based on practical considerations.",
			"We need a pragmatic approach to solving this problem.",
			"She's known for her pragmatic leadership style."),
		bw("ambiguous", "Open to more than one interpretation; having a double meaning.",
			"The message was ambiguous and could be interpreted in different ways.",
			"She gave an ambiguous answer to the question."),
		bw("arbitrary", "Based on random choice or personal whim, rather than any reason or system.",
			"The decision to choose these specific colors seemed arbitrary.",
			"The rules appeared to be arbitrary and inconsistent."),
	}
}

func perseveranceSet() []domain.BaseWord {
	return []domain.BaseWord{
		bw("perseverance", "Persistence in doing something despite difficulty or delay in achieving success.",
			"His perseverance was rewarded when he finally succeeded.",
			"Through perseverance, she overcame all obstacles."),
		bw("commitment", "The state or quality of being dedicated to a cause, activity, etc.",
			"He showed his commitment by never giving up.",
			"Their commitment to quality is evident in their work."),
		bw("resilience", "The capacity to recover quickly from difficulties; toughness.",
			"Her resilience helped her bounce back from failure.",
			"The team showed great resilience in the face of adversity."),
		bw("determination", "Firmness of purpose; resoluteness.",
			"She pursued her goals with determination.",
			"His determination to succeed was inspiring."),
		bw("devotion", "Love, loyalty, or enthusiasm for a person, activity, or cause.",
			"Her devotion to her family was admirable.",
			"The fans showed their devotion by waiting hours in the rain."),
		bw("steadfast", "Resolutely or dutifully firm and unwavering.",
			"He remained steadfast in his beliefs despite criticism.",
			"Their steadfast support never wavered during difficult times."),
		bw("loyalty", "The quality of being loyal; a strong feeling of support or allegiance.",
			"His loyalty to his friends was unquestionable.",
			"The company rewards customer loyalty with special discounts."),
		bw("endurance", "The ability to endure an unpleasant or difficult process or situation without giving way.",
			"The marathon tested her endurance to the limit.",
			"The team showed remarkable endurance throughout the tournament."),
		bw("unwavering", "Not wavering; steady or resolute.",
			"She showed unwavering support for her colleague.",
			"His unwavering determination helped him overcome all obstacles."),
		bw("fidelity", "Faithfulness to a person, cause, or belief, demonstrated by continuing loyalty and support.",
			"The song is about fidelity in relationships.",
			"His fidelity to the principles of democracy never faltered."),
	}
}

func phenomenonSet() []domain.BaseWord {
	return []domain.BaseWord{
		bw("phenomenon", "A fact or situation that is observed to exist or happen, especially one whose cause is in question.",
			"The video became a global phenomenon overnight.",
			"Scientists studied the phenomenon for years."),
		bw("influential", "Having great influence on someone or something.",
			"He was one of the most influential artists of his generation.",
			"The influential paper changed how people thought about the topic."),
		bw("iconic", "Widely recognized and well-established; relating to or of the nature of an icon.",
			"The song has become iconic in pop culture.",
			"The iconic dance moves were imitated worldwide."),
		bw("viral", "Relating to or involving an image, video, piece of information, etc., that is circulated rapidly and widely from one internet user to another.",
			"The video went viral within days of being uploaded.",
			"Their marketing campaign was designed to go viral."),
		bw("catchy", "(Of a tune or phrase) instantly appealing and memorable.",
			"The song has a catchy chorus that everyone remembers.",
			"Advertisers try to create catchy slogans for their products."),
		bw("trendsetting", "Setting or influencing a trend.",
			"The trendsetting video influenced dance styles worldwide.",
			"She's known as a trendsetting fashion designer."),
		bw("sensation", "A widespread reaction of interest and excitement.",
			"The song caused a sensation when it was first released.",
			"The new dance became an overnight sensation."),
		bw("unprecedented", "Never done or known before.",
			"The video achieved unprecedented success on YouTube.",
			"The song's popularity was unprecedented in the history of K-pop."),
		bw("mainstream", "The ideas, attitudes, or activities that are shared by most people and regarded as normal or conventional.",
			"K-pop has now entered the mainstream of Western music.",
			"The song helped bring Korean culture into the mainstream."),
		bw("cultural", "Relating to the ideas, customs, and social behavior of a society.",
			"The song had a significant cultural impact worldwide.",
			"The video crossed cultural boundaries with its universal appeal."),
	}
}

// ExtensionPool is the shared list of words used to pad a batch past the
// end of its base set.
func ExtensionPool() []string {
	return []string{
		"profound", "eloquent", "meticulous", "diligent", "resilient",
		"tenacious", "articulate", "coherent", "concise", "lucid",
		"succinct", "verbose", "analytical", "critical", "logical",
		"rational", "reasonable", "methodical", "systematic", "thorough",
		"rigorous", "precise", "accurate", "exact", "ambiguous",
		"vague", "obscure", "cryptic", "enigmatic", "perplexing",
		"complex", "complicated", "intricate", "sophisticated", "nuanced",
		"subtle", "abstract", "theoretical", "conceptual", "hypothetical",
		"speculative", "conjectural", "empirical", "factual", "objective",
		"verifiable", "demonstrable", "provable", "controversial", "debatable",
		"disputable", "contentious", "polemical", "divisive", "conventional",
		"traditional", "orthodox", "established", "accepted", "standard",
	}
}
