package content

import "github.com/heartmarshall/myenglish-suite/internal/domain"

// SampleText is what the reading panel highlights before any submission.
const SampleText = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Vocabulary is essential for effective communication. Advanced words like 'ubiquitous', 'ephemeral', and 'paradigm' can enhance your writing. Learning English requires consistent practice and dedication."

// Glossary lists the words the reading assistant highlights.
func Glossary() []domain.GlossaryWord {
	return []domain.GlossaryWord{
		{
			Word:       "ubiquitous",
			Definition: "present, appearing, or found everywhere",
			Details: domain.WordDetails{
				Word:       "ubiquitous",
				Definition: "present, appearing, or found everywhere",
				Level:      domain.LevelC1,
				Examples: []string{
					"The technology has become ubiquitous in modern society.",
					"Smartphones are now ubiquitous in everyday life.",
				},
				Synonyms: []string{"omnipresent", "universal", "widespread", "pervasive"},
			},
		},
		{
			Word:       "ephemeral",
			Definition: "lasting for a very short time",
			Details: domain.WordDetails{
				Word:       "ephemeral",
				Definition: "lasting for a very short time",
				Level:      domain.LevelC1,
				Examples: []string{
					"The ephemeral nature of fashion trends makes them difficult to follow.",
					"Social media posts are often ephemeral.",
				},
				Synonyms: []string{"fleeting", "transient", "momentary", "short-lived"},
			},
		},
		{
			Word:       "paradigm",
			Definition: "a typical example or pattern of something",
			Details: domain.WordDetails{
				Word:       "paradigm",
				Definition: "a typical example or pattern of something",
				Level:      domain.LevelC1,
				Examples: []string{
					"The discovery led to a new paradigm in scientific thinking.",
					"We need a paradigm shift in how we approach environmental issues.",
				},
				Synonyms: []string{"model", "pattern", "archetype", "framework"},
			},
		},
		{
			Word:       "meticulous",
			Definition: "showing great attention to detail",
			Details: domain.WordDetails{
				Word:       "meticulous",
				Definition: "showing great attention to detail; very careful and precise",
				Level:      domain.LevelC1,
				Examples: []string{
					"He is meticulous in his research methodology.",
					"The work requires meticulous attention to detail.",
				},
				Synonyms: []string{"careful", "precise", "thorough", "scrupulous"},
			},
		},
		{
			Word:       "pragmatic",
			Definition: "dealing with things sensibly and realistically",
			Details: domain.WordDetails{
				Word:       "pragmatic",
				Definition: "dealing with things sensibly and realistically in a way that is based on practical considerations",
				Level:      domain.LevelB2,
				Examples: []string{
					"We need a pragmatic approach to solving this problem.",
					"She's known for her pragmatic leadership style.",
				},
				Synonyms: []string{"practical", "realistic", "sensible", "down-to-earth"},
			},
		},
	}
}
