package content

import "github.com/heartmarshall/myenglish-suite/internal/domain"

// WritingTopics returns essay prompts per learner level.
func WritingTopics() map[domain.Level][]string {
	return map[domain.Level][]string{
		domain.LevelB1: {
			"Describe your favorite holiday destination",
			"Write about a memorable day in your life",
			"What are the advantages and disadvantages of social media?",
		},
		domain.LevelB2: {
			"Should education be free for everyone? Why or why not?",
			"How has technology changed the way we communicate?",
			"Discuss the impact of climate change on future generations",
		},
		domain.LevelC1: {
			"Analyze the role of artificial intelligence in modern healthcare",
			"Evaluate the effectiveness of international aid in developing countries",
			"To what extent should governments regulate free speech online?",
		},
		domain.LevelC2: {
			"Critically assess the philosophical implications of consciousness in artificial intelligence",
			"Examine the interplay between globalization, cultural identity, and linguistic diversity",
			"Evaluate the ethical considerations in genetic engineering and its potential societal impact",
		},
	}
}

// GrammarSuggestions is the canned grammar analysis.
func GrammarSuggestions() []domain.Suggestion {
	return []domain.Suggestion{
		{ID: "g1", Original: "I have went to the store", Suggestion: "I have gone to the store",
			Kind: domain.KindGrammar, Explanation: "The past participle of 'go' is 'gone', not 'went'."},
		{ID: "g2", Original: "She dont like coffee", Suggestion: "She doesn't like coffee",
			Kind: domain.KindGrammar, Explanation: "Third person singular requires 'doesn't' instead of 'dont'."},
		{ID: "g3", Original: "Their going to the park", Suggestion: "They're going to the park",
			Kind: domain.KindSpelling, Explanation: "'Their' is possessive. 'They're' is the contraction of 'they are'."},
	}
}

// StyleSuggestions is the canned style analysis.
func StyleSuggestions() []domain.Suggestion {
	return []domain.Suggestion{
		{ID: "s1", Original: "The meeting was very good", Suggestion: "The meeting was productive",
			Kind: domain.KindVocabulary, Explanation: "'Productive' is more specific and descriptive than 'very good'."},
		{ID: "s2", Original: "In my opinion, I think that", Suggestion: "I think that",
			Kind: domain.KindConciseness, Explanation: "'In my opinion' and 'I think' are redundant together."},
		{ID: "s3", Original: "Due to the fact that", Suggestion: "Because",
			Kind: domain.KindConciseness, Explanation: "'Because' is more concise than 'due to the fact that'."},
	}
}
