package content

import "github.com/heartmarshall/myenglish-suite/internal/domain"

// SampleExtraction is the batch the listening panel shows before the
// learner submits anything.
func SampleExtraction() []domain.VocabularyEntry {
	return []domain.VocabularyEntry{
		{ID: "1", Word: "ubiquitous", Definition: "Present, appearing, or found everywhere.", Timestamp: "01:24",
			Examples: []string{
				"Mobile phones are now ubiquitous in modern society.",
				"The ubiquitous nature of plastic pollution is concerning environmentalists.",
			}},
		{ID: "2", Word: "paradigm", Definition: "A typical example or pattern of something; a model.", Timestamp: "02:15",
			Examples: []string{
				"The discovery led to a new paradigm in scientific thinking.",
				"We need a paradigm shift in how we approach environmental issues.",
			}, Saved: true},
		{ID: "3", Word: "ephemeral", Definition: "Lasting for a very short time.", Timestamp: "03:42",
			Examples: []string{
				"The ephemeral nature of fashion trends makes them difficult to follow.",
				"Social media posts are often ephemeral, quickly forgotten as new content appears.",
			}},
		{ID: "4", Word: "eloquent", Definition: "Fluent or persuasive in speaking or writing.", Timestamp: "04:15",
			Examples: []string{
				"She gave an eloquent speech that moved the audience.",
				"His eloquent writing style makes complex topics easy to understand.",
			}},
		{ID: "5", Word: "meticulous", Definition: "Showing great attention to detail; very careful and precise.", Timestamp: "05:03",
			Examples: []string{
				"He is meticulous in his research methodology.",
				"The artist's meticulous attention to detail is evident in her work.",
			}},
		{ID: "6", Word: "pragmatic", Definition: "Dealing with things sensibly and realistically in a way that is based on practical considerations.", Timestamp: "05:47",
			Examples: []string{
				"We need a pragmatic approach to solving this problem.",
				"She's known for her pragmatic leadership style.",
			}},
	}
}

// RecentVideos is the listening panel history.
func RecentVideos() []domain.RecentVideo {
	return []domain.RecentVideo{
		{ID: KeyZoo, Title: "Me at the zoo", WatchedAgo: "2 days ago"},
		{ID: KeyPerseverance, Title: "Rick Astley - Never Gonna Give You Up", WatchedAgo: "1 week ago"},
		{ID: KeyPhenomenon, Title: "PSY - GANGNAM STYLE", WatchedAgo: "2 weeks ago"},
	}
}

// Tools are the dashboard tiles in display order.
func Tools() []domain.Tool {
	return []domain.Tool{
		{ID: domain.ToolVocabulary, Title: "Vocabulary Assistant",
			Description: "Build your vocabulary with 20 daily words from Oxford 3000/5000 lists. View definitions, synonyms, and examples.",
			ButtonText:  "Explore Words"},
		{ID: domain.ToolListening, Title: "Listening Helper",
			Description: "Improve your listening skills with YouTube videos. Extract difficult vocabulary based on your proficiency level.",
			ButtonText:  "Watch & Learn"},
		{ID: domain.ToolReading, Title: "Reading Assistant",
			Description: "Enhance your reading comprehension by analyzing texts. Highlight and define complex words as you read.",
			ButtonText:  "Start Reading"},
		{ID: domain.ToolWriting, Title: "Writing Assistant",
			Description: "Improve your writing with AI-powered grammar correction and style improvement suggestions.",
			ButtonText:  "Write Now"},
		{ID: domain.ToolAchievements, Title: "Achievements Tracker",
			Description: "Track your progress and celebrate your learning milestones across all language skills.",
			ButtonText:  "View Progress"},
	}
}

// MotivationalQuote is shown above the tool grid.
func MotivationalQuote() domain.Quote {
	return domain.Quote{
		Text:   "The limits of my language mean the limits of my world.",
		Author: "Ludwig Wittgenstein",
	}
}

// Skills tracked by the achievements panel.
func Skills() []string {
	return []string{"Vocabulary", "Listening", "Reading", "Writing", "Speaking"}
}

// Weekdays label the weekly progress chart.
func Weekdays() []string {
	return []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
}
