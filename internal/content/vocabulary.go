package content

import "github.com/heartmarshall/myenglish-suite/internal/domain"

// DailyWords is the vocabulary panel list in its natural order.
func DailyWords() []domain.DailyWord {
	return []domain.DailyWord{
		{ID: 1, Word: "Ameliorate", Level: domain.LevelC1},
		{ID: 2, Word: "Benevolent", Level: domain.LevelC1},
		{ID: 3, Word: "Cacophony", Level: domain.LevelC2},
		{ID: 4, Word: "Diligent", Level: domain.LevelB2},
		{ID: 5, Word: "Ephemeral", Level: domain.LevelC1},
		{ID: 6, Word: "Fastidious", Level: domain.LevelC2},
		{ID: 7, Word: "Garrulous", Level: domain.LevelC2},
		{ID: 8, Word: "Harbinger", Level: domain.LevelC2},
		{ID: 9, Word: "Insidious", Level: domain.LevelC1},
		{ID: 10, Word: "Juxtapose", Level: domain.LevelC1},
		{ID: 11, Word: "Kinetic", Level: domain.LevelB2},
		{ID: 12, Word: "Lethargic", Level: domain.LevelB2},
		{ID: 13, Word: "Mellifluous", Level: domain.LevelC2},
		{ID: 14, Word: "Nefarious", Level: domain.LevelC2},
		{ID: 15, Word: "Obfuscate", Level: domain.LevelC2},
		{ID: 16, Word: "Pernicious", Level: domain.LevelC1},
		{ID: 17, Word: "Quintessential", Level: domain.LevelC1},
		{ID: 18, Word: "Resilient", Level: domain.LevelB2},
		{ID: 19, Word: "Sycophant", Level: domain.LevelC2},
		{ID: 20, Word: "Taciturn", Level: domain.LevelC1},
	}
}

// DailyWordDetails is the detail card of the vocabulary panel. The mock
// serves the same definition for every word; only the headword follows the
// selection.
func DailyWordDetails(word string) domain.WordDetails {
	if word == "" {
		word = "Ameliorate"
	}
	return domain.WordDetails{
		Word:         word,
		Phonetic:     "/əˈmiːliəreɪt/",
		PartOfSpeech: "verb",
		Definition:   "To make something better or more tolerable",
		Synonyms:     []string{"improve", "enhance", "upgrade", "better", "refine"},
		Examples: []string{
			"The medicine ameliorated his symptoms.",
			"They hoped the new policy would ameliorate the situation.",
			"Various measures were taken to ameliorate the effects of poverty.",
		},
	}
}
