package entities

import "time"

// The view types below are the only shapes the HTTP layer serializes.
// Every exposed field is enumerated here; nothing is derived by reflection
// from the gorm structs.

// WordUsageView is the wire form of one word occurrence: the word fields
// flattened together with the occurrence timestamp.
type WordUsageView struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Creation string `json:"creation"`
}

// View renders the usage. The Word association must be loaded.
func (u WordUsage) View() WordUsageView {
	return WordUsageView{
		Text:     u.Word.Text,
		Language: u.Word.Language,
		Creation: u.CreatedAt.Format(time.RFC3339),
	}
}

// VocabularyView is the wire form of a vocabulary including its usages.
type VocabularyView struct {
	ID          uint            `json:"id"`
	CatalogueID uint            `json:"catalogue_id"`
	BookID      uint            `json:"book_id"`
	LetterLimit int             `json:"letter_limit"`
	Words       []WordUsageView `json:"words"`
}

// View renders the vocabulary. Usages and their words must be loaded.
func (v Vocabulary) View() VocabularyView {
	words := make([]WordUsageView, 0, len(v.Words))
	for _, usage := range v.Words {
		words = append(words, usage.View())
	}
	return VocabularyView{
		ID:          v.ID,
		CatalogueID: v.CatalogueID,
		BookID:      v.BookID,
		LetterLimit: v.LetterLimit,
		Words:       words,
	}
}
