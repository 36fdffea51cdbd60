package entities

import (
	"time"
)

// User is the account owning a catalogue. Accounts are created once at
// provisioning time; the runtime API never creates users.
type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Username  string     `gorm:"uniqueIndex;size:12" json:"username"`
	FirstName string     `gorm:"size:30" json:"first_name"`
	LastName  string     `gorm:"size:30" json:"last_name"`
	Email     string     `gorm:"uniqueIndex;size:120" json:"email"`
	Catalogue *Catalogue `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
}

// Catalogue is a user's collection of vocabularies (1:1 with User).
// Kept as its own table to allow multiple catalogues per user later.
type Catalogue struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	UserID       uint         `gorm:"index" json:"user_id"`
	Vocabularies []Vocabulary `gorm:"foreignKey:CatalogueID" json:"-"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Book is identified by the (title, author, language) triple and shared
// across all users; it is never owned by a catalogue.
type Book struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Title        string       `gorm:"index;size:100;uniqueIndex:idx_book_identity" json:"title"`
	Author       string       `gorm:"size:200;uniqueIndex:idx_book_identity" json:"author"`
	Language     string       `gorm:"size:2;uniqueIndex:idx_book_identity" json:"language"`
	Vocabularies []Vocabulary `gorm:"foreignKey:BookID" json:"-"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Vocabulary links one catalogue to one book, at most once per pair.
// Re-processing a book replaces the whole vocabulary, it never merges.
type Vocabulary struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	CatalogueID uint        `gorm:"uniqueIndex:idx_vocabulary_assignment" json:"catalogue_id"`
	BookID      uint        `gorm:"uniqueIndex:idx_vocabulary_assignment" json:"book_id"`
	LetterLimit int         `json:"letter_limit"`
	Words       []WordUsage `gorm:"foreignKey:VocabularyID" json:"-"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Word is a lexical unit unique per (text, language) across the whole
// system. No case folding is applied: "Cat" and "cat" are distinct rows.
type Word struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"index;size:100;uniqueIndex:idx_word_identity" json:"text"`
	Language string `gorm:"size:2;uniqueIndex:idx_word_identity" json:"language"`
}

// WordUsage records one occurrence of a word within a vocabulary. The row
// count per (vocabulary, word) is the frequency signal; the timestamp slot
// is reserved for future page references.
type WordUsage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	VocabularyID uint      `gorm:"index" json:"vocabulary_id"`
	WordID       uint      `gorm:"index" json:"word_id"`
	Word         Word      `gorm:"foreignKey:WordID" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

func (Catalogue) TableName() string {
	return "catalogues"
}

func (Book) TableName() string {
	return "books"
}

func (Vocabulary) TableName() string {
	return "vocabularies"
}

func (Word) TableName() string {
	return "words"
}

func (WordUsage) TableName() string {
	return "word_usages"
}
