// Package vocabulary implements the vocabulary builder and the word
// frequency ranker.
//
// A vocabulary is the set of word usages extracted from one book for one
// catalogue. Rebuilding is full-replace: the previous vocabulary and all
// its usages are deleted and recreated in a single transaction, so a
// failed build never leaves partial counts behind.
package vocabulary

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/kopeckyd/vocabulaire/internal/entities"
)

const usageBatchSize = 500

type rebuildKey struct {
	CatalogueID uint
	BookID      uint
}

// Repository handles vocabulary building and frequency queries.
type Repository struct {
	db *gorm.DB

	mu       sync.Mutex
	rebuilds map[rebuildKey]*sync.Mutex
}

// NewRepository creates a new vocabulary repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:       db,
		rebuilds: make(map[rebuildKey]*sync.Mutex),
	}
}

// lockRebuild serializes rebuilds per (catalogue, book) pair. Concurrent
// requests for the same pair are last-committed-wins; the lock only keeps
// them from racing into duplicate-key failures.
func (r *Repository) lockRebuild(key rebuildKey) func() {
	r.mu.Lock()
	lock, ok := r.rebuilds[key]
	if !ok {
		lock = &sync.Mutex{}
		r.rebuilds[key] = lock
	}
	r.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Rebuild replaces the vocabulary for the (catalogue, book) pair with one
// built from the given token sequence. Words are looked up or created per
// (text, book language); one usage row is written per token occurrence.
// Everything happens in one transaction: on any failure the previous state
// is fully restored.
func (r *Repository) Rebuild(catalogueID, bookID uint, letterLimit int, tokens []string) (*entities.Vocabulary, error) {
	unlock := r.lockRebuild(rebuildKey{CatalogueID: catalogueID, BookID: bookID})
	defer unlock()

	var vocabularyID uint
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var book entities.Book
		if err := tx.First(&book, bookID).Error; err != nil {
			return fmt.Errorf("book %d: %w", bookID, err)
		}

		// Clean up the existing vocabulary in case it already exists
		var existing entities.Vocabulary
		err := tx.Where("catalogue_id = ? AND book_id = ?", catalogueID, bookID).
			First(&existing).Error
		if err == nil {
			if err := tx.Where("vocabulary_id = ?", existing.ID).
				Delete(&entities.WordUsage{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&entities.Vocabulary{}, existing.ID).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		vocabulary := entities.Vocabulary{
			CatalogueID: catalogueID,
			BookID:      bookID,
			LetterLimit: letterLimit,
		}
		if err := tx.Create(&vocabulary).Error; err != nil {
			return err
		}

		// Word IDs already resolved during this build
		wordIDs := make(map[string]uint)
		now := time.Now()

		usages := make([]entities.WordUsage, 0, len(tokens))
		for _, token := range tokens {
			wordID, ok := wordIDs[token]
			if !ok {
				word, err := getOrCreateWord(tx, token, book.Language)
				if err != nil {
					return err
				}
				wordID = word.ID
				wordIDs[token] = wordID
			}
			usages = append(usages, entities.WordUsage{
				VocabularyID: vocabulary.ID,
				WordID:       wordID,
				CreatedAt:    now,
			})
		}

		if len(usages) > 0 {
			if err := tx.CreateInBatches(usages, usageBatchSize).Error; err != nil {
				return err
			}
		}

		vocabularyID = vocabulary.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(vocabularyID)
}

// getOrCreateWord resolves a word by its (text, language) identity,
// creating it on first occurrence anywhere in the system. A duplicate
// insert rejected by the unique index resolves to the existing row.
func getOrCreateWord(tx *gorm.DB, text, language string) (*entities.Word, error) {
	var word entities.Word
	err := tx.Where("text = ? AND language = ?", text, language).First(&word).Error
	if err == nil {
		return &word, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	word = entities.Word{Text: text, Language: language}
	if createErr := tx.Create(&word).Error; createErr != nil {
		if err := tx.Where("text = ? AND language = ?", text, language).
			First(&word).Error; err == nil {
			return &word, nil
		}
		return nil, createErr
	}
	return &word, nil
}

// GetByID retrieves a vocabulary with its usages and words loaded.
func (r *Repository) GetByID(id uint) (*entities.Vocabulary, error) {
	var vocabulary entities.Vocabulary
	err := r.db.Preload("Words.Word").First(&vocabulary, id).Error
	if err != nil {
		return nil, err
	}
	return &vocabulary, nil
}

// GetByCatalogueAndBook retrieves the catalogue's vocabulary for a book,
// usages and words loaded. gorm.ErrRecordNotFound when none exists.
func (r *Repository) GetByCatalogueAndBook(catalogueID, bookID uint) (*entities.Vocabulary, error) {
	var vocabulary entities.Vocabulary
	err := r.db.Preload("Words.Word").
		Where("catalogue_id = ? AND book_id = ?", catalogueID, bookID).
		First(&vocabulary).Error
	if err != nil {
		return nil, err
	}
	return &vocabulary, nil
}

// VocabulariesByTitle returns the catalogue's vocabularies whose book
// matches the exact title. Several distinct books may share a title.
func (r *Repository) VocabulariesByTitle(catalogueID uint, title string) ([]entities.Vocabulary, error) {
	var vocabularies []entities.Vocabulary
	err := r.db.Preload("Words.Word").
		Joins("JOIN books ON books.id = vocabularies.book_id").
		Where("vocabularies.catalogue_id = ? AND books.title = ?", catalogueID, title).
		Find(&vocabularies).Error
	return vocabularies, err
}

// WordCount is one ranked entry: a word's text and its usage count within
// a single book's vocabulary.
type WordCount struct {
	Text  string `gorm:"column:text" json:"text"`
	Count int64  `gorm:"column:total" json:"count"`
}

// RankedBook carries one matched book and its ranked word list.
type RankedBook struct {
	Book  entities.Book `json:"book"`
	Words []WordCount   `json:"words"`
}

// RankWords ranks word usage counts for every book with the exact title,
// scoped to the requesting catalogue's vocabulary of that book. Counts
// sort descending (frequent) or ascending (infrequent), ties break on word
// text ascending in both directions, and the list truncates to limit.
// A book without usages yields an empty word list.
func (r *Repository) RankWords(catalogueID uint, title string, limit int, descending bool) ([]RankedBook, error) {
	var books []entities.Book
	if err := r.db.Where("title = ?", title).Find(&books).Error; err != nil {
		return nil, err
	}

	ranked := make([]RankedBook, 0, len(books))
	for _, book := range books {
		counts := make([]WordCount, 0, limit)

		order := "total ASC"
		if descending {
			order = "total DESC"
		}

		query := r.db.Table("word_usages").
			Select("words.text AS text, COUNT(word_usages.id) AS total").
			Joins("JOIN vocabularies ON vocabularies.id = word_usages.vocabulary_id").
			Joins("JOIN words ON words.id = word_usages.word_id").
			Where("vocabularies.catalogue_id = ? AND vocabularies.book_id = ?", catalogueID, book.ID).
			Group("words.text").
			Order(order).
			Order("words.text ASC")
		if limit > 0 {
			query = query.Limit(limit)
		}

		if err := query.Scan(&counts).Error; err != nil {
			return nil, err
		}

		ranked = append(ranked, RankedBook{Book: book, Words: counts})
	}

	return ranked, nil
}
