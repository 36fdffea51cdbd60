// Package books provides database operations for the global book table.
//
// Books are identified by the (title, author, language) triple and shared
// across all catalogues; creation is an idempotent get-or-create on that
// triple.
package books

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kopeckyd/vocabulaire/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new book repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Find searches books with LIKE semantics per field. An empty field
// matches everything. No match is an empty slice, not an error.
func (r *Repository) Find(title, author, language string) ([]entities.Book, error) {
	if title == "" {
		title = "%"
	}
	if author == "" {
		author = "%"
	}
	if language == "" {
		language = "%"
	}

	var books []entities.Book
	err := r.db.
		Where("title LIKE ? AND author LIKE ? AND language LIKE ?", title, author, language).
		Find(&books).Error
	return books, err
}

// FindByTitle returns books matching the exact title.
func (r *Repository) FindByTitle(title string) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Where("title = ?", title).Find(&books).Error
	return books, err
}

// FindByAuthor returns books matching the exact author.
func (r *Repository) FindByAuthor(author string) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Where("author = ?", author).Find(&books).Error
	return books, err
}

// GetByID retrieves a single book.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetOrCreate returns the book with the given identity triple, creating it
// on first reference. A concurrent create losing the race against the
// unique index resolves by fetching the winning row. The second return
// value reports whether a new row was created.
func (r *Repository) GetOrCreate(title, author, language string) (*entities.Book, bool, error) {
	var existing entities.Book
	err := r.db.
		Where("title = ? AND author = ? AND language = ?", title, author, language).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	book := entities.Book{Title: title, Author: author, Language: language}
	if createErr := r.db.Create(&book).Error; createErr != nil {
		// Most likely the unique index rejected a duplicate; the row we
		// wanted exists now either way.
		err = r.db.
			Where("title = ? AND author = ? AND language = ?", title, author, language).
			First(&existing).Error
		if err == nil {
			return &existing, false, nil
		}
		return nil, false, createErr
	}
	return &book, true, nil
}
