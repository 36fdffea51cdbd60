package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/kopeckyd/vocabulaire/internal/entities"
)

// BookStore defines database operations for book search and creation.
type BookStore interface {
	Find(title, author, language string) ([]entities.Book, error)
	FindByTitle(title string) ([]entities.Book, error)
	FindByAuthor(author string) ([]entities.Book, error)
	GetByID(id uint) (*entities.Book, error)
	GetOrCreate(title, author, language string) (*entities.Book, bool, error)
}

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

// FindBooks searches with title/author/language query parameters. Omitted
// fields match everything; LIKE patterns pass through.
// GET /book/find
func (bc *BooksController) FindBooks(c *gin.Context) {
	books, err := bc.store.Find(c.Query("title"), c.Query("author"), c.Query("language"))
	if err != nil {
		respondStorageError(c, err, "find books")
		return
	}
	respondOK(c, fmt.Sprintf("Found %d books", len(books)), gin.H{"books": books})
}

// FindBooksByTitle is an exact single-field lookup.
// GET /book/findtitle/:title
func (bc *BooksController) FindBooksByTitle(c *gin.Context) {
	books, err := bc.store.FindByTitle(c.Param("title"))
	if err != nil {
		respondStorageError(c, err, "find books by title")
		return
	}
	respondOK(c, fmt.Sprintf("Found %d books", len(books)), gin.H{"books": books})
}

// FindBooksByAuthor is an exact single-field lookup.
// GET /book/findauthor/:author
func (bc *BooksController) FindBooksByAuthor(c *gin.Context) {
	books, err := bc.store.FindByAuthor(c.Param("author"))
	if err != nil {
		respondStorageError(c, err, "find books by author")
		return
	}
	respondOK(c, fmt.Sprintf("Found %d books", len(books)), gin.H{"books": books})
}

// AddBook creates a book from query parameters, or returns the existing
// one when the identity triple is already known.
// GET /book/add
func (bc *BooksController) AddBook(c *gin.Context) {
	title := c.Query("title")
	author := c.Query("author")
	language := c.Query("language")

	if title == "" || author == "" || language == "" {
		respondValidationError(c, "Missing parameter(s)")
		return
	}

	book, created, err := bc.store.GetOrCreate(title, author, language)
	if err != nil {
		respondStorageError(c, err, "add book")
		return
	}

	state := "Book exists, using existing"
	if created {
		state = "Book created successfully"
	}
	respondOK(c, state, gin.H{"book": book})
}
