package http

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kopeckyd/vocabulaire/internal/database/vocabulary"
	"github.com/kopeckyd/vocabulaire/internal/entities"
	"github.com/kopeckyd/vocabulaire/internal/extract"
	"github.com/kopeckyd/vocabulaire/internal/tokenizer"
)

// VocabularyStore defines database operations for vocabulary building and
// frequency ranking.
type VocabularyStore interface {
	Rebuild(catalogueID, bookID uint, letterLimit int, tokens []string) (*entities.Vocabulary, error)
	VocabulariesByTitle(catalogueID uint, title string) ([]entities.Vocabulary, error)
	RankWords(catalogueID uint, title string, limit int, descending bool) ([]vocabulary.RankedBook, error)
}

// UserResolver resolves the user (and catalogue) a request acts for.
type UserResolver interface {
	CurrentUser(username string) (*entities.User, error)
}

// Extractor converts an uploaded document to plain text.
type Extractor interface {
	Extract(path string) (string, error)
}

// uploadForm is a minimal page for exercising the upload endpoint from a
// browser.
const uploadForm = `<!doctype html>
<title>Upload new File</title>
<h1>Upload new File</h1>
<form method=post enctype=multipart/form-data>
<input type=file name=file>
Letter Limit: <input type=number name=letters min="1" value="3">
<input type=submit value=Upload>
</form>`

type VocabularyController struct {
	store     VocabularyStore
	books     BookStore
	users     UserResolver
	extractor Extractor

	username           string // configured user the API serves
	uploadDir          string
	wordCountLimit     int
	defaultLetterLimit int
}

func NewVocabularyController(
	store VocabularyStore,
	books BookStore,
	users UserResolver,
	extractor Extractor,
	username, uploadDir string,
	wordCountLimit, defaultLetterLimit int,
) *VocabularyController {
	return &VocabularyController{
		store:              store,
		books:              books,
		users:              users,
		extractor:          extractor,
		username:           username,
		uploadDir:          uploadDir,
		wordCountLimit:     wordCountLimit,
		defaultLetterLimit: defaultLetterLimit,
	}
}

// catalogue resolves the requesting user's catalogue.
func (vc *VocabularyController) catalogue(c *gin.Context) (*entities.Catalogue, bool) {
	user, err := vc.users.CurrentUser(vc.username)
	if err != nil {
		respondStorageError(c, err, "resolve current user")
		return nil, false
	}
	if user.Catalogue == nil {
		respondStorageError(c, fmt.Errorf("user %s has no catalogue", user.Username), "resolve catalogue")
		return nil, false
	}
	return user.Catalogue, true
}

// UploadForm serves the manual-testing upload form.
// GET /book/:id/upload
func (vc *VocabularyController) UploadForm(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(uploadForm))
}

// Upload receives a document for a book, extracts its text, and rebuilds
// the catalogue's vocabulary for that book. The uploaded file only lives
// in the upload directory for the duration of the request.
// POST /book/:id/upload
func (vc *VocabularyController) Upload(c *gin.Context) {
	bookID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondValidationError(c, "Invalid book id")
		return
	}

	letterLimit := vc.defaultLetterLimit
	if letters := c.PostForm("letters"); letters != "" {
		parsed, err := strconv.Atoi(letters)
		if err != nil || parsed < 1 {
			respondValidationError(c, "Invalid letter limit")
			return
		}
		letterLimit = parsed
	}

	file, err := c.FormFile("file")
	if err != nil {
		respondValidationError(c, "No file part")
		return
	}
	if file.Filename == "" {
		respondValidationError(c, "No selected file")
		return
	}
	if !extract.Allowed(file.Filename) {
		respondValidationError(c, "Unsupported file type")
		return
	}

	book, err := vc.books.GetByID(uint(bookID))
	if err != nil {
		respondNotFound(c, "Book")
		return
	}

	catalogue, ok := vc.catalogue(c)
	if !ok {
		return
	}

	if err := os.MkdirAll(vc.uploadDir, 0o755); err != nil {
		respondStorageError(c, err, "create upload dir")
		return
	}
	path := filepath.Join(vc.uploadDir, filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, path); err != nil {
		respondStorageError(c, err, "save upload")
		return
	}
	defer os.Remove(path)

	text, err := vc.extractor.Extract(path)
	if err != nil {
		respondExtractionError(c, err)
		return
	}

	tokens := tokenizer.Tokenize(text, letterLimit)

	built, err := vc.store.Rebuild(catalogue.ID, book.ID, letterLimit, tokens)
	if err != nil {
		respondStorageError(c, err, "rebuild vocabulary")
		return
	}

	respondOK(c, "Vocabulary created successfully", gin.H{"vocabulary": built.View()})
}

// GetVocabularies returns the catalogue's vocabularies for an exact book
// title; multiple matching books become separate list items.
// GET /vocabulary/:title
func (vc *VocabularyController) GetVocabularies(c *gin.Context) {
	catalogue, ok := vc.catalogue(c)
	if !ok {
		return
	}

	vocabularies, err := vc.store.VocabulariesByTitle(catalogue.ID, c.Param("title"))
	if err != nil {
		respondStorageError(c, err, "get vocabularies")
		return
	}

	views := make([]entities.VocabularyView, 0, len(vocabularies))
	for _, v := range vocabularies {
		views = append(views, v.View())
	}

	respondOK(c, fmt.Sprintf("Found %d vocabularies", len(views)), gin.H{"vocabularies": views})
}

// rankedBookView is the wire form of one ranked book: its identity triple
// with the ranked word list.
type rankedBookView struct {
	ID       uint                   `json:"id"`
	Title    string                 `json:"title"`
	Author   string                 `json:"author"`
	Language string                 `json:"language"`
	Words    []vocabulary.WordCount `json:"words"`
}

// FrequentWords returns the most frequent words per matching book.
// GET /vocabulary/:title/frequent
func (vc *VocabularyController) FrequentWords(c *gin.Context) {
	vc.rankWords(c, true)
}

// InfrequentWords returns the least frequent words per matching book.
// GET /vocabulary/:title/infrequent
func (vc *VocabularyController) InfrequentWords(c *gin.Context) {
	vc.rankWords(c, false)
}

func (vc *VocabularyController) rankWords(c *gin.Context, descending bool) {
	catalogue, ok := vc.catalogue(c)
	if !ok {
		return
	}

	ranked, err := vc.store.RankWords(catalogue.ID, c.Param("title"), vc.wordCountLimit, descending)
	if err != nil {
		respondStorageError(c, err, "rank words")
		return
	}

	views := make([]rankedBookView, 0, len(ranked))
	for _, entry := range ranked {
		views = append(views, rankedBookView{
			ID:       entry.Book.ID,
			Title:    entry.Book.Title,
			Author:   entry.Book.Author,
			Language: entry.Book.Language,
			Words:    entry.Words,
		})
	}

	respondOK(c, "OK", gin.H{"books": views})
}
