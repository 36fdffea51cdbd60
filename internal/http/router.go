package http

import (
	"github.com/gin-gonic/gin"
)

// RouterConfig carries the dependencies of all controllers. Each
// controller only sees the narrow interface it actually uses.
type RouterConfig struct {
	BookStore       BookStore
	VocabularyStore VocabularyStore
	Users           UserResolver
	Extractor       Extractor

	DefaultUsername    string
	UploadDir          string
	WordCountLimit     int
	DefaultLetterLimit int
	Version            string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Version)
	users := NewUsersController(cfg.Users, cfg.DefaultUsername)
	books := NewBooksController(cfg.BookStore)
	vocabularies := NewVocabularyController(
		cfg.VocabularyStore,
		cfg.BookStore,
		cfg.Users,
		cfg.Extractor,
		cfg.DefaultUsername,
		cfg.UploadDir,
		cfg.WordCountLimit,
		cfg.DefaultLetterLimit,
	)

	router.GET("/health", health.Status)

	// Login placeholder: the single provisioned user
	router.GET("/", users.CurrentUser)

	// Book search and creation
	router.GET("/book/find", books.FindBooks)
	router.GET("/book/findtitle/:title", books.FindBooksByTitle)
	router.GET("/book/findauthor/:author", books.FindBooksByAuthor)
	router.GET("/book/add", books.AddBook)

	// Document upload and vocabulary build
	router.GET("/book/:id/upload", vocabularies.UploadForm)
	router.POST("/book/:id/upload", vocabularies.Upload)

	// Vocabulary queries
	router.GET("/vocabulary/:title", vocabularies.GetVocabularies)
	router.GET("/vocabulary/:title/frequent", vocabularies.FrequentWords)
	router.GET("/vocabulary/:title/infrequent", vocabularies.InfrequentWords)

	return router
}
