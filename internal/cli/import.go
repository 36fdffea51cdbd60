package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kopeckyd/vocabulaire/internal/config"
	"github.com/kopeckyd/vocabulaire/internal/database"
	"github.com/kopeckyd/vocabulaire/internal/database/books"
	"github.com/kopeckyd/vocabulaire/internal/database/vocabulary"
	"github.com/kopeckyd/vocabulaire/internal/extract"
	"github.com/kopeckyd/vocabulaire/internal/tokenizer"
)

// ImportCommand builds a book's vocabulary from a local document without
// going through the HTTP upload endpoint.
type ImportCommand struct {
	FilePath     string
	Title        string
	Author       string
	Language     string
	Username     string
	LetterLimit  int
	DatabasePath string
}

func NewImportCommand() *ImportCommand {
	return &ImportCommand{}
}

func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to the document to import (required)")
	fs.StringVar(&cmd.Title, "title", "", "Book title (required)")
	fs.StringVar(&cmd.Author, "author", "", "Book author (required)")
	fs.StringVar(&cmd.Language, "language", "", "Book language (required)")
	fs.StringVar(&cmd.Username, "username", "", "Catalogue owner (defaults to the provisioned user)")
	fs.IntVar(&cmd.LetterLimit, "letters", config.DefaultLetterLimit, "Minimum number of letters for a word to count")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import -file <path> -title <title> -author <author> -language <lang> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Extract text from a document and rebuild the vocabulary of the matching\n")
		fmt.Fprintf(os.Stderr, "book. The book is created when it does not exist yet. Rebuilding replaces\n")
		fmt.Fprintf(os.Stderr, "any previous vocabulary for the same book and catalogue.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s import -file candide.txt -title Candide -author Voltaire -language fr -letters 4\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}
	if cmd.Title == "" || cmd.Author == "" || cmd.Language == "" {
		return fmt.Errorf("required flags -title, -author and -language must all be provided")
	}
	if cmd.LetterLimit < 0 {
		return fmt.Errorf("-letters must not be negative")
	}

	return nil
}

func (cmd *ImportCommand) Run() error {
	if _, err := os.Stat(cmd.FilePath); os.IsNotExist(err) {
		return fmt.Errorf("document not found: %s", cmd.FilePath)
	}
	if !extract.Allowed(filepath.Base(cmd.FilePath)) {
		return fmt.Errorf("unsupported document type: %s", filepath.Base(cmd.FilePath))
	}

	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	cmd.DatabasePath = absDBPath

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	user, err := db.CurrentUser(cmd.Username)
	if err != nil {
		return err
	}

	bookRepo := books.NewRepository(db.DB)
	book, created, err := bookRepo.GetOrCreate(cmd.Title, cmd.Author, cmd.Language)
	if err != nil {
		return fmt.Errorf("failed to resolve book: %w", err)
	}
	if created {
		fmt.Printf("Created book %d: %q by %s (%s)\n", book.ID, book.Title, book.Author, book.Language)
	} else {
		fmt.Printf("Using existing book %d: %q by %s (%s)\n", book.ID, book.Title, book.Author, book.Language)
	}

	text, err := extract.NewService().Extract(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	tokens := tokenizer.Tokenize(text, cmd.LetterLimit)
	fmt.Printf("Extracted %d word occurrences (letter limit %d)\n", len(tokens), cmd.LetterLimit)

	vocabularyRepo := vocabulary.NewRepository(db.DB)
	built, err := vocabularyRepo.Rebuild(user.Catalogue.ID, book.ID, cmd.LetterLimit, tokens)
	if err != nil {
		return fmt.Errorf("failed to build vocabulary: %w", err)
	}

	fmt.Printf("Vocabulary %d rebuilt for catalogue %d with %d word usages\n",
		built.ID, built.CatalogueID, len(built.Words))
	return nil
}
