// Package extract converts uploaded documents to plain text. The rest of
// the system treats it as an opaque document-to-text service: any failure
// here is reported to the caller, never fatal to the process.
package extract

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	readability "github.com/go-shiori/go-readability"
)

// ErrUnsupportedFormat is wrapped by Extract when no converter exists for
// the file's extension.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// allowedExtensions lists the upload types the service accepts. The binary
// formats are accepted at upload time but still need a converter.
var allowedExtensions = map[string]bool{
	".txt":  true,
	".text": true,
	".md":   true,
	".html": true,
	".htm":  true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// Allowed reports whether the filename carries an accepted extension.
func Allowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext != "" && allowedExtensions[ext]
}

// Service extracts text from documents on disk.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Extract returns the plain text of the document at path. Plain-text
// formats are read directly; HTML goes through readability to shed markup
// and boilerplate.
func (s *Service) Extract(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read document: %w", err)
		}
		return string(data), nil

	case ".html", ".htm":
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("failed to open document: %w", err)
		}
		defer f.Close()

		pageURL := &url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
		article, err := readability.FromReader(f, pageURL)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from HTML: %w", err)
		}
		return article.TextContent, nil

	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
