// Package pdf extracts plain text from study material files.
package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"study-assistant/internal/domain"

	"github.com/tmc/langchaingo/documentloaders"
	"github.com/tmc/langchaingo/schema"
)

// Parser reads PDF files page by page. Plain text and markdown files are
// accepted as they are.
type Parser struct{}

var _ domain.PDFParser = (*Parser)(nil)

func NewParser() *Parser {
	return &Parser{}
}

// Supported reports whether the file extension can be parsed.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".txt", ".md":
		return true
	default:
		return false
	}
}

// Parse returns the text of every page joined by newlines.
func (p *Parser) Parse(ctx context.Context, path string) (text string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	var docs []schema.Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		// The underlying reader panics on some malformed files.
		defer func() {
			if r := recover(); r != nil {
				text, err = "", fmt.Errorf("parsing %s: malformed pdf: %v", path, r)
			}
		}()
		docs, err = documentloaders.NewPDF(f, info.Size()).Load(ctx)
	case ".txt", ".md":
		docs, err = documentloaders.NewText(f).Load(ctx)
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}

	pages := make([]string, 0, len(docs))
	for _, d := range docs {
		if s := strings.TrimSpace(d.PageContent); s != "" {
			pages = append(pages, s)
		}
	}
	return strings.Join(pages, "\n"), nil
}
