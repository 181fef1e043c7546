// Package fs provides file-based storage for extracted documents.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/cetd"
)

// URLToPath converts a page URL to a relative file path.
// Example: https://example.com/articles/intro → articles/intro.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	if path == "" || path == "/" {
		return "index.md", nil
	}

	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.md in that directory.
	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	return path + ".md", nil
}

// FormatDocument formats a document with YAML frontmatter.
func FormatDocument(doc *cetd.Document) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(doc.SourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(doc.Title)
	b.WriteString("\nengine: ")
	b.WriteString(doc.Engine)
	b.WriteString("\nextracted: ")
	b.WriteString(doc.ExtractedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(doc.Content)
	return b.String()
}

// Ensure Writer implements cetd.DocumentWriter at compile time.
var _ cetd.DocumentWriter = (*Writer)(nil)

// Writer writes documents as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreateDocument writes a document to disk as a markdown file. The file
// path mirrors the document's source URL path.
func (w *Writer) CreateDocument(ctx context.Context, doc *cetd.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(doc.SourceURL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatDocument(doc)), 0644)
}
