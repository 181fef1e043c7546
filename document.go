package cetd

import (
	"context"
	"time"
)

// Document represents the stored result of one extraction run.
type Document struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Engine      string    `json:"engine"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	if d.Engine == "" {
		return Errorf(EINVALID, "document engine required")
	}
	return nil
}

// SortOrder represents the sort order for document queries.
type SortOrder string

// SortOrder constants for DocumentFilter.
const (
	SortByExtractedAt SortOrder = "extracted_at"
	SortBySourceURL   SortOrder = "source_url"
)

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`
	Engine    *string `json:"engine"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}

// DocumentWriter is the write-side of document storage. Both the SQLite
// store and the filesystem writer satisfy it; batch pipelines only need
// this narrow surface.
type DocumentWriter interface {
	// CreateDocument persists a new document.
	CreateDocument(ctx context.Context, doc *Document) error
}

// DocumentService represents a service for managing stored extraction results.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}
