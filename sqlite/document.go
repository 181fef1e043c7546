package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/cetd"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ cetd.DocumentService = (*DocumentService)(nil)

// DocumentService implements cetd.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent computes the xxHash of content as a hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// CreateDocument creates a new document, assigning its ID, content hash and
// extraction timestamp.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *cetd.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.ExtractedAt = time.Now().UTC()
	doc.ContentHash = hashContent(doc.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, source_url, title, content, content_hash, engine, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.SourceURL, doc.Title, doc.Content, doc.ContentHash,
		doc.Engine, doc.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*cetd.Document, error) {
	var doc cetd.Document
	var extractedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, content, content_hash, engine, extracted_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&doc.ID, &doc.SourceURL, &doc.Title, &doc.Content,
		&doc.ContentHash, &doc.Engine, &extractedAt)

	if err == sql.ErrNoRows {
		return nil, cetd.Errorf(cetd.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	doc.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at")
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocuments retrieves documents matching the filter.
func (s *DocumentService) FindDocuments(ctx context.Context, filter cetd.DocumentFilter) ([]*cetd.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, title, content, content_hash, engine, extracted_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Engine != nil {
		query.WriteString(" AND engine = ?")
		args = append(args, *filter.Engine)
	}

	switch filter.SortBy {
	case cetd.SortBySourceURL:
		query.WriteString(" ORDER BY source_url ASC")
	default:
		query.WriteString(" ORDER BY extracted_at DESC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*cetd.Document
	for rows.Next() {
		var doc cetd.Document
		var extractedAt string

		if err := rows.Scan(&doc.ID, &doc.SourceURL, &doc.Title, &doc.Content,
			&doc.ContentHash, &doc.Engine, &extractedAt); err != nil {
			return nil, err
		}

		doc.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at")
		if err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return cetd.Errorf(cetd.ENOTFOUND, "document not found")
	}

	return nil
}
