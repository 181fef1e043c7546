package mock

import (
	"context"

	"github.com/fwojciec/cetd"
)

var _ cetd.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of cetd.DocumentService.
type DocumentService struct {
	CreateDocumentFn   func(ctx context.Context, doc *cetd.Document) error
	FindDocumentByIDFn func(ctx context.Context, id string) (*cetd.Document, error)
	FindDocumentsFn    func(ctx context.Context, filter cetd.DocumentFilter) ([]*cetd.Document, error)
	DeleteDocumentFn   func(ctx context.Context, id string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *cetd.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*cetd.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter cetd.DocumentFilter) ([]*cetd.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}

var _ cetd.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of cetd.DocumentWriter.
type DocumentWriter struct {
	CreateDocumentFn func(ctx context.Context, doc *cetd.Document) error
}

func (w *DocumentWriter) CreateDocument(ctx context.Context, doc *cetd.Document) error {
	return w.CreateDocumentFn(ctx, doc)
}
