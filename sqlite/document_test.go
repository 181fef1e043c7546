package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/cetd"
	"github.com/fwojciec/cetd/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentService_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("creates document with generated ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := &cetd.Document{
			SourceURL: "https://example.com/articles/page1",
			Title:     "Page 1",
			Content:   "# Page 1\n\nThis is the content.",
			Engine:    "cetd",
		}

		err := svc.CreateDocument(ctx, doc)
		require.NoError(t, err)

		assert.NotEmpty(t, doc.ID)
		assert.NotEmpty(t, doc.ContentHash)
		assert.False(t, doc.ExtractedAt.IsZero())
	})

	t.Run("identical content yields identical hashes", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		a := &cetd.Document{SourceURL: "https://example.com/a", Content: "same content", Engine: "cetd"}
		b := &cetd.Document{SourceURL: "https://example.com/b", Content: "same content", Engine: "cetd"}
		require.NoError(t, svc.CreateDocument(ctx, a))
		require.NoError(t, svc.CreateDocument(ctx, b))

		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("returns error for invalid document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := &cetd.Document{} // missing required fields

		err := svc.CreateDocument(ctx, doc)
		require.Error(t, err)
		assert.Equal(t, cetd.EINVALID, cetd.ErrorCode(err))
	})
}

func TestDocumentService_FindDocumentByID(t *testing.T) {
	t.Parallel()

	t.Run("returns document when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := &cetd.Document{
			SourceURL: "https://example.com/articles/page1",
			Title:     "Page 1",
			Content:   "# Page 1\n\nContent here.",
			Engine:    "readability",
		}
		require.NoError(t, svc.CreateDocument(ctx, doc))

		found, err := svc.FindDocumentByID(ctx, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, doc.ID, found.ID)
		assert.Equal(t, doc.SourceURL, found.SourceURL)
		assert.Equal(t, doc.Title, found.Title)
		assert.Equal(t, doc.Content, found.Content)
		assert.Equal(t, doc.ContentHash, found.ContentHash)
		assert.Equal(t, doc.Engine, found.Engine)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		_, err := svc.FindDocumentByID(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, cetd.ENOTFOUND, cetd.ErrorCode(err))
	})
}

func TestDocumentService_FindDocuments(t *testing.T) {
	t.Parallel()

	t.Run("returns all documents with empty filter", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			doc := &cetd.Document{
				SourceURL: fmt.Sprintf("https://example.com/articles/page%d", i+1),
				Engine:    "cetd",
			}
			require.NoError(t, svc.CreateDocument(ctx, doc))
		}

		docs, err := svc.FindDocuments(ctx, cetd.DocumentFilter{})
		require.NoError(t, err)
		assert.Len(t, docs, 3)
	})

	t.Run("filters by source URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		url := "https://example.com/articles/unique-page"
		require.NoError(t, svc.CreateDocument(ctx, &cetd.Document{SourceURL: url, Engine: "cetd"}))
		require.NoError(t, svc.CreateDocument(ctx, &cetd.Document{
			SourceURL: "https://example.com/articles/other",
			Engine:    "cetd",
		}))

		docs, err := svc.FindDocuments(ctx, cetd.DocumentFilter{SourceURL: &url})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, url, docs[0].SourceURL)
	})

	t.Run("filters by engine", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateDocument(ctx, &cetd.Document{
			SourceURL: "https://example.com/a", Engine: "cetd",
		}))
		require.NoError(t, svc.CreateDocument(ctx, &cetd.Document{
			SourceURL: "https://example.com/b", Engine: "trafilatura",
		}))

		engine := "trafilatura"
		docs, err := svc.FindDocuments(ctx, cetd.DocumentFilter{Engine: &engine})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "trafilatura", docs[0].Engine)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			doc := &cetd.Document{
				SourceURL: fmt.Sprintf("https://example.com/articles/page%d", i+1),
				Engine:    "cetd",
			}
			require.NoError(t, svc.CreateDocument(ctx, doc))
		}

		docs, err := svc.FindDocuments(ctx, cetd.DocumentFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("sorts by source URL when requested", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		for _, u := range []string{"https://example.com/c", "https://example.com/a", "https://example.com/b"} {
			require.NoError(t, svc.CreateDocument(ctx, &cetd.Document{SourceURL: u, Engine: "cetd"}))
		}

		docs, err := svc.FindDocuments(ctx, cetd.DocumentFilter{SortBy: cetd.SortBySourceURL})
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "https://example.com/a", docs[0].SourceURL)
		assert.Equal(t, "https://example.com/b", docs[1].SourceURL)
		assert.Equal(t, "https://example.com/c", docs[2].SourceURL)
	})
}

func TestDocumentService_DeleteDocument(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := &cetd.Document{SourceURL: "https://example.com/articles/page1", Engine: "cetd"}
		require.NoError(t, svc.CreateDocument(ctx, doc))

		err := svc.DeleteDocument(ctx, doc.ID)
		require.NoError(t, err)

		_, err = svc.FindDocumentByID(ctx, doc.ID)
		assert.Equal(t, cetd.ENOTFOUND, cetd.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		err := svc.DeleteDocument(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, cetd.ENOTFOUND, cetd.ErrorCode(err))
	})
}
