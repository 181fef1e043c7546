package cetd_test

import (
	"testing"

	"github.com/fwojciec/cetd"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := cetd.Errorf(cetd.ENODEACCESS, "node %d not found in document", 42)

	assert.Equal(t, cetd.ENODEACCESS, cetd.ErrorCode(err))
	assert.Equal(t, "node 42 not found in document", cetd.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cetd.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cetd.ErrorMessage(nil))
}

func TestDocumentValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		doc := &cetd.Document{SourceURL: "https://example.com", Engine: "cetd"}
		assert.NoError(t, doc.Validate())
	})

	t.Run("missing source URL", func(t *testing.T) {
		t.Parallel()

		doc := &cetd.Document{Engine: "cetd"}
		assert.Equal(t, cetd.EINVALID, cetd.ErrorCode(doc.Validate()))
	})

	t.Run("missing engine", func(t *testing.T) {
		t.Parallel()

		doc := &cetd.Document{SourceURL: "https://example.com"}
		assert.Equal(t, cetd.EINVALID, cetd.ErrorCode(doc.Validate()))
	})
}
