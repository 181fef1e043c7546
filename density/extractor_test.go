package density_test

import (
	"testing"

	"github.com/fwojciec/cetd"
	"github.com/fwojciec/cetd/density"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		const raw = `<html><head><title>Test Page</title></head><body>` +
			`<nav><a href="/">Home</a><a href="/about">About</a></nav>` +
			`<article>` +
			`<p>This is the main content of the page with enough text to dominate the density calculation across the document.</p>` +
			`<p>Another paragraph with substantial readable content keeps the density of the article region high.</p>` +
			`</article>` +
			`<footer><a href="/contact">Contact</a></footer>` +
			`</body></html>`

		res, err := density.NewExtractor().Extract(raw)
		require.NoError(t, err)

		assert.Equal(t, "Test Page", res.Title)

		assert.Contains(t, res.ContentText, "main content of the page")
		assert.Contains(t, res.ContentText, "Another paragraph")
		assert.NotContains(t, res.ContentText, "Home")
		assert.NotContains(t, res.ContentText, "About")
		assert.NotContains(t, res.ContentText, "Contact")

		assert.Contains(t, res.ContentHTML, "<article>")
		assert.Contains(t, res.ContentHTML, "main content of the page")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := density.NewExtractor().Extract("")
		require.Error(t, err)
		assert.Equal(t, cetd.EINVALID, cetd.ErrorCode(err))
	})
}
