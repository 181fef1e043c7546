package goquery_test

import (
	"testing"

	"github.com/fwojciec/cetd/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitle(t *testing.T) {
	t.Parallel()

	t.Run("prefers og:title over title element", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta property="og:title" content="OG Title">
<title>Element Title</title>
</head><body></body></html>`

		title, err := goquery.Title(html)
		require.NoError(t, err)
		assert.Equal(t, "OG Title", title)
	})

	t.Run("falls back to title element", func(t *testing.T) {
		t.Parallel()

		title, err := goquery.Title(`<html><head><title>  Element Title </title></head></html>`)
		require.NoError(t, err)
		assert.Equal(t, "Element Title", title)
	})

	t.Run("empty when neither present", func(t *testing.T) {
		t.Parallel()

		title, err := goquery.Title(`<html><body><p>text</p></body></html>`)
		require.NoError(t, err)
		assert.Empty(t, title)
	})
}
