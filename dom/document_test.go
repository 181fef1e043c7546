package dom_test

import (
	"testing"

	"github.com/fwojciec/cetd"
	"github.com/fwojciec/cetd/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHTML = `<!DOCTYPE html>
<html>
<body>
<div class="content">
	Some text here
	<a href="/link">A link</a>
	<p>More <em>content</em></p>
</div>
</body>
</html>`

func TestParse(t *testing.T) {
	t.Parallel()

	doc, err := dom.ParseString(testHTML)
	require.NoError(t, err)

	bodyID, ok := doc.Body()
	require.True(t, ok)

	body, err := doc.Node(bodyID)
	require.NoError(t, err)
	assert.Equal(t, "body", body.Data)
}

func TestNode_WrongDocument(t *testing.T) {
	t.Parallel()

	doc1, err := dom.ParseString(testHTML)
	require.NoError(t, err)
	doc2, err := dom.ParseString(testHTML)
	require.NoError(t, err)

	bodyID, ok := doc1.Body()
	require.True(t, ok)

	// An id issued by doc1 must never resolve against doc2, even though
	// both documents have identical structure.
	_, err = doc2.Node(bodyID)
	require.Error(t, err)
	assert.Equal(t, cetd.ENODEACCESS, cetd.ErrorCode(err))
}

func TestText(t *testing.T) {
	t.Parallel()

	doc, err := dom.ParseString(testHTML)
	require.NoError(t, err)

	bodyID, ok := doc.Body()
	require.True(t, ok)

	text, err := doc.Text(bodyID)
	require.NoError(t, err)
	assert.Equal(t, "Some text here A link More content", text)
}

func TestLinks(t *testing.T) {
	t.Parallel()

	doc, err := dom.ParseString(testHTML)
	require.NoError(t, err)

	bodyID, ok := doc.Body()
	require.True(t, ok)

	links, err := doc.Links(bodyID)
	require.NoError(t, err)
	assert.Equal(t, []string{"/link"}, links)
}

func TestRender(t *testing.T) {
	t.Parallel()

	doc, err := dom.ParseString(`<html><body><p>Hi</p></body></html>`)
	require.NoError(t, err)

	bodyID, ok := doc.Body()
	require.True(t, ok)

	markup, err := doc.Render(bodyID)
	require.NoError(t, err)
	assert.Equal(t, "<body><p>Hi</p></body>", markup)
}
