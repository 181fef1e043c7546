package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/cetd"
	"github.com/fwojciec/cetd/mock"
	cetdslog "github.com/fwojciec/cetd/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs engine and sizes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*cetd.ExtractResult, error) {
				return &cetd.ExtractResult{ContentText: "main content"}, nil
			},
		}

		ext := cetdslog.NewLoggingExtractor(inner, "cetd", logger)
		res, err := ext.Extract("<html><body>main content</body></html>")

		require.NoError(t, err)
		assert.Equal(t, "main content", res.ContentText)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "engine=cetd")
		assert.Contains(t, output, "text_bytes=12")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*cetd.ExtractResult, error) {
				return nil, errors.New("bad markup")
			},
		}

		ext := cetdslog.NewLoggingExtractor(inner, "readability", logger)
		_, err := ext.Extract("<html>")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "engine=readability")
		assert.Contains(t, output, "err=\"bad markup\"")
	})
}
