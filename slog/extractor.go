package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/cetd"
)

// Ensure LoggingExtractor implements cetd.Extractor.
var _ cetd.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   cetd.Extractor
	engine string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. The engine name is
// included in every log line so runs with different engines can be told
// apart.
func NewLoggingExtractor(next cetd.Extractor, engine string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, engine: engine, logger: logger}
}

// Extract logs input and output sizes and delegates to the wrapped
// extractor.
func (e *LoggingExtractor) Extract(html string) (res *cetd.ExtractResult, err error) {
	defer func(begin time.Time) {
		var textLen int
		if res != nil {
			textLen = len(res.ContentText)
		}
		e.logger.Info("extract",
			"engine", e.engine,
			"input_bytes", len(html),
			"text_bytes", textLen,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
