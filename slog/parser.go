package slog

import (
	"log/slog"

	"github.com/fwojciec/msdocs"
)

// Ensure LoggingParser implements msdocs.Parser.
var _ msdocs.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging of skipped pages. Skips
// are routine during a build (thousands of non-function pages), so they log
// at debug level only.
type LoggingParser struct {
	next   msdocs.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next msdocs.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs failures.
func (p *LoggingParser) Parse(path string, data []byte) (*msdocs.Entry, error) {
	entry, err := p.next.Parse(path, data)
	if err != nil {
		p.logger.Debug("page skipped", "path", path, "reason", msdocs.ErrorMessage(err))
		return nil, err
	}
	return entry, nil
}
