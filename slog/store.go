package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/msdocs"
)

// Ensure LoggingEntryStore implements msdocs.EntryStore.
var _ msdocs.EntryStore = (*LoggingEntryStore)(nil)

// LoggingEntryStore wraps an EntryStore with debug logging.
type LoggingEntryStore struct {
	next   msdocs.EntryStore
	logger *slog.Logger
}

// NewLoggingEntryStore creates a new LoggingEntryStore.
func NewLoggingEntryStore(next msdocs.EntryStore, logger *slog.Logger) *LoggingEntryStore {
	return &LoggingEntryStore{next: next, logger: logger}
}

// FindEntryByName delegates to the wrapped store and logs the operation.
func (s *LoggingEntryStore) FindEntryByName(ctx context.Context, name string) (entry *msdocs.Entry, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find entry",
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindEntryByName(ctx, name)
}

// FindEntries delegates to the wrapped store and logs the operation.
func (s *LoggingEntryStore) FindEntries(ctx context.Context, filter msdocs.EntryFilter) (entries []*msdocs.Entry, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find entries",
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindEntries(ctx, filter)
}

// Names delegates to the wrapped store and logs the operation.
func (s *LoggingEntryStore) Names(ctx context.Context) (names []string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("list names",
			"count", len(names),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Names(ctx)
}

// Count delegates to the wrapped store.
func (s *LoggingEntryStore) Count(ctx context.Context) (int, error) {
	return s.next.Count(ctx)
}
