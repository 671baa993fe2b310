// Package mock provides hand-written mocks for msdocs domain interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/msdocs"
)

var (
	_ msdocs.EntryStore  = (*EntryStore)(nil)
	_ msdocs.EntryWriter = (*EntryWriter)(nil)
)

// EntryStore is a mock implementation of msdocs.EntryStore.
type EntryStore struct {
	FindEntryByNameFn func(ctx context.Context, name string) (*msdocs.Entry, error)
	FindEntriesFn     func(ctx context.Context, filter msdocs.EntryFilter) ([]*msdocs.Entry, error)
	NamesFn           func(ctx context.Context) ([]string, error)
	CountFn           func(ctx context.Context) (int, error)
}

func (s *EntryStore) FindEntryByName(ctx context.Context, name string) (*msdocs.Entry, error) {
	return s.FindEntryByNameFn(ctx, name)
}

func (s *EntryStore) FindEntries(ctx context.Context, filter msdocs.EntryFilter) ([]*msdocs.Entry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *EntryStore) Names(ctx context.Context) ([]string, error) {
	return s.NamesFn(ctx)
}

func (s *EntryStore) Count(ctx context.Context) (int, error) {
	return s.CountFn(ctx)
}

// EntryWriter is a mock implementation of msdocs.EntryWriter.
type EntryWriter struct {
	CreateEntryFn func(ctx context.Context, entry *msdocs.Entry) error
}

func (w *EntryWriter) CreateEntry(ctx context.Context, entry *msdocs.Entry) error {
	return w.CreateEntryFn(ctx, entry)
}
