package bloom

import (
	"context"

	"github.com/fwojciec/msdocs"
)

// falsePositiveRate keeps spurious disk reads under one in a thousand for a
// corpus of a few thousand names, at a cost of a few kilobytes.
const falsePositiveRate = 0.001

// Ensure EntryStore implements msdocs.EntryStore at compile time.
var _ msdocs.EntryStore = (*EntryStore)(nil)

// EntryStore decorates another store with a name filter built once at
// construction. FindEntryByName returns ENOTFOUND without touching the
// wrapped store when the name is definitely absent. The wrapped store must
// not gain entries afterwards; built databases are immutable, so it doesn't.
type EntryStore struct {
	next   msdocs.EntryStore
	filter *Filter
}

// NewEntryStore builds the filter from the wrapped store's names.
func NewEntryStore(ctx context.Context, next msdocs.EntryStore) (*EntryStore, error) {
	names, err := next.Names(ctx)
	if err != nil {
		return nil, err
	}

	filter := NewFilter(uint(max(len(names), 1)), falsePositiveRate)
	for _, name := range names {
		filter.Add(name)
	}

	return &EntryStore{next: next, filter: filter}, nil
}

// FindEntryByName delegates to the wrapped store unless the filter rules the
// name out.
func (s *EntryStore) FindEntryByName(ctx context.Context, name string) (*msdocs.Entry, error) {
	if !s.filter.Test(name) {
		return nil, msdocs.Errorf(msdocs.ENOTFOUND, "entry %q not found", name)
	}
	return s.next.FindEntryByName(ctx, name)
}

// FindEntries delegates to the wrapped store.
func (s *EntryStore) FindEntries(ctx context.Context, filter msdocs.EntryFilter) ([]*msdocs.Entry, error) {
	return s.next.FindEntries(ctx, filter)
}

// Names delegates to the wrapped store.
func (s *EntryStore) Names(ctx context.Context) ([]string, error) {
	return s.next.Names(ctx)
}

// Count delegates to the wrapped store.
func (s *EntryStore) Count(ctx context.Context) (int, error) {
	return s.next.Count(ctx)
}
