// Package memory provides an eager in-memory documentation store. It trades
// roughly the uncompressed corpus size in resident memory for lookups that
// never touch disk; the lazy sqlite store makes the opposite trade.
package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/fwojciec/msdocs"
)

// Ensure EntryStore implements msdocs.EntryStore at compile time.
var _ msdocs.EntryStore = (*EntryStore)(nil)

// EntryStore holds every entry in memory. It is immutable after construction
// and safe for concurrent use.
type EntryStore struct {
	entries map[string]*msdocs.Entry
	names   []string
}

// NewEntryStore copies every entry out of src.
func NewEntryStore(ctx context.Context, src msdocs.EntryStore) (*EntryStore, error) {
	all, err := src.FindEntries(ctx, msdocs.EntryFilter{})
	if err != nil {
		return nil, err
	}

	entries := make(map[string]*msdocs.Entry, len(all))
	names := make([]string, 0, len(all))
	for _, e := range all {
		entries[e.Name] = e
		names = append(names, e.Name)
	}
	sort.Strings(names)

	return &EntryStore{entries: entries, names: names}, nil
}

// FindEntryByName retrieves the entry for an exact, case-sensitive name.
func (s *EntryStore) FindEntryByName(ctx context.Context, name string) (*msdocs.Entry, error) {
	entry, ok := s.entries[name]
	if !ok {
		return nil, msdocs.Errorf(msdocs.ENOTFOUND, "entry %q not found", name)
	}
	return entry, nil
}

// FindEntries retrieves entries matching the filter, ordered by name.
func (s *EntryStore) FindEntries(ctx context.Context, filter msdocs.EntryFilter) ([]*msdocs.Entry, error) {
	var out []*msdocs.Entry
	skipped := 0
	for _, name := range s.names {
		if filter.Prefix != nil && !strings.HasPrefix(name, *filter.Prefix) {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		out = append(out, s.entries[name])
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

// Names returns every entry name in lexicographic order. The returned slice
// is a copy; callers may modify it freely.
func (s *EntryStore) Names(ctx context.Context) ([]string, error) {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names, nil
}

// Count returns the number of entries.
func (s *EntryStore) Count(ctx context.Context) (int, error) {
	return len(s.entries), nil
}
