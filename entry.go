package msdocs

import (
	"context"
	"strings"
)

// skipNameCharset lists substrings that disqualify a page title as an API
// name: operator overloads, macros with arguments, and C++ qualified names
// cannot be matched against flat disassembler symbols.
var skipNameCharset = []string{"+", "=", "()", "!", "::"}

// Entry is a single documentation record: an API name and its cleaned
// markdown description. Entries are immutable once built.
type Entry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate returns an error if the entry cannot be stored.
func (e *Entry) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "entry name required")
	}
	for _, s := range skipNameCharset {
		if strings.Contains(e.Name, s) {
			return Errorf(EINVALID, "unsupported characters in entry name %q", e.Name)
		}
	}
	if e.Description == "" {
		return Errorf(EINVALID, "entry description required")
	}
	return nil
}

// EntryFilter represents a filter for FindEntries.
type EntryFilter struct {
	Prefix *string `json:"prefix"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// EntryWriter writes entries to storage during a build. Writing an entry
// whose name already exists replaces the previous description: the SDK and
// WDK docsets overlap and the last parsed page wins.
type EntryWriter interface {
	CreateEntry(ctx context.Context, entry *Entry) error
}

// EntryStore is a read-only view of a built documentation database.
type EntryStore interface {
	// FindEntryByName retrieves the entry for an exact, case-sensitive name.
	// Returns ENOTFOUND if no entry exists.
	FindEntryByName(ctx context.Context, name string) (*Entry, error)

	// FindEntries retrieves entries matching the filter, ordered by name.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error)

	// Names returns every entry name in lexicographic order.
	Names(ctx context.Context) ([]string, error)

	// Count returns the number of entries.
	Count(ctx context.Context) (int, error)
}
