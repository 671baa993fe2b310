package msdocs

import (
	"context"
	"strings"
)

// MatchKind reports how a query was resolved.
type MatchKind string

// MatchKind values.
const (
	MatchExact MatchKind = "exact"
	MatchFuzzy MatchKind = "fuzzy"
)

// Match is the result of resolving a query against the database.
type Match struct {
	// Name is the database key the query resolved to.
	Name string `json:"name"`

	// Entry is the matched documentation entry.
	Entry *Entry `json:"entry"`

	// Kind reports whether the match was exact or fuzzy.
	Kind MatchKind `json:"kind"`

	// Distance is the edit distance between the cleaned query and Name.
	// Always 0 for exact matches.
	Distance int `json:"distance"`
}

// Resolver resolves a free-form query string to the single best entry.
// Implementations are pure read-only lookups over an immutable store and are
// safe for concurrent use.
type Resolver interface {
	// Resolve cleans the query and returns the best match: an exact hit if
	// the cleaned query is a database key, otherwise the nearest key within
	// the fuzzy-match threshold. Returns ENOTFOUND when no candidate is
	// close enough; that is a normal outcome, not a failure.
	Resolve(ctx context.Context, query string) (*Match, error)
}

// symbolPrefixes are disassembler decorations stripped from selected text
// before matching: import thunks, segment prefixes, and thunk jumps.
var symbolPrefixes = []string{"__imp_", "cs:", "ds:", "j_"}

// symbolTrimCutset covers punctuation that commonly clings to a selection.
const symbolTrimCutset = ".,;:'\"`<>[]{}*&"

// CleanSymbol normalizes text selected in a disassembler into a bare API
// name: surrounding whitespace and punctuation are trimmed, a known
// decoration prefix is stripped, and everything from the first '(' on is
// dropped (decompiler views select whole call expressions).
func CleanSymbol(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, symbolTrimCutset)
	for _, prefix := range symbolPrefixes {
		if strings.HasPrefix(s, prefix) {
			s = strings.TrimPrefix(s, prefix)
			break
		}
	}
	if pos := strings.Index(s, "("); pos != -1 {
		s = s[:pos]
	}
	return strings.TrimSpace(s)
}
