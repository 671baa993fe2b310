// Package levenshtein resolves free-form queries against the documentation
// database: exact match first, then the nearest name by edit distance within
// a length-proportional threshold.
package levenshtein

import (
	"context"

	agnivade "github.com/agnivade/levenshtein"
	"github.com/fwojciec/msdocs"
)

// Ensure Resolver implements msdocs.Resolver at compile time.
var _ msdocs.Resolver = (*Resolver)(nil)

// Resolver implements msdocs.Resolver over an EntryStore.
type Resolver struct {
	store msdocs.EntryStore
}

// NewResolver creates a new Resolver reading from store.
func NewResolver(store msdocs.EntryStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve cleans the query and returns the best match. Matching is
// case-sensitive throughout: "createfile" does not resolve exactly to
// "CreateFile", though it may still reach it as a fuzzy match.
func (r *Resolver) Resolve(ctx context.Context, query string) (*msdocs.Match, error) {
	query = msdocs.CleanSymbol(query)
	if query == "" {
		return nil, msdocs.Errorf(msdocs.ENOTFOUND, "empty query")
	}

	entry, err := r.store.FindEntryByName(ctx, query)
	if err == nil {
		return &msdocs.Match{
			Name:  query,
			Entry: entry,
			Kind:  msdocs.MatchExact,
		}, nil
	}
	if msdocs.ErrorCode(err) != msdocs.ENOTFOUND {
		return nil, err
	}

	name, distance, err := r.nearest(ctx, query)
	if err != nil {
		return nil, err
	}

	entry, err = r.store.FindEntryByName(ctx, name)
	if err != nil {
		return nil, err
	}

	return &msdocs.Match{
		Name:     name,
		Entry:    entry,
		Kind:     msdocs.MatchFuzzy,
		Distance: distance,
	}, nil
}

// nearest scans every name for the minimum edit distance to the query.
// Equal distances tie-break to the lexicographically smallest name so that
// repeated queries resolve identically.
func (r *Resolver) nearest(ctx context.Context, query string) (string, int, error) {
	names, err := r.store.Names(ctx)
	if err != nil {
		return "", 0, err
	}

	threshold := maxDistance(query)
	best := ""
	bestDist := threshold + 1
	for _, name := range names {
		d := agnivade.ComputeDistance(query, name)
		switch {
		case d < bestDist:
			best, bestDist = name, d
		case d == bestDist && best != "" && name < best:
			best = name
		}
	}

	if best == "" || bestDist > threshold {
		return "", 0, msdocs.Errorf(msdocs.ENOTFOUND, "no documentation for %q", query)
	}
	return best, bestDist, nil
}

// maxDistance is the largest edit distance accepted for a fuzzy match.
// A third of the query length keeps short queries from matching unrelated
// names while still absorbing a typo or a missing A/W suffix on long ones.
func maxDistance(query string) int {
	return max(len(query)/3, 1)
}
