// Package bloom short-circuits lookups for names that are definitely not in
// the database, sparing the lazy on-disk store a disk read per miss.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter over entry names.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected names
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a name to the filter.
func (f *Filter) Add(name string) {
	f.f.AddString(name)
}

// Test returns true if the name might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(name string) bool {
	return f.f.TestString(name)
}

// EstimatedCount returns the approximate number of names in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
