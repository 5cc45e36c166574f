// core/filter/sorted.go
package filter

import "bytes"

// Sorted removes adjacent duplicates only, like Unix uniq: a record is new
// whenever it differs from the immediately preceding record. Memory is
// bounded by a single record, and Detect is a single comparison.
//
// The caller is responsible for feeding input where equal records are
// adjacent (i.e. sorted input). If that precondition is violated, each
// non-adjacent repeat is reported as unique.
type Sorted struct {
	prev   []byte
	primed bool
}

// NewSorted creates a Sorted filter with no previous record.
func NewSorted() *Sorted { return &Sorted{} }

// Detect reports whether record differs from the previous record, and
// unconditionally makes it the new previous record.
func (f *Sorted) Detect(record []byte) bool {
	if f.primed && bytes.Equal(record, f.prev) {
		return false
	}
	f.primed = true
	f.prev = append(f.prev[:0], record...)
	return true
}
