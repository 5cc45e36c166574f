// core/filter/filter.go
package filter

import (
	"fmt"
	"strings"
)

// Kind names one of the supported strategies. The set is closed: every Kind
// maps to exactly one implementation via New.
type Kind string

const (
	KindSorted Kind = "sorted" // adjacent duplicates only, O(1) memory
	KindNaive  Kind = "naive"  // exact, retains full record bytes
	KindDigest Kind = "digest" // exact in practice, retains xxh64 digests
	KindBloom  Kind = "bloom"  // probabilistic, scalable bloom filter
)

// Kinds lists the supported strategies in help-text order.
func Kinds() []Kind {
	return []Kind{KindSorted, KindNaive, KindDigest, KindBloom}
}

// ParseKind maps a user-supplied name to a Kind (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(s)); k {
	case KindSorted, KindNaive, KindDigest, KindBloom:
		return k, nil
	}
	return "", fmt.Errorf("unknown filter %q (want sorted|naive|digest|bloom)", s)
}

// Filter detects unique records.
//
// Detect must be called exactly once per input record, in input order, from
// a single goroutine. The record is only valid for the duration of the call;
// implementations that retain state copy the bytes or derive a digest first.
// Records are opaque byte sequences: no encoding is assumed, and no input
// can make Detect fail. Nothing is ever removed once recorded.
type Filter interface {
	// Detect returns true the first time an equivalent record is observed
	// and records it as seen as a side effect; it returns false on every
	// subsequent occurrence (per the strategy's equivalence notion).
	Detect(record []byte) bool
}

// New builds a fresh Filter for one run. The Config is consulted only by the
// bloom strategy; pass DefaultConfig() when no tuning is wanted.
func New(k Kind, cfg Config) (Filter, error) {
	switch k {
	case KindSorted:
		return NewSorted(), nil
	case KindNaive:
		return NewNaive(), nil
	case KindDigest:
		return NewDigest(), nil
	case KindBloom:
		return NewScaling(cfg), nil
	}
	return nil, fmt.Errorf("unknown filter kind %q", k)
}
