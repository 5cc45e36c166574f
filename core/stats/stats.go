// core/stats/stats.go

// Package stats tracks the running counters for one filtering run: total
// records seen, unique records, and input byte volume. Counters are a value
// owned by whoever drives the run, never process-global state.
package stats

// Stats accumulates per-run counters. All counters are monotonically
// increasing; duplicates are derived as total − unique.
type Stats struct {
	total  uint64
	unique uint64
	bytes  uint64
}

// AddUnique records one record that the filter reported as new.
func (s *Stats) AddUnique() {
	s.total++
	s.unique++
}

// AddDuplicate records one record that the filter reported as seen before.
func (s *Stats) AddDuplicate() {
	s.total++
}

// AddBytes tracks input volume (record length plus terminator).
func (s *Stats) AddBytes(n int) {
	s.bytes += uint64(n)
}

// Total returns the count of all records processed.
func (s *Stats) Total() uint64 { return s.total }

// Unique returns the count of records reported as new.
func (s *Stats) Unique() uint64 { return s.unique }

// Duplicates returns the count of records reported as already seen.
func (s *Stats) Duplicates() uint64 { return s.total - s.unique }

// Bytes returns the input volume recorded via AddBytes.
func (s *Stats) Bytes() uint64 { return s.bytes }

// DupRate returns the percentage of processed records that were duplicates.
// It is 0 for an empty run.
func (s *Stats) DupRate() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.Duplicates()) / float64(s.total) * 100
}
