// core/filter/bloom.go
package filter

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
)

// Config tunes the bloom strategy. The zero value is replaced by
// DefaultConfig field-by-field, so partial configs are fine.
type Config struct {
	// Capacity is the number of records the first generation is sized for.
	Capacity uint
	// Rate is the overall false-positive target compounded across all
	// generations. Must be in (0, 1).
	Rate float64
	// GrowthFactor multiplies the capacity of each new generation.
	GrowthFactor uint
	// TighteningRatio decays the per-generation false-positive target so
	// the compounded rate converges to Rate. Must be in (0, 1).
	TighteningRatio float64
}

// DefaultConfig returns the documented defaults: one million records at an
// overall 1e-7 false-positive target, doubling capacity and halving the
// per-generation target with each growth step.
func DefaultConfig() Config {
	return Config{
		Capacity:        1_000_000,
		Rate:            1e-7,
		GrowthFactor:    2,
		TighteningRatio: 0.5,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Capacity == 0 {
		c.Capacity = d.Capacity
	}
	if c.Rate <= 0 || c.Rate >= 1 {
		c.Rate = d.Rate
	}
	if c.GrowthFactor < 2 {
		c.GrowthFactor = d.GrowthFactor
	}
	if c.TighteningRatio <= 0 || c.TighteningRatio >= 1 {
		c.TighteningRatio = d.TighteningRatio
	}
	return c
}

// generation is one fixed-capacity sub-filter. Its bit array and hash count
// are sized by bloom.NewWithEstimates for `capacity` records at `rate`; once
// `inserted` reaches `capacity` the generation is full and stops accepting
// inserts (membership tests continue for the life of the run).
type generation struct {
	set      *bloom.BloomFilter
	capacity uint
	rate     float64
	inserted uint
}

// Scaling is a scalable Bloom filter: an append-only sequence of generations
// where generation i holds GrowthFactor^i times the initial capacity at a
// false-positive target of p0·TighteningRatio^i. With p0 = Rate·(1−r) the
// compounded target across all generations stays below Rate no matter how
// many are appended.
//
// Memory grows sublinearly versus Naive/Digest; the price is a bounded,
// one-sided error: a genuinely new record can be reported as a duplicate,
// but once a record is reported seen it is never reported new again. The
// unique count derived from this filter is therefore an estimate, low by at
// most the configured rate.
type Scaling struct {
	cfg  Config
	gens []generation
}

// NewScaling creates a Scaling filter with one generation sized per cfg.
func NewScaling(cfg Config) *Scaling {
	cfg = cfg.withDefaults()
	s := &Scaling{cfg: cfg}
	s.grow(cfg.Capacity, cfg.Rate*(1-cfg.TighteningRatio))
	return s
}

func (s *Scaling) grow(capacity uint, rate float64) {
	s.gens = append(s.gens, generation{
		set:      bloom.NewWithEstimates(capacity, rate),
		capacity: capacity,
		rate:     rate,
	})
}

// Detect hashes the record once, tests every generation oldest to newest,
// and only on a miss everywhere inserts into the newest generation. A full
// newest generation triggers the append of a larger, tighter one.
func (s *Scaling) Detect(record []byte) bool {
	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], xxhash.Sum64(record))

	for i := range s.gens {
		if s.gens[i].set.Test(key[:]) {
			return false
		}
	}

	newest := &s.gens[len(s.gens)-1]
	newest.set.Add(key[:])
	newest.inserted++
	if newest.inserted >= newest.capacity {
		s.grow(newest.capacity*s.cfg.GrowthFactor, newest.rate*s.cfg.TighteningRatio)
	}
	return true
}

// Generations returns the number of sub-filters allocated so far.
func (s *Scaling) Generations() int { return len(s.gens) }

// SizeBytes approximates the memory held by all generation bit arrays.
func (s *Scaling) SizeBytes() uint64 {
	var n uint64
	for i := range s.gens {
		n += uint64(s.gens[i].set.Cap()) / 8
	}
	return n
}
