// internal/pipeline/pipeline.go
package pipeline

import (
	"context"

	"guniq-core/filter"
	"guniq-core/stats"
	"guniq/internal/lines"
)

// Config controls one filtering run.
type Config struct {
	// Invert emits duplicate records instead of unique ones.
	Invert bool
	// TrackBytes accumulates input volume for the statistics report.
	TrackBytes bool
}

// Run streams every record of inputs, in order, through f exactly once,
// calls visit for each record that survives the invert policy, and returns
// the accumulated statistics.
//
// The record slice passed to visit is only valid during the call. On error
// the statistics cover everything processed so far; records already emitted
// stand (no rollback).
func Run(
	ctx context.Context,
	cfg Config,
	inputs []string,
	f filter.Filter,
	visit func(record []byte) error,
) (stats.Stats, error) {
	var st stats.Stats
	for _, path := range inputs {
		err := lines.ForEachLine(ctx, path, func(line []byte) error {
			if cfg.TrackBytes {
				st.AddBytes(len(line) + 1)
			}
			isNew := f.Detect(line)
			if isNew {
				st.AddUnique()
			} else {
				st.AddDuplicate()
			}
			// Emit uniques normally, duplicates when inverted.
			if isNew == cfg.Invert {
				return nil
			}
			return visit(line)
		})
		if err != nil {
			return st, err
		}
	}
	return st, nil
}
