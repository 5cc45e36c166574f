// Package pipeline is the streaming engine: it drives one filter.Filter over
// the input records in order, applies the invert policy, forwards surviving
// records to a visit callback, and accumulates run statistics.
//
// The record loop is strictly sequential: one goroutine, no suspension
// points inside the strategy layer. Filters never need locking and a run is
// deterministic for a fixed input order and configuration.
package pipeline
