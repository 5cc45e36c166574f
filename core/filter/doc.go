// Package filter contains the uniqueness-detection strategies. It never
// imports app, writers, cli, or pipeline; keep it domain-only.
//
// Each strategy answers a single question, "has this record been seen
// before?", with a side-effecting state update, and each makes a different
// trade between time, memory, and exactness. See the per-strategy docs for
// how to choose.
package filter
