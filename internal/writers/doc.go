// Package writers owns the record sink: framing emitted records one per
// line and deciding when a write failure is really a downstream consumer
// (like `head`) closing early, which is success rather than an error.
package writers
