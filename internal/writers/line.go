// internal/writers/line.go
package writers

import (
	"bufio"
	"io"
)

// LineWriter frames one record per line, appending the terminator itself.
// Writes are buffered; call Flush before exit.
type LineWriter struct {
	w *bufio.Writer
}

// NewLineWriter wraps out in a buffered record sink.
func NewLineWriter(out io.Writer) *LineWriter {
	return &LineWriter{w: bufio.NewWriterSize(out, 256*1024)}
}

// Write emits one record followed by a newline.
func (lw *LineWriter) Write(record []byte) error {
	if _, err := lw.w.Write(record); err != nil {
		return err
	}
	return lw.w.WriteByte('\n')
}

// Flush drains buffered records to the underlying writer.
func (lw *LineWriter) Flush() error { return lw.w.Flush() }
