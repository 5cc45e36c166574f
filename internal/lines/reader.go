// internal/lines/reader.go

// Package lines is the record source: it streams the lines of a file, of
// stdin ("-"), or of a gzip-compressed file as opaque byte records, in input
// order, with the line terminator stripped.
package lines

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLine allows very long single-line records (64 MiB).
const maxLine = 64 * 1024 * 1024

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path. "-" means stdin. Gzip is detected by magic
// number (1F 8B) or by .gz suffix; stdin is never gzip-sniffed since it
// cannot seek.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// ForEachLine streams the lines of path in input order, terminator stripped.
// The line slice passed to emit is reused between calls; takers copy.
// Cancellation via ctx is honoured between lines. A non-nil error from emit
// stops the scan and is returned as-is.
func ForEachLine(ctx context.Context, path string, emit func(line []byte) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(sc.Bytes()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", DisplayName(path), err)
	}
	return nil
}

// DisplayName renders "-" as "stdin" for user-facing messages.
func DisplayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}
