package writers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"syscall"
	"testing"
)

func TestLineWriterFraming(t *testing.T) {
	var buf bytes.Buffer
	lw := NewLineWriter(&buf)
	for _, rec := range []string{"a", "", "long record"} {
		if err := lw.Write([]byte(rec)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := lw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if got, want := buf.String(), "a\n\nlong record\n"; got != want {
		t.Fatalf("output %q, want %q", got, want)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(syscall.EPIPE) {
		t.Error("EPIPE not recognised")
	}
	if !IsBrokenPipe(fmt.Errorf("write: %w", io.ErrClosedPipe)) {
		t.Error("wrapped ErrClosedPipe not recognised")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(errors.New("disk full")) {
		t.Error("false positive")
	}
}
