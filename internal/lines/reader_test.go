package lines

import (
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func collect(t *testing.T, path string) []string {
	t.Helper()
	var got []string
	err := ForEachLine(context.Background(), path, func(line []byte) error {
		got = append(got, string(line))
		return nil
	})
	if err != nil {
		t.Fatalf("ForEachLine(%s): %v", path, err)
	}
	return got
}

func TestForEachLinePlainFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(fn, []byte("one\ntwo\n\nthree\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := collect(t, fn)
	if want := "one|two||three"; strings.Join(got, "|") != want {
		t.Errorf("lines = %q, want %q", strings.Join(got, "|"), want)
	}
}

func TestForEachLineNoTrailingNewline(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "part.txt")
	if err := os.WriteFile(fn, []byte("a\nb"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := collect(t, fn); len(got) != 2 || got[1] != "b" {
		t.Errorf("lines = %v, want [a b]", got)
	}
}

func TestForEachLineGzip(t *testing.T) {
	// Deliberately no .gz suffix: detection is by magic bytes.
	fn := filepath.Join(t.TempDir(), "data.bin")
	fh, err := os.Create(fn)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte("alpha\nbeta\n")); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	got := collect(t, fn)
	if want := "alpha|beta"; strings.Join(got, "|") != want {
		t.Errorf("lines = %q, want %q", strings.Join(got, "|"), want)
	}
}

func TestForEachLineEmitError(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "x.txt")
	if err := os.WriteFile(fn, []byte("a\nb\nc\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	boom := errors.New("boom")
	n := 0
	err := ForEachLine(context.Background(), fn, func([]byte) error {
		n++
		if n == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if n != 2 {
		t.Fatalf("emit called %d times, want 2 (stop on error)", n)
	}
}

func TestForEachLineMissingFile(t *testing.T) {
	err := ForEachLine(context.Background(), filepath.Join(t.TempDir(), "nope"), func([]byte) error { return nil })
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDisplayName(t *testing.T) {
	if DisplayName("-") != "stdin" {
		t.Errorf("DisplayName(-) = %q", DisplayName("-"))
	}
	if DisplayName("a.txt") != "a.txt" {
		t.Errorf("DisplayName(a.txt) = %q", DisplayName("a.txt"))
	}
}
