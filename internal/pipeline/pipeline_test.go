package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"guniq-core/filter"
)

func writeInput(t *testing.T, lines ...string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(fn, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return fn
}

func TestRunEmitsFirstOccurrences(t *testing.T) {
	fn := writeInput(t, "a", "b", "a", "c", "a")
	var got []string
	st, err := Run(context.Background(), Config{}, []string{fn}, filter.NewNaive(), func(rec []byte) error {
		got = append(got, string(rec))
		return nil
	})
	if err != nil {
		t.Fatalf("pipeline err: %v", err)
	}
	if want := "a,b,c"; strings.Join(got, ",") != want {
		t.Errorf("emitted %q, want %q", strings.Join(got, ","), want)
	}
	if st.Total() != 5 || st.Unique() != 3 || st.Duplicates() != 2 {
		t.Errorf("stats = {%d %d %d}, want {5 3 2}", st.Total(), st.Unique(), st.Duplicates())
	}
}

func TestRunInvertEmitsDuplicates(t *testing.T) {
	fn := writeInput(t, "a", "b", "a", "c", "a")
	var got []string
	st, err := Run(context.Background(), Config{Invert: true}, []string{fn}, filter.NewNaive(), func(rec []byte) error {
		got = append(got, string(rec))
		return nil
	})
	if err != nil {
		t.Fatalf("pipeline err: %v", err)
	}
	if want := "a,a"; strings.Join(got, ",") != want {
		t.Errorf("emitted %q, want %q", strings.Join(got, ","), want)
	}
	if st.Total() != 5 || st.Unique() != 3 {
		t.Errorf("stats = {%d %d}, want total 5 unique 3", st.Total(), st.Unique())
	}
}

// For any input and strategy, inverted and non-inverted emissions partition
// the input: their sizes sum to the total record count.
func TestInvertPartitionsInput(t *testing.T) {
	lines := []string{"x", "y", "x", "x", "z", "y", "w"}
	fn := writeInput(t, lines...)

	for _, k := range filter.Kinds() {
		plainF, _ := filter.New(k, filter.Config{})
		invF, _ := filter.New(k, filter.Config{})

		plain := 0
		_, err := Run(context.Background(), Config{}, []string{fn}, plainF, func([]byte) error {
			plain++
			return nil
		})
		if err != nil {
			t.Fatalf("%s: %v", k, err)
		}
		inverted := 0
		_, err = Run(context.Background(), Config{Invert: true}, []string{fn}, invF, func([]byte) error {
			inverted++
			return nil
		})
		if err != nil {
			t.Fatalf("%s inverted: %v", k, err)
		}
		if plain+inverted != len(lines) {
			t.Errorf("%s: %d + %d != %d", k, plain, inverted, len(lines))
		}
	}
}

func TestRunSortedPassesNonAdjacent(t *testing.T) {
	fn := writeInput(t, "a", "b", "a", "c", "a")
	var got []string
	_, err := Run(context.Background(), Config{}, []string{fn}, filter.NewSorted(), func(rec []byte) error {
		got = append(got, string(rec))
		return nil
	})
	if err != nil {
		t.Fatalf("pipeline err: %v", err)
	}
	if want := "a,b,a,c,a"; strings.Join(got, ",") != want {
		t.Errorf("emitted %q, want %q", strings.Join(got, ","), want)
	}
}

func TestRunSpansInputsWithOneFilter(t *testing.T) {
	fn1 := writeInput(t, "a", "b")
	fn2 := writeInput(t, "b", "c")
	var got []string
	st, err := Run(context.Background(), Config{}, []string{fn1, fn2}, filter.NewDigest(), func(rec []byte) error {
		got = append(got, string(rec))
		return nil
	})
	if err != nil {
		t.Fatalf("pipeline err: %v", err)
	}
	if want := "a,b,c"; strings.Join(got, ",") != want {
		t.Errorf("emitted %q, want %q", strings.Join(got, ","), want)
	}
	if st.Total() != 4 || st.Unique() != 3 {
		t.Errorf("stats = {%d %d}, want {4 3}", st.Total(), st.Unique())
	}
}

func TestRunTracksBytes(t *testing.T) {
	fn := writeInput(t, "ab", "c")
	st, err := Run(context.Background(), Config{TrackBytes: true}, []string{fn}, filter.NewNaive(), func([]byte) error { return nil })
	if err != nil {
		t.Fatalf("pipeline err: %v", err)
	}
	// Two records plus one terminator each.
	if st.Bytes() != 5 {
		t.Errorf("Bytes = %d, want 5", st.Bytes())
	}
}

func TestRunMissingInput(t *testing.T) {
	_, err := Run(context.Background(), Config{}, []string{filepath.Join(t.TempDir(), "nope")}, filter.NewNaive(), func([]byte) error { return nil })
	if err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	fn := writeInput(t, "a", "b", "c")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Config{}, []string{fn}, filter.NewNaive(), func([]byte) error { return nil })
	if err == nil {
		t.Fatal("expected context error")
	}
}
