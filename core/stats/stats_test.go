package stats

import "testing"

func TestZeroValue(t *testing.T) {
	var s Stats
	if s.Total() != 0 || s.Unique() != 0 || s.Duplicates() != 0 || s.Bytes() != 0 {
		t.Fatalf("zero value not empty: %+v", s)
	}
	if s.DupRate() != 0 {
		t.Fatalf("DupRate on empty run = %v, want 0", s.DupRate())
	}
}

func TestCounters(t *testing.T) {
	var s Stats
	s.AddUnique()
	s.AddUnique()
	s.AddUnique()
	s.AddDuplicate()
	s.AddBytes(10)
	s.AddBytes(6)

	if s.Total() != 4 {
		t.Errorf("Total = %d, want 4", s.Total())
	}
	if s.Unique() != 3 {
		t.Errorf("Unique = %d, want 3", s.Unique())
	}
	if s.Duplicates() != 1 {
		t.Errorf("Duplicates = %d, want 1", s.Duplicates())
	}
	if s.Bytes() != 16 {
		t.Errorf("Bytes = %d, want 16", s.Bytes())
	}
}

func TestDupRate(t *testing.T) {
	var s Stats
	for i := 0; i < 3; i++ {
		s.AddUnique()
		s.AddDuplicate()
	}
	if got := s.DupRate(); got != 50.0 {
		t.Fatalf("DupRate = %v, want 50.0", got)
	}
}
