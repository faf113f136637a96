package utils

import "testing"

func TestPRNGDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("same seed must give the same sequence (step %d)", i)
		}
	}
	if a.Seed() != 42 {
		t.Errorf("expected seed 42, got %d", a.Seed())
	}
	if NewPRNGService(0).Seed() == 0 {
		t.Errorf("zero seed must be replaced with a time-based one")
	}
}

func TestChooseWeighted(t *testing.T) {
	s := NewPRNGService(1)
	if got := s.ChooseWeighted(nil); got != -1 {
		t.Errorf("expected -1 for empty table, got %d", got)
	}
	if got := s.ChooseWeighted([]float64{0, 0}); got != 0 {
		t.Errorf("expected 0 for zero weights, got %d", got)
	}
	for i := 0; i < 50; i++ {
		if got := s.ChooseWeighted([]float64{0, 1, 0}); got != 1 {
			t.Fatalf("only index 1 has weight, got %d", got)
		}
	}
}

func TestSign(t *testing.T) {
	s := NewPRNGService(3)
	seen := map[float64]bool{}
	for i := 0; i < 100; i++ {
		seen[s.Sign()] = true
	}
	if len(seen) != 2 || !seen[1] || !seen[-1] {
		t.Errorf("expected both signs, got %v", seen)
	}
}
