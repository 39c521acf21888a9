package game

import "testing"

// lfsrGolden is the register sequence from seed 1. Regenerating it from the
// polynomial by hand: Galois form, right shift, feedback mask 0x60.
var lfsrGolden = []uint8{
	96, 48, 24, 12, 6, 3, 97, 80, 40, 20,
	10, 5, 98, 49, 120, 60, 30, 15, 103, 83,
}

func TestLFSR_GoldenSequence(t *testing.T) {
	s := uint8(1)
	for i, want := range lfsrGolden {
		s = lfsr7(s)
		if s != want {
			t.Fatalf("step %d: expected state %d, got %d", i+1, want, s)
		}
	}
}

func TestLFSR_MaximalPeriod(t *testing.T) {
	seen := make(map[uint8]bool)
	s := uint8(1)
	for i := 0; i < 127; i++ {
		s = lfsr7(s)
		if s == 0 {
			t.Fatal("register reached the all-zero state")
		}
		if seen[s] {
			t.Fatalf("state %d repeated after %d steps", s, i+1)
		}
		seen[s] = true
	}
	if s != 1 {
		t.Fatalf("expected the sequence to close after 127 steps, ended at %d", s)
	}
}

func TestPattern_FirstDraws(t *testing.T) {
	pg := NewPatternGenerator(1)
	want := []Pattern{0b0100000, 0b1000000, 0b0001000}
	for i, w := range want {
		if got := pg.Next(1); got != w {
			t.Fatalf("draw %d: expected 0b%07b, got 0b%07b", i+1, w, got)
		}
	}
}

func TestPattern_NeverEmptyNeverRepeats(t *testing.T) {
	for _, segments := range []int{1, 2, 3, 6} {
		pg := NewPatternGenerator(33)
		prev := pg.Next(segments)
		for i := 0; i < 500; i++ {
			p := pg.Next(segments)
			if p.Popcount() != segments {
				t.Fatalf("segments=%d draw %d: popcount %d", segments, i, p.Popcount())
			}
			if p == prev {
				t.Fatalf("segments=%d draw %d: pattern 0b%07b repeated", segments, i, p)
			}
			if uint8(p)&0x80 != 0 {
				t.Fatalf("pattern uses bit 7: 0b%08b", p)
			}
			prev = p
		}
	}
}

func TestPattern_SegmentsClamped(t *testing.T) {
	pg := NewPatternGenerator(9)
	if got := pg.Next(0); got.Popcount() != 1 {
		t.Fatalf("segments=0 should clamp to 1 lit segment, got %d", got.Popcount())
	}
	if got := pg.Next(12); got.Popcount() != 6 {
		t.Fatalf("segments=12 should clamp to 6 lit segments, got %d", got.Popcount())
	}
}

func TestPattern_Deterministic(t *testing.T) {
	a := NewPatternGenerator(55)
	b := NewPatternGenerator(55)
	for i := 0; i < 200; i++ {
		segments := 1 + i%3
		if pa, pb := a.Next(segments), b.Next(segments); pa != pb {
			t.Fatalf("draw %d diverged: 0b%07b vs 0b%07b", i, pa, pb)
		}
	}
}

func TestPattern_ZeroSeedForced(t *testing.T) {
	pg := NewPatternGenerator(0)
	if pg.State() != 1 {
		t.Fatalf("zero seed should be forced to 1, got %d", pg.State())
	}
	// 0x80 masks to zero in the low 7 bits as well.
	pg = NewPatternGenerator(0x80)
	if pg.State() != 1 {
		t.Fatalf("seed 0x80 should be forced to 1, got %d", pg.State())
	}
	if p := pg.Next(1); p.Popcount() != 1 {
		t.Fatalf("forced seed must still generate, got 0b%07b", p)
	}
}
