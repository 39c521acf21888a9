package game

import "math/bits"

// Pattern is the set of segments the player must press together, one bit per
// segment 0-6. A pattern always has at least one bit set.
type Pattern uint8

// Popcount returns the number of lit segments.
func (p Pattern) Popcount() int {
	return bits.OnesCount8(uint8(p))
}

// lfsr7 advances a 7-bit maximal-length Galois LFSR (x^7 + x^6 + 1). Every
// non-zero state cycles through all 127 non-zero values; the all-zero state
// is unreachable from a valid seed.
func lfsr7(s uint8) uint8 {
	lsb := s & 1
	s >>= 1
	if lsb != 0 {
		s ^= 0x60
	}
	return s
}

// PatternGenerator produces target patterns from a seeded shift register.
// Identical seeds replay identical pattern sequences, which is what makes
// whole sessions reproducible in tests and headless runs.
type PatternGenerator struct {
	state uint8
	cur   Pattern
}

// NewPatternGenerator seeds the register. Only the low 7 bits of seed are
// used; a zero register would never advance, so it is forced to 1.
func NewPatternGenerator(seed uint8) *PatternGenerator {
	s := seed & 0x7f
	if s == 0 {
		s = 1
	}
	return &PatternGenerator{state: s}
}

// Current returns the pattern most recently produced by Next, or 0 before
// the first call.
func (pg *PatternGenerator) Current() Pattern {
	return pg.cur
}

// Next replaces the current pattern with a fresh one of the given segment
// count, clamped to 1..6: all seven segments at once would leave no distinct
// successor and stall the no-repeat rule. The result never equals the
// previous pattern; the register keeps advancing until a differing candidate
// arrives, and with more than one candidate per size it always does.
func (pg *PatternGenerator) Next(segments int) Pattern {
	if segments < 1 {
		segments = 1
	}
	if segments > 6 {
		segments = 6
	}
	for {
		var p Pattern
		for p.Popcount() < segments {
			pg.state = lfsr7(pg.state)
			p |= 1 << (pg.state % 7)
		}
		if p != pg.cur {
			pg.cur = p
			return p
		}
	}
}

// State exposes the raw register value for trace logging.
func (pg *PatternGenerator) State() uint8 {
	return pg.state
}
