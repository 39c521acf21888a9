package game

// ScoreCounter is the 8-bit session score register. It only ever moves up,
// saturating at 255 rather than wrapping, and resets to zero on restart.
type ScoreCounter struct {
	value uint8
}

// Increment adds one point, clamped at the register width.
func (s *ScoreCounter) Increment() {
	if s.value < 0xff {
		s.value++
	}
}

// Reset returns the score to zero. Called only on session restart.
func (s *ScoreCounter) Reset() {
	s.value = 0
}

// Value returns the current score.
func (s *ScoreCounter) Value() uint8 {
	return s.value
}
