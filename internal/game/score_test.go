package game

import "testing"

func TestScore_Increment(t *testing.T) {
	var s ScoreCounter
	s.Increment()
	s.Increment()
	if s.Value() != 2 {
		t.Fatalf("expected 2, got %d", s.Value())
	}
}

func TestScore_SaturatesAtRegisterWidth(t *testing.T) {
	var s ScoreCounter
	for i := 0; i < 300; i++ {
		s.Increment()
	}
	if s.Value() != 255 {
		t.Fatalf("score must clamp at 255, got %d", s.Value())
	}
}

func TestScore_Reset(t *testing.T) {
	var s ScoreCounter
	s.Increment()
	s.Reset()
	if s.Value() != 0 {
		t.Fatalf("expected 0 after reset, got %d", s.Value())
	}
}
