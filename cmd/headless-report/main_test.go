package main

import (
	"math/rand"
	"testing"
)

func TestSummarize(t *testing.T) {
	all := []runStats{
		{finalScore: 4, correct: 4, wrong: 1, expiries: 2},
		{finalScore: 10, correct: 10, wrong: 0, expiries: 0},
		{finalScore: 7, correct: 7, wrong: 3, expiries: 1},
	}

	agg := summarize(all)
	if agg.runs != 3 {
		t.Fatalf("expected 3 runs, got %d", agg.runs)
	}
	if agg.minScore != 4 || agg.maxScore != 10 {
		t.Fatalf("expected min=4 max=10, got min=%d max=%d", agg.minScore, agg.maxScore)
	}
	if agg.meanScore != 7.0 {
		t.Fatalf("expected mean 7.0, got %.2f", agg.meanScore)
	}
	if agg.totalCorrect != 21 || agg.totalWrong != 4 || agg.totalExpiries != 3 {
		t.Fatalf("unexpected totals: correct=%d wrong=%d expiries=%d",
			agg.totalCorrect, agg.totalWrong, agg.totalExpiries)
	}
}

func TestSummarize_Empty(t *testing.T) {
	agg := summarize(nil)
	if agg.runs != 0 || agg.meanScore != 0 {
		t.Fatalf("empty summarize should be zero, got %+v", agg)
	}
}

func TestAccuracy(t *testing.T) {
	if got := accuracy(0, 0); got != 1 {
		t.Fatalf("no attempts should read as 1.0, got %.2f", got)
	}
	if got := accuracy(3, 1); got != 0.75 {
		t.Fatalf("expected 0.75, got %.2f", got)
	}
}

func TestWrongButton_NeverInTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(1)) // #nosec G404 -- test
	target := uint8(0b0101_0110)
	for i := 0; i < 100; i++ {
		b := wrongButton(rng, target)
		if b&target != 0 {
			t.Fatalf("wrong button 0b%08b overlaps target 0b%08b", b, target)
		}
		if b == 0 {
			t.Fatal("wrong button must be a single set bit")
		}
	}
}

func TestRunSession_Deterministic(t *testing.T) {
	a := runSession(1, 7, 600, 10, 0.2)
	b := runSession(1, 7, 600, 10, 0.2)
	if a != b {
		t.Fatalf("identical seeds should replay identically:\n%+v\n%+v", a, b)
	}
	if a.gameOverTick < 600 {
		t.Fatalf("session ended before the %d-tick deadline: %d", 600, a.gameOverTick)
	}
}
