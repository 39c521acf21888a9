package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBenchOptionsApply(t *testing.T) {
	tb := NewTestBench(
		WithSeed(42),
		WithDebounceWindow(3),
		WithLockoutTicks(77),
		WithGameDeadline(999),
	)
	cfg := tb.Config()
	require.Equal(t, uint8(42), cfg.Seed)
	require.Equal(t, 3, cfg.DebounceWindow)
	require.Equal(t, 77, cfg.LockoutTicks)
	require.Equal(t, 999, cfg.GameDeadline)
	require.Equal(t, 999, tb.Controller.GameRemaining())
}

func TestBenchPanicsOnInvalidConfig(t *testing.T) {
	require.Panics(t, func() {
		NewTestBench(WithGameDeadline(0))
	})
}

func TestPressButtonsPulsesExactlyOnce(t *testing.T) {
	tb := NewTestBench(WithSeed(1))
	tb.PressPattern()
	require.Len(t, tb.Log.Filter("press", "correct"), 1,
		"one press cycle must debounce into exactly one pulse")
}

func TestPressButtonsReturnsThePulseTickOutput(t *testing.T) {
	tb := NewTestBench(WithSeed(1))
	out := tb.PressPattern()
	require.Equal(t, uint8(1), out.Score, "returned outputs must be from the tick the press landed")
}

func TestBackToBackPressesBothRegister(t *testing.T) {
	tb := NewTestBench(WithSeed(1))
	tb.PressPattern()
	tb.PressPattern()
	require.Equal(t, uint8(2), tb.Controller.Score(),
		"the release window must let a second press re-trigger")
}

func TestHoldWithoutReleaseDoesNotRepeat(t *testing.T) {
	tb := NewTestBench(WithSeed(1))
	first := uint8(tb.Controller.Pattern())
	tb.HoldButtons(first, 200)
	require.Equal(t, uint8(1), tb.Controller.Score(),
		"a held button must score at most once, even across a pattern change")
}

func TestVerboseBenchRecordsTraces(t *testing.T) {
	tb := NewTestBench(WithVerbose(true))
	tb.RunTicks(5)
	require.Len(t, tb.Log.Filter("trace", "registers"), 5)

	quiet := NewTestBench()
	quiet.RunTicks(5)
	require.Empty(t, quiet.Log.Filter("trace", "registers"))
}

func TestBenchLitSegmentsTracksLastOutput(t *testing.T) {
	tb := NewTestBench(WithSeed(1))
	tb.RunTicks(1)
	require.Equal(t, uint8(tb.Controller.Pattern()), tb.LitSegments())
}
