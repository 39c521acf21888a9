package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReporter_SnapshotCounts(t *testing.T) {
	tb := NewTestBench(WithSeed(1))
	r := NewSessionReporter(0)

	tb.PressPattern()
	tb.PressButtons(1 << firstBitOutside(uint8(tb.Controller.Pattern())))
	r.Collect(tb.Controller, tb.Log)

	snap := r.Latest()
	require.Equal(t, 1, snap.Correct)
	require.Equal(t, 1, snap.Wrong)
	require.Equal(t, 1, snap.Arms)
	require.Equal(t, uint8(1), snap.Score)
	require.Equal(t, ModePlaying, snap.Mode)
	require.Equal(t, tb.Controller.Tick(), snap.Tick)
}

func TestReporter_WindowNeedsTwoSnapshots(t *testing.T) {
	tb := NewTestBench()
	r := NewSessionReporter(0)
	require.Nil(t, r.Window())
	r.Collect(tb.Controller, tb.Log)
	require.Nil(t, r.Window())
	tb.RunTicks(10)
	r.Collect(tb.Controller, tb.Log)
	require.NotNil(t, r.Window())
}

func TestReporter_WindowIsADelta(t *testing.T) {
	tb := NewTestBench(WithSeed(1))
	r := NewSessionReporter(100)

	tb.PressPattern()
	tb.PressPattern()
	r.Collect(tb.Controller, tb.Log)

	tb.PressPattern()
	r.Collect(tb.Controller, tb.Log)

	w := r.Window()
	require.NotNil(t, w)
	require.Equal(t, 1, w.Correct, "window must only count presses after the base snapshot")
	require.Equal(t, 1, w.ScoreGained)
	require.Equal(t, 0, w.Wrong)
	require.InDelta(t, 1.0, w.Accuracy(), 1e-9)
}

func TestReporter_WindowBaseRespectsWidth(t *testing.T) {
	tb := NewTestBench()
	r := NewSessionReporter(50)

	// Snapshots every 30 ticks: the 50-tick window should reach back one
	// snapshot past the most recent, never to the start of history.
	for i := 0; i < 5; i++ {
		tb.RunTicks(30)
		r.Collect(tb.Controller, tb.Log)
	}
	w := r.Window()
	require.NotNil(t, w)
	require.GreaterOrEqual(t, w.ToTick-w.FromTick, 50)
	require.Less(t, w.ToTick-w.FromTick, 150, "window reached too far into history")
}

func TestWindowSummary_AccuracyWithNoAttempts(t *testing.T) {
	var w WindowSummary
	require.Equal(t, 1.0, w.Accuracy())
	w.Correct, w.Wrong = 3, 1
	require.InDelta(t, 0.75, w.Accuracy(), 1e-9)
}
