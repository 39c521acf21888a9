package game

import "fmt"

// reportWindowTicks is the default sliding window for recent-behaviour
// summaries (~10s at 60 ticks per second).
const reportWindowTicks = 600

// SessionSnapshot captures the controller and its cumulative event counts at
// one point in time.
type SessionSnapshot struct {
	Tick  int
	Mode  Mode
	Score uint8

	// Cumulative counts derived from the tick log.
	Correct  int // exact-pattern presses
	Wrong    int // presses containing an extraneous button
	Partial  int // strict-subset presses (no score, no penalty)
	Masked   int // presses swallowed by an active lockout
	Arms     int // lockout arms
	Clears   int // lockout expiries
	Expiries int // round deadline expiries
	Restarts int // game-over restarts
}

// WindowSummary is the delta between two snapshots roughly one window apart.
type WindowSummary struct {
	FromTick, ToTick int
	ScoreGained      int
	Correct          int
	Wrong            int
	Partial          int
	Masked           int
	Arms             int
	Expiries         int
}

// Accuracy returns correct presses as a fraction of all scoring attempts in
// the window, or 1 when nothing was attempted.
func (w WindowSummary) Accuracy() float64 {
	attempts := w.Correct + w.Wrong
	if attempts == 0 {
		return 1
	}
	return float64(w.Correct) / float64(attempts)
}

func (w WindowSummary) String() string {
	return fmt.Sprintf("ticks %d..%d: +%d score, correct=%d wrong=%d partial=%d masked=%d arms=%d expiries=%d acc=%.2f",
		w.FromTick, w.ToTick, w.ScoreGained, w.Correct, w.Wrong, w.Partial, w.Masked, w.Arms, w.Expiries, w.Accuracy())
}

// SessionReporter collects periodic snapshots of a running controller and
// produces sliding-window summaries over them.
type SessionReporter struct {
	history     []SessionSnapshot
	windowTicks int
}

// NewSessionReporter creates a reporter. windowTicks <= 0 selects the
// default window.
func NewSessionReporter(windowTicks int) *SessionReporter {
	if windowTicks <= 0 {
		windowTicks = reportWindowTicks
	}
	return &SessionReporter{windowTicks: windowTicks}
}

// Collect records one snapshot from the controller and its log.
func (r *SessionReporter) Collect(c *Controller, tl *TickLog) {
	snap := SessionSnapshot{
		Tick:  c.Tick(),
		Mode:  c.Mode(),
		Score: c.Score(),
	}
	for _, e := range tl.Entries() {
		switch e.Category {
		case "press":
			switch e.Key {
			case "correct":
				snap.Correct++
			case "wrong":
				snap.Wrong++
			case "partial":
				snap.Partial++
			case "masked":
				snap.Masked++
			}
		case "lockout":
			switch e.Key {
			case "arm":
				snap.Arms++
			case "clear":
				snap.Clears++
			}
		case "round":
			if e.Key == "expired" {
				snap.Expiries++
			}
		case "game":
			if e.Key == "restart" {
				snap.Restarts++
			}
		}
	}
	r.history = append(r.history, snap)
}

// Latest returns the most recent snapshot, or a zero snapshot if none.
func (r *SessionReporter) Latest() SessionSnapshot {
	if len(r.history) == 0 {
		return SessionSnapshot{}
	}
	return r.history[len(r.history)-1]
}

// Window summarizes the change over the most recent window. Returns nil
// until at least two snapshots exist.
func (r *SessionReporter) Window() *WindowSummary {
	if len(r.history) < 2 {
		return nil
	}
	last := r.history[len(r.history)-1]
	base := r.history[0]
	for i := len(r.history) - 2; i >= 0; i-- {
		base = r.history[i]
		if last.Tick-r.history[i].Tick >= r.windowTicks {
			break
		}
	}
	return &WindowSummary{
		FromTick:    base.Tick,
		ToTick:      last.Tick,
		ScoreGained: int(last.Score) - int(base.Score),
		Correct:     last.Correct - base.Correct,
		Wrong:       last.Wrong - base.Wrong,
		Partial:     last.Partial - base.Partial,
		Masked:      last.Masked - base.Masked,
		Arms:        last.Arms - base.Arms,
		Expiries:    last.Expiries - base.Expiries,
	}
}

// History returns all snapshots collected so far.
func (r *SessionReporter) History() []SessionSnapshot {
	return r.history
}
