package game

import (
	"fmt"
	"strings"
)

// BuildSessionReport renders a plain-text report of the current run: tuning,
// register state, cumulative press statistics and the most recent events.
// The cabinet copies this to the clipboard; the headless runner prints it.
func BuildSessionReport(c *Controller, tl *TickLog, r *SessionReporter, lastEvents int) string {
	if lastEvents <= 0 {
		lastEvents = 20
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- Reflex Rush session report ---\n")
	cfg := c.Config()
	fmt.Fprintf(&b, "seed=%d debounce=%d lockout=%d game_deadline=%d\n",
		cfg.Seed, cfg.DebounceWindow, cfg.LockoutTicks, cfg.GameDeadline)
	fmt.Fprintf(&b, "tick=%d mode=%s score=%d pattern=0b%07b locked=0b%08b round_left=%d game_left=%d\n\n",
		c.Tick(), c.Mode(), c.Score(), c.Pattern(), c.LockedMask(), c.RoundRemaining(), c.GameRemaining())

	if r != nil {
		snap := r.Latest()
		fmt.Fprintf(&b, "totals: correct=%d wrong=%d partial=%d masked=%d arms=%d clears=%d expiries=%d restarts=%d\n",
			snap.Correct, snap.Wrong, snap.Partial, snap.Masked, snap.Arms, snap.Clears, snap.Expiries, snap.Restarts)
		if w := r.Window(); w != nil {
			fmt.Fprintf(&b, "window: %s\n", w)
		}
		b.WriteString("\n")
	}

	entries := tl.Entries()
	from := len(entries) - lastEvents
	if from < 0 {
		from = 0
	}
	fmt.Fprintf(&b, "last %d events:\n", len(entries)-from)
	for _, e := range entries[from:] {
		b.WriteString(e.String())
		b.WriteString("\n")
	}
	return b.String()
}
