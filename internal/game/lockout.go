package game

// LockoutTracker keeps one penalty countdown per button. A wrong press arms
// a button for a fixed number of ticks; while armed, that button's presses
// are masked before pattern comparison. Each countdown runs independently,
// the way the per-button counters all updated in parallel in hardware: one
// fixed arena of eight counters, advanced in a single compute-then-commit
// pass per tick.
type LockoutTracker struct {
	ticks   int    // arm duration
	counts  [8]int // remaining ticks per button, 0 = unlocked
	pending uint8  // buttons armed this tick, committed by Tick
}

func NewLockoutTracker(ticks int) *LockoutTracker {
	return &LockoutTracker{ticks: ticks}
}

// Reset clears every countdown and any pending arm.
func (lt *LockoutTracker) Reset() {
	lt.counts = [8]int{}
	lt.pending = 0
}

// Arm schedules a lockout for the given button, starting at the next commit.
// Arming an already-locked button is a no-op: the duration is fixed from the
// first wrong press and a repeat never reloads it.
func (lt *LockoutTracker) Arm(bit int) {
	lt.pending |= 1 << bit
}

// IsLocked reports whether the button's presses are currently ignored.
func (lt *LockoutTracker) IsLocked(bit int) bool {
	return lt.counts[bit] > 0
}

// LockedMask returns the set of currently locked buttons.
func (lt *LockoutTracker) LockedMask() uint8 {
	var m uint8
	for bit := range lt.counts {
		if lt.counts[bit] > 0 {
			m |= 1 << bit
		}
	}
	return m
}

// Tick advances every armed countdown by one tick and then commits arms
// recorded since the last commit. Decrements only touch countdowns that were
// armed before this tick, so a fresh arm always runs its full duration.
// Returns the buttons whose lockout cleared this tick.
func (lt *LockoutTracker) Tick() uint8 {
	var cleared uint8
	for bit := range lt.counts {
		if lt.counts[bit] > 0 {
			lt.counts[bit]--
			if lt.counts[bit] == 0 {
				cleared |= 1 << bit
			}
		}
	}
	for bit := range lt.counts {
		if lt.pending&(1<<bit) != 0 && lt.counts[bit] == 0 {
			lt.counts[bit] = lt.ticks
			cleared &^= 1 << bit
		}
	}
	lt.pending = 0
	return cleared
}

// Remaining returns the ticks left on a button's lockout, 0 if unlocked.
func (lt *LockoutTracker) Remaining(bit int) int {
	return lt.counts[bit]
}
