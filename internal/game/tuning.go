package game

import "github.com/pkg/errors"

// All durations are controller ticks. The cabinet clocks the controller at
// DefaultTickRate ticks per second, so the defaults below read as: a press
// must be stable for ~80ms, a wrong press costs a 2s lockout, a session
// lasts 60s.
const (
	// DefaultTickRate is the controller clock in ticks per second.
	DefaultTickRate = 60

	// DefaultDebounceWindow is the number of consecutive identical raw
	// samples required before a button edge is accepted.
	DefaultDebounceWindow = 5

	// DefaultLockoutTicks is how long a button stays ignored after a
	// wrong press.
	DefaultLockoutTicks = 120

	// DefaultGameDeadline is the whole-session countdown.
	DefaultGameDeadline = 3600
)

// RoundTier maps a minimum score to the round deadline loaded whenever a new
// pattern is generated at or above that score. Tiers are ordered by ascending
// MinScore; the last tier whose MinScore is <= the current score wins.
type RoundTier struct {
	MinScore uint8
	Deadline int
}

// PatternTier maps a minimum score to the number of segments lit together in
// a pattern. Same lookup rule as RoundTier.
type PatternTier struct {
	MinScore uint8
	Segments int
}

// defaultRoundTiers shrinks the per-pattern deadline as the score climbs:
// 3s at the start, down to 1s at score 20+.
var defaultRoundTiers = []RoundTier{
	{MinScore: 0, Deadline: 180},
	{MinScore: 5, Deadline: 150},
	{MinScore: 10, Deadline: 120},
	{MinScore: 15, Deadline: 90},
	{MinScore: 20, Deadline: 60},
}

// defaultPatternTiers widens the target pattern as the score climbs.
var defaultPatternTiers = []PatternTier{
	{MinScore: 0, Segments: 1},
	{MinScore: 8, Segments: 2},
	{MinScore: 16, Segments: 3},
}

// Config holds the controller's build-time tuning. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	DebounceWindow int
	LockoutTicks   int
	GameDeadline   int
	RoundTiers     []RoundTier
	PatternTiers   []PatternTier

	// Seed is the initial pattern-register state. Only the low 7 bits are
	// used and they must not all be zero (an all-zero shift register never
	// leaves the all-zero state).
	Seed uint8
}

// DefaultConfig returns the cabinet tuning.
func DefaultConfig() Config {
	return Config{
		DebounceWindow: DefaultDebounceWindow,
		LockoutTicks:   DefaultLockoutTicks,
		GameDeadline:   DefaultGameDeadline,
		RoundTiers:     defaultRoundTiers,
		PatternTiers:   defaultPatternTiers,
		Seed:           1,
	}
}

// Validate rejects configurations that could deadlock the controller: zero
// reloads, zero debounce windows, non-monotonic tier tables. These are
// construction defects, not runtime conditions, so they surface here and
// never inside Step.
func (c Config) Validate() error {
	if c.DebounceWindow < 1 {
		return errors.New("debounce window must be at least 1 tick")
	}
	if c.LockoutTicks < 1 {
		return errors.New("lockout duration must be at least 1 tick")
	}
	if c.GameDeadline < 1 {
		return errors.New("game deadline must be at least 1 tick")
	}
	if c.Seed&0x7f == 0 {
		return errors.New("pattern seed must be non-zero in its low 7 bits")
	}
	if err := validateRoundTiers(c.RoundTiers); err != nil {
		return errors.Wrap(err, "round tiers")
	}
	if err := validatePatternTiers(c.PatternTiers); err != nil {
		return errors.Wrap(err, "pattern tiers")
	}
	return nil
}

func validateRoundTiers(tiers []RoundTier) error {
	if len(tiers) == 0 {
		return errors.New("table is empty")
	}
	if tiers[0].MinScore != 0 {
		return errors.New("first tier must start at score 0")
	}
	for i, t := range tiers {
		if t.Deadline < 1 {
			return errors.Errorf("tier %d has deadline %d, want >= 1", i, t.Deadline)
		}
		if i == 0 {
			continue
		}
		if t.MinScore <= tiers[i-1].MinScore {
			return errors.Errorf("tier %d min score %d does not increase", i, t.MinScore)
		}
		if t.Deadline > tiers[i-1].Deadline {
			return errors.Errorf("tier %d deadline %d grows at higher score", i, t.Deadline)
		}
	}
	return nil
}

func validatePatternTiers(tiers []PatternTier) error {
	if len(tiers) == 0 {
		return errors.New("table is empty")
	}
	if tiers[0].MinScore != 0 {
		return errors.New("first tier must start at score 0")
	}
	for i, t := range tiers {
		// Seven segments at once is rejected: the no-repeat rule needs at
		// least two candidate patterns per tier.
		if t.Segments < 1 || t.Segments > 6 {
			return errors.Errorf("tier %d wants %d segments, want 1..6", i, t.Segments)
		}
		if i == 0 {
			continue
		}
		if t.MinScore <= tiers[i-1].MinScore {
			return errors.Errorf("tier %d min score %d does not increase", i, t.MinScore)
		}
		if t.Segments < tiers[i-1].Segments {
			return errors.Errorf("tier %d segment count %d shrinks at higher score", i, t.Segments)
		}
	}
	return nil
}

// roundDeadlineFor returns the round deadline loaded at the given score.
func (c Config) roundDeadlineFor(score uint8) int {
	d := c.RoundTiers[0].Deadline
	for _, t := range c.RoundTiers {
		if score >= t.MinScore {
			d = t.Deadline
		}
	}
	return d
}

// patternSizeFor returns the pattern popcount target at the given score.
func (c Config) patternSizeFor(score uint8) int {
	n := c.PatternTiers[0].Segments
	for _, t := range c.PatternTiers {
		if score >= t.MinScore {
			n = t.Segments
		}
	}
	return n
}
