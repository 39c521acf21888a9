package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// Mode is the controller's top-level state.
type Mode int

const (
	ModePlaying Mode = iota
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// restartMask is the button that restarts a finished session (button 0).
const restartMask uint8 = 0x01

// Inputs is the pin snapshot sampled once at the start of a tick.
type Inputs struct {
	ResetActive bool
	RawButtons  uint8
}

// Outputs holds the registered pin values at the end of a tick. Segments is
// active low (cleared bit = lit); DecimalPoint is lit while playing; Score is
// the live score while playing and the frozen final score in game over.
type Outputs struct {
	Segments     uint8
	DecimalPoint bool
	Score        uint8
}

// Controller is the top-level finite-state machine. Everything advances in
// Step, once per tick, in a fixed order: sample, debounce, mask, compare,
// score or arm, advance countdowns, encode. No state is observable mid-tick;
// callers only ever see committed end-of-tick values.
type Controller struct {
	cfg      Config
	debounce *Debouncer
	lockout  *LockoutTracker
	pattern  *PatternGenerator
	round    Countdown
	game     Countdown
	score    ScoreCounter
	mode     Mode
	tick     int
	held     bool // reset currently asserted
	log      *TickLog
}

// NewController builds a controller and starts its first session. The config
// is validated up front; a controller that constructs cannot deadlock.
func NewController(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "controller config")
	}
	c := &Controller{
		cfg:      cfg,
		debounce: NewDebouncer(cfg.DebounceWindow),
		lockout:  NewLockoutTracker(cfg.LockoutTicks),
		pattern:  NewPatternGenerator(cfg.Seed),
		log:      NewTickLog(false),
	}
	c.startSession()
	return c, nil
}

// AttachLog replaces the controller's event log. Used by the bench and the
// cabinet to observe a run; the controller never reads its own log.
func (c *Controller) AttachLog(tl *TickLog) {
	if tl != nil {
		c.log = tl
	}
}

// startSession is the RESET → PLAYING initialization: score zeroed, all
// lockouts cleared, first pattern generated, both deadlines loaded. The
// debouncer is deliberately left alone so a button held across a restart
// cannot re-pulse without a real release.
func (c *Controller) startSession() {
	c.mode = ModePlaying
	c.score.Reset()
	c.lockout.Reset()
	c.pattern.Next(c.cfg.patternSizeFor(0))
	c.round.Load(c.cfg.roundDeadlineFor(0))
	c.game.Load(c.cfg.GameDeadline)
	c.log.Add(c.tick, "game", "session_start",
		fmt.Sprintf("pattern=0b%07b game_deadline=%d", c.pattern.Current(), c.cfg.GameDeadline), 0)
}

// Step advances the controller by one tick and returns the committed output
// pins. Reset dominates every other input: while it is asserted the
// controller re-initializes and play begins on the first tick after release.
func (c *Controller) Step(in Inputs) Outputs {
	c.tick++
	if in.ResetActive {
		// Held state: initialize once on assertion, then hold every
		// register steady until release.
		if !c.held {
			c.held = true
			c.debounce.Reset()
			c.startSession()
		}
		return c.outputs()
	}
	c.held = false

	pressed := c.debounce.Sample(in.RawButtons)

	switch c.mode {
	case ModeGameOver:
		// Frozen: no lockout ticking, no pattern changes, no scoring.
		// Only a debounced press of the restart button leaves this state.
		if pressed&restartMask != 0 {
			c.log.Add(c.tick, "game", "restart", "button 0 pressed", 0)
			c.startSession()
		}
	case ModePlaying:
		c.stepPlaying(pressed)
	}
	return c.outputs()
}

// stepPlaying runs one PLAYING tick. All reads below observe state as it was
// at the start of the tick: the mask uses the lockout set before any arm
// lands, the comparison uses the pattern before any replacement, and fresh
// arms are committed after the countdown pass inside lockout.Tick.
func (c *Controller) stepPlaying(pressed uint8) {
	effective := pressed &^ c.lockout.LockedMask()
	if masked := pressed &^ effective; masked != 0 {
		c.log.Add(c.tick, "press", "masked", fmt.Sprintf("buttons=0b%08b", masked), float64(masked))
	}

	target := uint8(c.pattern.Current())
	scored := false
	if effective != 0 {
		switch wrong := effective &^ target; {
		case effective == target:
			scored = true
			c.score.Increment()
			c.log.Add(c.tick, "press", "correct",
				fmt.Sprintf("buttons=0b%08b score=%d", effective, c.score.Value()), float64(c.score.Value()))
			c.advanceRound("scored")
		case wrong != 0:
			c.log.Add(c.tick, "press", "wrong", fmt.Sprintf("buttons=0b%08b", wrong), float64(wrong))
			for bit := 0; bit < 8; bit++ {
				if wrong&(1<<bit) != 0 {
					c.lockout.Arm(bit)
					c.log.Add(c.tick, "lockout", "arm",
						fmt.Sprintf("button=%d ticks=%d", bit, c.cfg.LockoutTicks), float64(bit))
				}
			}
		default:
			// Strict subset of the pattern: no score, no penalty.
			c.log.Add(c.tick, "press", "partial", fmt.Sprintf("buttons=0b%08b", effective), float64(effective))
		}
	}

	if cleared := c.lockout.Tick(); cleared != 0 {
		for bit := 0; bit < 8; bit++ {
			if cleared&(1<<bit) != 0 {
				c.log.Add(c.tick, "lockout", "clear", fmt.Sprintf("button=%d", bit), float64(bit))
			}
		}
	}

	// The round countdown is consumed by the reload on a scored tick, so it
	// only advances when the pattern survived the tick.
	if !scored && c.round.Tick() {
		c.log.Add(c.tick, "round", "expired", fmt.Sprintf("score=%d", c.score.Value()), float64(c.score.Value()))
		c.advanceRound("round_expired")
	}

	if c.game.Tick() {
		c.mode = ModeGameOver
		c.log.Add(c.tick, "game", "over", fmt.Sprintf("final_score=%d", c.score.Value()), float64(c.score.Value()))
	}

	c.log.AddVerbose(c.tick, "trace", "registers",
		fmt.Sprintf("pattern=0b%07b locked=0b%08b round=%d game=%d score=%d",
			c.pattern.Current(), c.lockout.LockedMask(), c.round.Remaining(), c.game.Remaining(), c.score.Value()),
		float64(c.score.Value()))
}

// advanceRound generates the next pattern and reloads the round deadline,
// both from the current score tier.
func (c *Controller) advanceRound(reason string) {
	s := c.score.Value()
	p := c.pattern.Next(c.cfg.patternSizeFor(s))
	d := c.cfg.roundDeadlineFor(s)
	c.round.Load(d)
	c.log.Add(c.tick, "pattern", "next",
		fmt.Sprintf("pattern=0b%07b deadline=%d reason=%s", p, d, reason), float64(p))
}

func (c *Controller) outputs() Outputs {
	seg, dp := EncodeDisplay(c.mode, c.pattern.Current(), c.score.Value())
	return Outputs{Segments: seg, DecimalPoint: dp, Score: c.score.Value()}
}

// Mode returns the current top-level state.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Tick returns the number of ticks stepped so far.
func (c *Controller) Tick() int {
	return c.tick
}

// Pattern returns the current target pattern.
func (c *Controller) Pattern() Pattern {
	return c.pattern.Current()
}

// Score returns the current score register value.
func (c *Controller) Score() uint8 {
	return c.score.Value()
}

// LockedMask returns the currently locked-out buttons.
func (c *Controller) LockedMask() uint8 {
	return c.lockout.LockedMask()
}

// LockoutRemaining returns the ticks left on a button's lockout.
func (c *Controller) LockoutRemaining(bit int) int {
	return c.lockout.Remaining(bit)
}

// RoundRemaining returns the ticks left on the round deadline.
func (c *Controller) RoundRemaining() int {
	return c.round.Remaining()
}

// GameRemaining returns the ticks left on the session deadline.
func (c *Controller) GameRemaining() int {
	return c.game.Remaining()
}

// Config returns the tuning the controller was built with.
func (c *Controller) Config() Config {
	return c.cfg
}
