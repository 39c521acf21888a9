package game

import "fmt"

// TestBench drives a Controller deterministically, the way the hardware
// bench clocked the DUT: feed a raw pin snapshot, advance one tick, sample
// the registered outputs. It has no renderer and is used by tests and the
// headless runner.
type TestBench struct {
	Controller *Controller
	Log        *TickLog
	Last       Outputs

	cfg Config
}

// BenchOption is a builder function applied to a TestBench configuration.
type BenchOption func(*Config, *bool)

// WithConfig replaces the whole tuning.
func WithConfig(cfg Config) BenchOption {
	return func(c *Config, _ *bool) { *c = cfg }
}

// WithSeed sets the pattern-register seed for deterministic runs.
func WithSeed(seed uint8) BenchOption {
	return func(c *Config, _ *bool) { c.Seed = seed }
}

// WithDebounceWindow overrides the debounce window.
func WithDebounceWindow(ticks int) BenchOption {
	return func(c *Config, _ *bool) { c.DebounceWindow = ticks }
}

// WithLockoutTicks overrides the lockout duration.
func WithLockoutTicks(ticks int) BenchOption {
	return func(c *Config, _ *bool) { c.LockoutTicks = ticks }
}

// WithGameDeadline overrides the session deadline.
func WithGameDeadline(ticks int) BenchOption {
	return func(c *Config, _ *bool) { c.GameDeadline = ticks }
}

// WithVerbose enables per-tick register traces in the log.
func WithVerbose(v bool) BenchOption {
	return func(_ *Config, verbose *bool) { *verbose = v }
}

// NewTestBench builds a bench around a fresh controller. Options apply to a
// copy of DefaultConfig. A config the options render invalid is a defect in
// the test itself, so this panics rather than returning an error.
func NewTestBench(opts ...BenchOption) *TestBench {
	cfg := DefaultConfig()
	verbose := false
	for _, o := range opts {
		o(&cfg, &verbose)
	}
	ctrl, err := NewController(cfg)
	if err != nil {
		panic(fmt.Sprintf("bench config: %v", err))
	}
	tl := NewTickLog(verbose)
	ctrl.AttachLog(tl)
	tb := &TestBench{Controller: ctrl, Log: tl, cfg: cfg}
	tb.Last = ctrl.outputs()
	return tb
}

// Config returns the tuning the bench was built with.
func (tb *TestBench) Config() Config {
	return tb.cfg
}

// StepRaw feeds one raw button snapshot for one tick.
func (tb *TestBench) StepRaw(raw uint8) Outputs {
	tb.Last = tb.Controller.Step(Inputs{RawButtons: raw})
	return tb.Last
}

// RunTicks advances n idle ticks (no buttons, reset released).
func (tb *TestBench) RunTicks(n int) Outputs {
	for i := 0; i < n; i++ {
		tb.StepRaw(0)
	}
	return tb.Last
}

// HoldReset asserts reset for n ticks.
func (tb *TestBench) HoldReset(n int) Outputs {
	for i := 0; i < n; i++ {
		tb.Last = tb.Controller.Step(Inputs{ResetActive: true})
	}
	return tb.Last
}

// HoldButtons asserts the given buttons for n ticks.
func (tb *TestBench) HoldButtons(mask uint8, n int) Outputs {
	for i := 0; i < n; i++ {
		tb.StepRaw(mask)
	}
	return tb.Last
}

// PressButtons holds the buttons for exactly one debounce window (producing
// a single press pulse on the final tick) and then releases them for another
// window so a following press can register.
func (tb *TestBench) PressButtons(mask uint8) Outputs {
	tb.HoldButtons(mask, tb.cfg.DebounceWindow)
	out := tb.Last
	tb.RunTicks(tb.cfg.DebounceWindow)
	return out
}

// PressPattern presses exactly the currently lit segments. Sampled before
// the hold starts, so the press targets the pattern that was on display.
func (tb *TestBench) PressPattern() Outputs {
	return tb.PressButtons(uint8(tb.Controller.Pattern()))
}

// LitSegments returns the segments lit by the last sampled output.
func (tb *TestBench) LitSegments() uint8 {
	return LitSegments(tb.Last.Segments)
}
