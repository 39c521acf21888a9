package game

import "testing"

func TestCountdown_PulsesOnExactTick(t *testing.T) {
	var c Countdown
	c.Load(3)
	if c.Tick() || c.Tick() {
		t.Fatal("countdown pulsed before reaching zero")
	}
	if !c.Tick() {
		t.Fatal("countdown must pulse on the tick it reaches zero")
	}
}

func TestCountdown_PulseIsOneTick(t *testing.T) {
	var c Countdown
	c.Load(1)
	if !c.Tick() {
		t.Fatal("expected pulse on first tick")
	}
	for i := 0; i < 5; i++ {
		if c.Tick() {
			t.Fatal("expired countdown must stay silent until reloaded")
		}
	}
	if c.Remaining() != 0 {
		t.Fatalf("expired countdown should sit at zero, got %d", c.Remaining())
	}
}

func TestCountdown_Reload(t *testing.T) {
	var c Countdown
	c.Load(2)
	c.Tick()
	c.Load(4)
	if c.Remaining() != 4 {
		t.Fatalf("reload should replace the remaining count, got %d", c.Remaining())
	}
	c.Tick()
	c.Tick()
	c.Tick()
	if !c.Tick() {
		t.Fatal("reloaded countdown should pulse after its full duration")
	}
}

func TestCountdown_ZeroNeverPulses(t *testing.T) {
	var c Countdown
	for i := 0; i < 3; i++ {
		if c.Tick() {
			t.Fatal("an unloaded countdown must not pulse")
		}
	}
}
