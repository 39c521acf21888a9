package game

// Debouncer filters the raw 8-bit button vector into one-tick press pulses.
// Each bit independently counts consecutive ticks its raw sample has stayed
// unchanged; the debounced level only follows the raw level once the count
// reaches the window. A pulse is emitted on the tick the debounced level
// rises, so a bit can never pulse twice without a debounced release between.
type Debouncer struct {
	window int
	prev   uint8  // raw sample from the previous tick
	stable [8]int // consecutive unchanged samples per bit, capped at window
	level  uint8  // current debounced level per bit
}

func NewDebouncer(window int) *Debouncer {
	d := &Debouncer{window: window}
	d.Reset()
	return d
}

// Reset returns every bit to the released, stable state.
func (d *Debouncer) Reset() {
	d.prev = 0
	d.level = 0
	for i := range d.stable {
		d.stable[i] = d.window
	}
}

// Sample feeds one raw snapshot and returns the press-pulse vector for this
// tick. A glitch shorter than the window restarts that bit's count and never
// propagates; a hold of exactly window ticks pulses on its final tick.
func (d *Debouncer) Sample(raw uint8) uint8 {
	var pulse uint8
	for bit := 0; bit < 8; bit++ {
		m := uint8(1) << bit
		if raw&m == d.prev&m {
			if d.stable[bit] < d.window {
				d.stable[bit]++
			}
		} else {
			d.stable[bit] = 1
		}
		if d.stable[bit] >= d.window {
			next := (d.level &^ m) | (raw & m)
			if next&m != 0 && d.level&m == 0 {
				pulse |= m
			}
			d.level = next
		}
	}
	d.prev = raw
	return pulse
}

// Level returns the current debounced button levels (not pulses).
func (d *Debouncer) Level() uint8 {
	return d.level
}
