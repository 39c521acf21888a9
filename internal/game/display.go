package game

// digitGlyphs holds the active-low 7-segment encodings for the sixteen hex
// digits. Bit order MSB..LSB is segment 6..0 (g f e d c b a); a cleared bit
// lights its segment.
var digitGlyphs = [16]uint8{
	0b1000000, // 0
	0b1111001, // 1
	0b0100100, // 2
	0b0110000, // 3
	0b0011001, // 4
	0b0010010, // 5
	0b0000010, // 6
	0b1111000, // 7
	0b0000000, // 8
	0b0010000, // 9
	0b0001000, // A
	0b0000011, // b
	0b1000110, // C
	0b0100001, // d
	0b0000110, // E
	0b0001110, // F
}

// DigitGlyph returns the active-low glyph for the low hex digit of v.
func DigitGlyph(v uint8) uint8 {
	return digitGlyphs[v&0x0f]
}

// EncodeDisplay maps the controller mode to the segment and decimal-point
// outputs. While playing, the target pattern drives the segments directly
// (lit segment = cleared bit) and the decimal point is lit. In game over,
// the segments show the hex digit of the frozen score and the point is dark.
func EncodeDisplay(mode Mode, pattern Pattern, score uint8) (seg uint8, dp bool) {
	if mode == ModeGameOver {
		return DigitGlyph(score), false
	}
	return ^uint8(pattern) & 0x7f, true
}

// LitSegments decodes an active-low segment vector back into the set of lit
// segments. Handy for tests and for rendering.
func LitSegments(seg uint8) uint8 {
	return ^seg & 0x7f
}
