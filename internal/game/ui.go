package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	cabinetWidth  = 620
	cabinetHeight = 520
	scoreScale    = 3 // integer upscale for the score readout text
)

// buttonKeys maps cabinet buttons 0-7 to keyboard keys 1-8.
var buttonKeys = [8]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
}

// Cabinet is the interactive front-end: it clocks the controller at the
// configured tick rate, maps keyboard state onto the raw button pins and
// renders the display, score LEDs and lockout state.
type Cabinet struct {
	width  int
	height int

	ctrl     *Controller
	log      *TickLog
	events   *EventLog
	reporter *SessionReporter
	out      Outputs

	logCursor int // next TickLog index to surface in the event panel

	prevKeys map[ebiten.Key]bool

	// Simulation speed control, multiplier: 0=paused, 0.5, 1, 2, 4.
	simSpeed  float64
	tickAccum float64

	// "report copied" toast countdown, in frames.
	toastFrames int
	toastMsg    string

	scoreBuf *ebiten.Image
}

// NewCabinet builds the front-end around a freshly seeded controller.
func NewCabinet() *Cabinet {
	cfg := DefaultConfig()
	// Low bits of the wall clock; forced non-zero so the register can run.
	cfg.Seed = uint8(time.Now().UnixNano()) | 1
	ctrl, err := NewController(cfg)
	if err != nil {
		// DefaultConfig is validated by tests; reaching this is a build
		// defect, not a runtime condition.
		panic(err)
	}
	tl := NewTickLog(false)
	ctrl.AttachLog(tl)
	c := &Cabinet{
		width:    cabinetWidth + logPanelWidth,
		height:   cabinetHeight,
		ctrl:     ctrl,
		log:      tl,
		events:   NewEventLog(),
		reporter: NewSessionReporter(0),
		prevKeys: make(map[ebiten.Key]bool),
		simSpeed: 1.0,
		scoreBuf: ebiten.NewImage(120, 20),
	}
	c.out = ctrl.outputs()
	return c
}

// rawButtons samples the keyboard into the 8-bit raw pin vector.
func (c *Cabinet) rawButtons() uint8 {
	var raw uint8
	for bit, k := range buttonKeys {
		if ebiten.IsKeyPressed(k) {
			raw |= 1 << bit
		}
	}
	return raw
}

func (c *Cabinet) Update() error {
	c.handleInput()

	if c.toastFrames > 0 {
		c.toastFrames--
	}
	if c.simSpeed <= 0 {
		return nil
	}

	// For speeds > 1 run multiple controller ticks per frame; for speeds
	// < 1 accumulate fractions. The pin snapshot is re-sampled every tick.
	c.tickAccum += c.simSpeed
	for c.tickAccum >= 1.0 {
		c.tickAccum -= 1.0
		c.stepOnce()
	}
	return nil
}

// stepOnce advances the controller one tick and drains new log entries into
// the on-screen event panel.
func (c *Cabinet) stepOnce() {
	in := Inputs{
		ResetActive: ebiten.IsKeyPressed(ebiten.KeyR),
		RawButtons:  c.rawButtons(),
	}
	c.out = c.ctrl.Step(in)

	entries := c.log.Entries()
	for ; c.logCursor < len(entries); c.logCursor++ {
		e := entries[c.logCursor]
		if e.Category == "trace" {
			continue
		}
		c.events.Add(e.Tick, fmt.Sprintf("%s %s %s", e.Category, e.Key, e.Value))
	}

	if c.ctrl.Tick()%DefaultTickRate == 0 {
		c.reporter.Collect(c.ctrl, c.log)
	}
}

// handleInput processes edge-triggered control keys.
func (c *Cabinet) handleInput() {
	currentKeys := map[ebiten.Key]bool{}

	// P: pause/resume.
	currentKeys[ebiten.KeyP] = ebiten.IsKeyPressed(ebiten.KeyP)
	if currentKeys[ebiten.KeyP] && !c.prevKeys[ebiten.KeyP] {
		if c.simSpeed > 0 {
			c.simSpeed = 0
		} else {
			c.simSpeed = 1
		}
	}

	// ,/.: slower/faster.
	speeds := []float64{0, 0.5, 1, 2, 4}
	currentKeys[ebiten.KeyComma] = ebiten.IsKeyPressed(ebiten.KeyComma)
	if currentKeys[ebiten.KeyComma] && !c.prevKeys[ebiten.KeyComma] {
		for i, s := range speeds {
			if s >= c.simSpeed && i > 0 {
				c.simSpeed = speeds[i-1]
				break
			}
		}
	}
	currentKeys[ebiten.KeyPeriod] = ebiten.IsKeyPressed(ebiten.KeyPeriod)
	if currentKeys[ebiten.KeyPeriod] && !c.prevKeys[ebiten.KeyPeriod] {
		for i, s := range speeds {
			if s <= c.simSpeed && i < len(speeds)-1 && speeds[i+1] > c.simSpeed {
				c.simSpeed = speeds[i+1]
				break
			}
		}
	}

	// C: copy the session report to the clipboard.
	currentKeys[ebiten.KeyC] = ebiten.IsKeyPressed(ebiten.KeyC)
	if currentKeys[ebiten.KeyC] && !c.prevKeys[ebiten.KeyC] {
		report := BuildSessionReport(c.ctrl, c.log, c.reporter, 20)
		if err := clipboard.WriteAll(report); err != nil {
			c.toastMsg = "clipboard unavailable"
		} else {
			c.toastMsg = "report copied"
		}
		c.toastFrames = 90
	}

	c.prevKeys = currentKeys
}

// Segment geometry for the big 7-segment digit. Segments 0-6 are a-g in the
// usual order: a top, b top-right, c bottom-right, d bottom, e bottom-left,
// f top-left, g middle.
type segRect struct {
	x, y, w, h float32
}

func segmentRects(x, y, size float32) [7]segRect {
	t := size / 6 // segment thickness
	l := size     // segment length
	return [7]segRect{
		{x + t, y, l, t},               // a
		{x + t + l, y + t, t, l},       // b
		{x + t + l, y + 2*t + l, t, l}, // c
		{x + t, y + 2*t + 2*l, l, t},   // d
		{x, y + 2*t + l, t, l},         // e
		{x, y + t, t, l},               // f
		{x + t, y + t + l, l, t},       // g
	}
}

func (c *Cabinet) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	lit := LitSegments(c.out.Segments)
	segOn := color.RGBA{R: 255, G: 60, B: 40, A: 255}
	segOff := color.RGBA{R: 44, G: 24, B: 22, A: 255}

	// Display bezel.
	bx, by := float32(60), float32(40)
	vector.FillRect(screen, bx-20, by-20, 260, 320, color.RGBA{R: 8, G: 8, B: 10, A: 255}, false)
	vector.StrokeRect(screen, bx-20, by-20, 260, 320, 2, color.RGBA{R: 60, G: 60, B: 70, A: 255}, false)

	rects := segmentRects(bx+30, by+10, 110)
	for i, r := range rects {
		col := segOff
		if lit&(1<<i) != 0 {
			col = segOn
		}
		vector.FillRect(screen, r.x, r.y, r.w, r.h, col, false)
	}

	// Decimal point, lower right of the digit.
	dpCol := segOff
	if c.out.DecimalPoint {
		dpCol = segOn
	}
	vector.FillCircle(screen, bx+200, by+265, 9, dpCol, false)

	c.drawScoreLEDs(screen, bx-10, by+330)
	c.drawButtons(screen, 60, 430)
	c.drawTimers(screen, 340, 60)
	c.drawScoreReadout(screen, 340, 180)
	c.drawHUD(screen)

	c.events.Draw(screen, cabinetWidth, c.height)

	if c.toastFrames > 0 {
		ebitenutil.DebugPrintAt(screen, c.toastMsg, 60, c.height-20)
	}
}

// drawScoreLEDs renders the live score register as a row of eight LEDs,
// LSB on the right, the way the original board exposed led_score.
func (c *Cabinet) drawScoreLEDs(screen *ebiten.Image, x, y float32) {
	on := color.RGBA{R: 70, G: 240, B: 90, A: 255}
	off := color.RGBA{R: 22, G: 48, B: 26, A: 255}
	for i := 0; i < 8; i++ {
		col := off
		if c.out.Score&(1<<(7-i)) != 0 {
			col = on
		}
		vector.FillCircle(screen, x+float32(i)*28+10, y+10, 7, col, false)
	}
	ebitenutil.DebugPrintAt(screen, "SCORE LEDS", int(x), int(y)+24)
}

// drawButtons renders the eight buttons with held and locked-out state.
func (c *Cabinet) drawButtons(screen *ebiten.Image, x, y float32) {
	raw := c.rawButtons()
	locked := c.ctrl.LockedMask()
	cfg := c.ctrl.Config()
	for i := 0; i < 8; i++ {
		bxp := x + float32(i)*62
		fill := color.RGBA{R: 40, G: 40, B: 48, A: 255}
		if raw&(1<<i) != 0 {
			fill = color.RGBA{R: 90, G: 90, B: 120, A: 255}
		}
		vector.FillRect(screen, bxp, y, 52, 36, fill, false)
		vector.StrokeRect(screen, bxp, y, 52, 36, 1, color.RGBA{R: 90, G: 90, B: 100, A: 255}, false)
		if locked&(1<<i) != 0 {
			// Red wash plus a shrinking bar for the remaining lockout.
			vector.FillRect(screen, bxp, y, 52, 36, color.RGBA{R: 160, G: 30, B: 30, A: 90}, false)
			frac := float32(c.ctrl.LockoutRemaining(i)) / float32(cfg.LockoutTicks)
			vector.FillRect(screen, bxp, y+32, 52*frac, 4, color.RGBA{R: 230, G: 60, B: 50, A: 255}, false)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", i+1), int(bxp)+23, int(y)+10)
	}
}

// drawTimers renders the round and game countdowns as depleting bars.
func (c *Cabinet) drawTimers(screen *ebiten.Image, x, y float32) {
	cfg := c.ctrl.Config()
	roundMax := cfg.roundDeadlineFor(c.ctrl.Score())
	drawBar := func(y float32, label string, left, max int, col color.RGBA) {
		ebitenutil.DebugPrintAt(screen, label, int(x), int(y)-16)
		vector.FillRect(screen, x, y, 220, 10, color.RGBA{R: 30, G: 30, B: 36, A: 255}, false)
		if max > 0 {
			frac := float32(left) / float32(max)
			if frac > 1 {
				frac = 1
			}
			vector.FillRect(screen, x, y, 220*frac, 10, col, false)
		}
	}
	drawBar(y, "ROUND", c.ctrl.RoundRemaining(), roundMax, color.RGBA{R: 240, G: 180, B: 40, A: 255})
	drawBar(y+50, "GAME", c.ctrl.GameRemaining(), cfg.GameDeadline, color.RGBA{R: 70, G: 150, B: 240, A: 255})
}

// drawScoreReadout renders the numeric score at scoreScale via an offscreen
// buffer so the bitmap font stays crisp when enlarged.
func (c *Cabinet) drawScoreReadout(screen *ebiten.Image, x, y float64) {
	c.scoreBuf.Clear()
	msg := fmt.Sprintf("SCORE %3d", c.out.Score)
	if c.ctrl.Mode() == ModeGameOver {
		msg = fmt.Sprintf("FINAL %3d", c.out.Score)
	}
	text.Draw(c.scoreBuf, msg, basicfont.Face7x13, 0, 14, color.White)
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(scoreScale, scoreScale)
	opts.GeoM.Translate(x, y)
	screen.DrawImage(c.scoreBuf, opts)
}

// drawHUD renders the key legend and sim state.
func (c *Cabinet) drawHUD(screen *ebiten.Image) {
	speedStr := fmt.Sprintf("%gx", c.simSpeed)
	if c.simSpeed == 0 {
		speedStr = "PAUSED"
	}
	lines := []string{
		fmt.Sprintf("SIM: %s  P=pause  ,/. speed", speedStr),
		"KEYS: 1-8 buttons  R=reset  C=copy report",
		fmt.Sprintf("MODE: %s  tick=%d", c.ctrl.Mode(), c.ctrl.Tick()),
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 340, 260+i*14)
	}
}

func (c *Cabinet) Layout(_, _ int) (int, int) {
	return c.width, c.height
}
