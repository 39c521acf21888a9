package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logPanelWidth = 300
	logMaxEntries = 28
	logLineHeight = 14
)

// EventEntry is a single line in the on-screen event log.
type EventEntry struct {
	Tick    int
	Message string
}

// EventLog is a ring buffer of recent game events rendered in the cabinet's
// side panel. Unlike TickLog it is bounded and display-only.
type EventLog struct {
	entries []EventEntry
	head    int
	count   int
}

// NewEventLog creates an event log with a fixed capacity.
func NewEventLog() *EventLog {
	return &EventLog{entries: make([]EventEntry, logMaxEntries)}
}

// Add appends an entry to the log.
func (el *EventLog) Add(tick int, msg string) {
	el.entries[el.head] = EventEntry{Tick: tick, Message: msg}
	el.head = (el.head + 1) % logMaxEntries
	if el.count < logMaxEntries {
		el.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (el *EventLog) Recent() []EventEntry {
	result := make([]EventEntry, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.head - el.count + i + logMaxEntries) % logMaxEntries
		result[i] = el.entries[idx]
	}
	return result
}

// Draw renders the event panel on the right side of the screen.
func (el *EventLog) Draw(screen *ebiten.Image, panelX, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH),
		color.RGBA{R: 12, G: 12, B: 16, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH),
		1.0, color.RGBA{R: 70, G: 70, B: 90, A: 255}, false)

	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+10, 8)
	y := 28
	for _, e := range el.Recent() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("[%05d] %s", e.Tick, e.Message), panelX+10, y)
		y += logLineHeight
	}
}
