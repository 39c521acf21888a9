package game

import "fmt"

// TickLogEntry is one recorded controller event.
type TickLogEntry struct {
	Tick     int
	Category string  // press, lockout, round, game, pattern, trace
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=00042] press    correct        buttons=0b0100000
func (e TickLogEntry) String() string {
	return fmt.Sprintf("[T=%05d] %-8s %-14s %s", e.Tick, e.Category, e.Key, e.Value)
}

// TickLog collects structured events from a controller run. It is unbounded
// and machine-readable; tests and the session reporter filter it, and the
// cabinet surfaces recent entries in its event panel.
type TickLog struct {
	entries []TickLogEntry
	verbose bool
}

// NewTickLog creates a TickLog. If verbose is true, per-tick register traces
// are also recorded (useful for cycle-level debugging).
func NewTickLog(verbose bool) *TickLog {
	return &TickLog{verbose: verbose}
}

// Add records a new entry.
func (tl *TickLog) Add(tick int, category, key, value string, numVal float64) {
	tl.entries = append(tl.entries, TickLogEntry{
		Tick:     tick,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (tl *TickLog) AddVerbose(tick int, category, key, value string, numVal float64) {
	if !tl.verbose {
		return
	}
	tl.Add(tick, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (tl *TickLog) Entries() []TickLogEntry {
	return tl.entries
}

// Len returns the number of recorded entries.
func (tl *TickLog) Len() int {
	return len(tl.entries)
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (tl *TickLog) Filter(category, key string) []TickLogEntry {
	var out []TickLogEntry
	for _, e := range tl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Since returns entries recorded at or after the given tick.
func (tl *TickLog) Since(tick int) []TickLogEntry {
	var out []TickLogEntry
	for _, e := range tl.entries {
		if e.Tick >= tick {
			out = append(out, e)
		}
	}
	return out
}
