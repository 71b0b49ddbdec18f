package supervisor

import (
	"sync"
	"time"
)

// LogLine is one captured output line, stamped at append time.
type LogLine struct {
	Stamp time.Time
	Text  string
}

// String renders the line the way the UI and /api/logs present it.
func (l LogLine) String() string {
	return "[" + l.Stamp.Format("15:04:05") + "] " + l.Text
}

// LogBuffer is a fixed-capacity FIFO of timestamped output lines. The
// capture goroutine appends while status requests read snapshots, so all
// access is guarded by its own lock, independent of the supervisor mutex.
type LogBuffer struct {
	mu    sync.RWMutex
	lines []LogLine
	limit int
}

// NewLogBuffer returns an empty buffer holding at most capacity lines.
func NewLogBuffer(capacity int) *LogBuffer {
	if capacity <= 0 {
		capacity = logCapacity
	}
	return &LogBuffer{limit: capacity}
}

// Append stamps text with the current wall clock and stores it, evicting
// the oldest line once the buffer is full.
func (b *LogBuffer) Append(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.lines) == b.limit {
		copy(b.lines, b.lines[1:])
		b.lines = b.lines[:len(b.lines)-1]
	}
	b.lines = append(b.lines, LogLine{Stamp: time.Now(), Text: text})
}

// Last returns up to n most recent lines, rendered, in original order.
// n <= 0 yields an empty slice; n beyond the current length yields all.
func (b *LogBuffer) Last(n int) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if n < 0 {
		n = 0
	}
	if n > len(b.lines) {
		n = len(b.lines)
	}
	out := make([]string, 0, n)
	for _, l := range b.lines[len(b.lines)-n:] {
		out = append(out, l.String())
	}
	return out
}

// Len reports the number of buffered lines.
func (b *LogBuffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// Clear drops all buffered lines. Called at the start of every launch.
func (b *LogBuffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = b.lines[:0]
}
