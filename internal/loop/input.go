package loop

import "sync"

// Key identifies a keyboard key the loop reacts to.
type Key int

// Keys the loop distinguishes. Everything else is KeyOther.
const (
	KeyOther Key = iota
	KeyEscape
)

// Input is what happened since the previous poll.
type Input struct {
	// Escape is set when the Escape key was pressed.
	Escape bool

	// Quit is set when the window was closed or the process was asked to stop.
	Quit bool

	// Resized is set when the window changed size; Width and Height are the
	// new physical size.
	Resized       bool
	Width, Height int
}

// Tracker accumulates window events between polls.
//
// Event callbacks record into it and the loop drains it once per tick with
// Poll. Tracker is safe for concurrent use so that an OS signal watcher can
// request a quit from its own goroutine.
type Tracker struct {
	mu      sync.Mutex
	pending Input
}

// KeyPressed records a key press.
func (t *Tracker) KeyPressed(k Key) {
	if k != KeyEscape {
		return
	}
	t.mu.Lock()
	t.pending.Escape = true
	t.mu.Unlock()
}

// RequestQuit records a quit request.
func (t *Tracker) RequestQuit() {
	t.mu.Lock()
	t.pending.Quit = true
	t.mu.Unlock()
}

// Resized records a new window size. Only the latest size is kept.
func (t *Tracker) Resized(width, height int) {
	t.mu.Lock()
	t.pending.Resized = true
	t.pending.Width, t.pending.Height = width, height
	t.mu.Unlock()
}

// Poll returns the accumulated input and resets it.
func (t *Tracker) Poll() Input {
	t.mu.Lock()
	defer t.mu.Unlock()
	in := t.pending
	t.pending = Input{}
	return in
}
