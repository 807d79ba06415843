package window

import (
	"sync"

	"github.com/gogpu/hellocanvas/internal/loop"
)

// Size tracks the framebuffer size and scale factor the backend reports on
// each draw callback. It implements loop.Window.
//
// A new Size is empty, so the first observed framebuffer is always
// reported as a resize.
type Size struct {
	mu            sync.Mutex
	width, height int
	scale         float64
	override      float64
}

// NewSize returns an empty tracker. A positive override is reported as the
// scale factor instead of the display's.
func NewSize(override float64) *Size {
	return &Size{scale: 1, override: override}
}

// InnerSize returns the latest framebuffer size in physical pixels.
func (s *Size) InnerSize() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// ScaleFactor returns the physical-to-logical pixel ratio.
func (s *Size) ScaleFactor() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.override > 0 {
		return s.override
	}
	return s.scale
}

// Observe records the framebuffer size and display scale seen by a draw
// callback. A change to a drawable size is reported to t as a resize; an
// empty size (minimized window) is recorded so the frame is skipped, but
// is not a resize. A non-positive scale is recorded as 1.
// Observe reports whether a resize was recorded.
func (s *Size) Observe(width, height int, scale float64, t *loop.Tracker) bool {
	if scale <= 0 {
		scale = 1
	}
	s.mu.Lock()
	changed := width != s.width || height != s.height
	s.width, s.height = width, height
	s.scale = scale
	s.mu.Unlock()

	if !changed || width <= 0 || height <= 0 {
		return false
	}
	t.Resized(width, height)
	return true
}
