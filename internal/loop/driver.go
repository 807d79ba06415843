// Package loop drives the demo's single event loop.
//
// The Driver owns the window handle, the presenter, and the renderer, and
// moves between two states:
//
//	Running --(Escape | quit | render error | resize error)--> Terminated
//
// There is no way back from Terminated. Each tick first applies input
// (quit, Escape, resize) and then, if still running, redraws: a fresh gg
// context sized to the window is drawn by the renderer, its pixels are
// copied into the presenter's frame, and the frame is presented.
package loop

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/hellocanvas"
	"github.com/gogpu/hellocanvas/internal/present"
)

// State is the loop's lifecycle state.
type State int

// Loop states.
const (
	Running State = iota
	Terminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Terminated:
		return "Terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrTerminated is returned by Redraw once the loop has terminated.
var ErrTerminated = errors.New("loop: terminated")

// Window reports the drawable size of the window.
type Window interface {
	// InnerSize returns the drawable area in physical pixels.
	InnerSize() (width, height int)

	// ScaleFactor returns the ratio of physical to logical pixels.
	ScaleFactor() float64
}

// Presenter puts finished frames on screen. *present.Presenter implements it.
type Presenter interface {
	Frame() []byte
	Render(s present.Surface) error
	ResizeSurface(width, height int) error
	ResizeBuffer(width, height int) error
}

// Renderer draws one frame into a bitmap target whose user space is
// width x height. *canvas.Renderer implements it.
type Renderer interface {
	Draw(dc *gg.Context, width, height float64) error
}

// Driver runs the loop body. It is not safe for concurrent use; call it
// from the window's draw callback only.
type Driver struct {
	window    Window
	presenter Presenter
	renderer  Renderer

	state State

	now   func() time.Time
	last  time.Time
	stats io.Writer
	style func(string) string

	targetW, targetH int
}

// Option configures a Driver.
type Option func(*Driver)

// WithClock replaces time.Now for frame timing.
func WithClock(now func() time.Time) Option {
	return func(d *Driver) {
		d.now = now
	}
}

// WithStats sets where the per-frame timing line is written.
// A nil writer disables it.
func WithStats(w io.Writer) Option {
	return func(d *Driver) {
		d.stats = w
	}
}

// WithStatsStyle sets a function that decorates each timing line,
// e.g. to dim it on a color terminal.
func WithStatsStyle(style func(string) string) Option {
	return func(d *Driver) {
		d.style = style
	}
}

// New creates a running Driver.
func New(w Window, p Presenter, r Renderer, opts ...Option) *Driver {
	d := &Driver{
		window:    w,
		presenter: p,
		renderer:  r,
		state:     Running,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.last = d.now()
	return d
}

// State returns the current state.
func (d *Driver) State() State {
	return d.state
}

// Terminate moves the driver to Terminated.
func (d *Driver) Terminate() {
	d.state = Terminated
}

// LastTargetSize returns the size of the bitmap target built by the most
// recent Redraw, or 0, 0 before the first one.
func (d *Driver) LastTargetSize() (width, height int) {
	return d.targetW, d.targetH
}

// Update applies one poll worth of input and reports whether a redraw
// should follow. Every tick that leaves the loop running redraws; there is
// no damage tracking.
func (d *Driver) Update(in Input) bool {
	if d.state == Terminated {
		return false
	}
	if in.Escape || in.Quit {
		d.Terminate()
		return false
	}
	if in.Resized {
		if err := d.presenter.ResizeSurface(in.Width, in.Height); err != nil {
			hellocanvas.LogError("present.ResizeSurface", err)
			d.Terminate()
			return false
		}
		if err := d.presenter.ResizeBuffer(in.Width, in.Height); err != nil {
			hellocanvas.LogError("present.ResizeBuffer", err)
			d.Terminate()
			return false
		}
	}
	return true
}

// Redraw draws and presents one frame onto s.
//
// A window with no drawable area (minimized) is skipped. Renderer and
// presentation failures are logged with their cause chain and terminate
// the loop; the error is also returned.
func (d *Driver) Redraw(s present.Surface) error {
	if d.state == Terminated {
		return ErrTerminated
	}

	width, height := d.window.InnerSize()
	if width <= 0 || height <= 0 {
		return nil
	}
	scale := d.window.ScaleFactor()
	if scale <= 0 {
		scale = 1
	}

	dc := NewTarget(width, height, scale)
	defer func() { _ = dc.Close() }()
	d.targetW, d.targetH = width, height

	if err := d.renderer.Draw(dc, float64(width)/scale, float64(height)/scale); err != nil {
		hellocanvas.LogError("canvas.Draw", err)
		d.Terminate()
		return err
	}

	copy(d.presenter.Frame(), dc.ResizeTarget().Data())

	if err := d.presenter.Render(s); err != nil {
		hellocanvas.LogError("present.Render", err)
		d.Terminate()
		return err
	}

	then := d.last
	d.last = d.now()
	d.report(d.last.Sub(then))
	return nil
}

// Tick runs one loop iteration: apply in, then redraw if still running.
func (d *Driver) Tick(in Input, s present.Surface) error {
	if !d.Update(in) {
		return nil
	}
	return d.Redraw(s)
}

func (d *Driver) report(elapsed time.Duration) {
	if d.stats == nil {
		return
	}
	line := fmt.Sprintf("Time since last frame: %v", elapsed)
	if d.style != nil {
		line = d.style(line)
	}
	fmt.Fprintln(d.stats, line)
}

// NewTarget creates a bitmap target of width x height physical pixels whose
// user space is scaled so that one unit is one logical pixel.
func NewTarget(width, height int, scale float64) *gg.Context {
	dc := gg.NewContext(width, height)
	if scale > 0 && scale != 1 {
		dc.Scale(scale, scale)
	}
	return dc
}
