// Package window binds the loop driver to a gogpu window.
//
// gogpu owns the platform event loop. Each draw callback it delivers is one
// tick of the driver: input gathered since the previous callback is polled
// from a [loop.Tracker], and the frame is presented through the callback's
// texture drawer.
//
// The driver works in physical pixels. Each tick reads the framebuffer size
// and the display scale factor from the draw context, never its logical
// (DIP) size.
package window

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/hellocanvas"
	"github.com/gogpu/hellocanvas/internal/loop"
	"github.com/gogpu/hellocanvas/internal/present"
)

// Window is a gogpu application window driven by a loop.Driver.
type Window struct {
	app     *gogpu.App
	quit    func()
	size    *Size
	tracker *loop.Tracker
	closers []func()
}

// New creates the application window with a logical size of
// width x height. Nothing is shown until Run.
//
// A positive scale overrides the display's scale factor; zero follows the
// display.
func New(title string, width, height int, scale float64) *Window {
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(title).
		WithSize(width, height).
		WithContinuousRender(true))
	return &Window{
		app:     app,
		quit:    app.Quit,
		size:    NewSize(scale),
		tracker: &loop.Tracker{},
	}
}

// Size returns the window's size tracker. Pass it to loop.New.
func (w *Window) Size() *Size {
	return w.size
}

// OnClose registers fn to run when the window closes, while the GPU device
// is still alive. Release GPU resources such as the presenter here.
func (w *Window) OnClose(fn func()) {
	w.closers = append(w.closers, fn)
}

// Frame is what one draw callback hands to the loop.
type Frame struct {
	// Width and Height are the framebuffer size in physical pixels.
	Width, Height int

	// Scale is the display's physical-to-logical pixel ratio.
	Scale float64

	// Surface presents textures onto the window.
	Surface present.Surface
}

// frameOf reads a Frame from a gogpu draw context.
func frameOf(dc *gogpu.Context) Frame {
	fw, fh := dc.FramebufferSize()
	return Frame{
		Width:   int(fw),
		Height:  int(fh),
		Scale:   float64(dc.ScaleFactor()),
		Surface: NewSurface(dc.AsTextureDrawer()),
	}
}

// Step runs one loop tick for frame f: it records the framebuffer size and
// scale, polls pending input into d, and quits the application once d has
// terminated. It returns the frame error that terminated d, if any.
func (w *Window) Step(d *loop.Driver, f Frame) error {
	if d.State() == loop.Terminated {
		w.quit()
		return nil
	}
	w.size.Observe(f.Width, f.Height, f.Scale, w.tracker)

	err := d.Tick(w.tracker.Poll(), f.Surface)
	if d.State() == loop.Terminated {
		hellocanvas.Logger().Debug("window: loop terminated, quitting")
		w.quit()
	}
	return err
}

// Run shows the window and blocks until the driver terminates, the window
// is closed, or ctx is done. SIGINT and SIGTERM request a quit.
//
// The returned error is the first frame error that terminated the loop,
// joined with any error from gogpu itself. A quit or Escape returns nil.
func (w *Window) Run(ctx context.Context, d *loop.Driver) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go QuitOnDone(ctx, w.tracker)

	var frameErr error
	w.app.OnDraw(func(dc *gogpu.Context) {
		if err := w.Step(d, frameOf(dc)); err != nil && frameErr == nil {
			frameErr = err
		}
	})

	w.app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		w.tracker.KeyPressed(MapKey(key))
	})

	w.app.OnClose(func() {
		w.tracker.RequestQuit()
		d.Terminate()
		for _, fn := range w.closers {
			fn()
		}
	})

	return errors.Join(frameErr, w.app.Run())
}

// QuitOnDone requests a quit on t once ctx is done.
func QuitOnDone(ctx context.Context, t *loop.Tracker) {
	<-ctx.Done()
	t.RequestQuit()
}

// MapKey translates a gogpu key to the keys the loop reacts to.
func MapKey(key gpucontext.Key) loop.Key {
	if key == gpucontext.KeyEscape {
		return loop.KeyEscape
	}
	return loop.KeyOther
}
