// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package present

import (
	"errors"
	"fmt"

	"github.com/gogpu/hellocanvas"
)

// Common errors returned by Presenter operations.
var (
	// ErrClosed is returned when operations are attempted on a closed presenter.
	ErrClosed = errors.New("present: presenter is closed")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("present: invalid dimensions")

	// ErrNilSurface is returned when Render is called without a surface.
	ErrNilSurface = errors.New("present: nil surface")

	// ErrNilTexture is returned when a surface creates a texture but returns nil.
	ErrNilTexture = errors.New("present: surface returned nil texture")
)

// Surface is the screen side of a presenter: it turns RGBA bytes into a
// texture and draws textures onto the window.
type Surface interface {
	// NewTexture creates a texture holding premultiplied RGBA data.
	NewTexture(width, height int, data []byte) (any, error)

	// DrawTexture draws tex with its top-left corner at (x, y).
	DrawTexture(tex any, x, y float32) error
}

// textureDestroyer matches gogpu texture destruction.
type textureDestroyer interface {
	Destroy()
}

// textureUpdater matches gogpu in-place texture uploads.
type textureUpdater interface {
	UpdateData(data []byte) error
}

// Presenter owns the presentation buffer and its GPU texture.
type Presenter struct {
	frame []byte

	bufWidth, bufHeight   int
	surfWidth, surfHeight int

	texture    any // created on first Render
	oldTexture any // replaced texture awaiting destruction
	closed     bool
}

// New creates a Presenter whose buffer and surface are both width x height.
func New(width, height int) (*Presenter, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	return &Presenter{
		frame:      make([]byte, width*height*4),
		bufWidth:   width,
		bufHeight:  height,
		surfWidth:  width,
		surfHeight: height,
	}, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(width, height int) *Presenter {
	p, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return p
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

// Frame returns the RGBA buffer to write the next frame into.
// Its length is always 4 * width * height of the current buffer size.
// Returns nil if the presenter is closed.
func (p *Presenter) Frame() []byte {
	if p.closed {
		return nil
	}
	return p.frame
}

// BufferSize returns the buffer dimensions in pixels.
func (p *Presenter) BufferSize() (width, height int) {
	return p.bufWidth, p.bufHeight
}

// SurfaceSize returns the surface dimensions in pixels.
func (p *Presenter) SurfaceSize() (width, height int) {
	return p.surfWidth, p.surfHeight
}

// ResizeBuffer reallocates the frame buffer. The contents are cleared and
// the texture is recreated on the next Render.
func (p *Presenter) ResizeBuffer(width, height int) error {
	if p.closed {
		return ErrClosed
	}
	if err := checkDimensions(width, height); err != nil {
		return err
	}
	if width == p.bufWidth && height == p.bufHeight {
		return nil
	}

	p.frame = make([]byte, width*height*4)
	p.bufWidth, p.bufHeight = width, height
	p.retireTexture()

	hellocanvas.Logger().Debug("present: buffer resized", "width", width, "height", height)
	return nil
}

// ResizeSurface records the new extent of the window surface. The window
// system resizes the swapchain itself; Render does not scale to this size.
func (p *Presenter) ResizeSurface(width, height int) error {
	if p.closed {
		return ErrClosed
	}
	if err := checkDimensions(width, height); err != nil {
		return err
	}
	p.surfWidth, p.surfHeight = width, height
	return nil
}

// retireTexture moves the current texture aside so Render creates a fresh
// one. Destruction of the retired texture is deferred until then.
func (p *Presenter) retireTexture() {
	if p.texture == nil {
		return
	}
	if p.oldTexture != nil {
		destroy(p.oldTexture)
	}
	p.oldTexture = p.texture
	p.texture = nil
}

// Render uploads the frame to the GPU and draws it at the surface origin.
func (p *Presenter) Render(s Surface) error {
	if p.closed {
		return ErrClosed
	}
	if s == nil {
		return ErrNilSurface
	}

	// Without in-place updates every frame needs a fresh texture.
	if _, ok := p.texture.(textureUpdater); p.texture != nil && !ok {
		p.retireTexture()
	}

	if p.texture == nil {
		tex, err := s.NewTexture(p.bufWidth, p.bufHeight, p.frame)
		if err != nil {
			return fmt.Errorf("present: create texture: %w", err)
		}
		if tex == nil {
			return ErrNilTexture
		}
		// Frame bytes come straight out of gg and are premultiplied.
		if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}
		p.texture = tex

		// Creating the replacement waits for the GPU, so the retired
		// texture is no longer referenced.
		if p.oldTexture != nil {
			destroy(p.oldTexture)
			p.oldTexture = nil
		}
		hellocanvas.Logger().Debug("present: texture created", "width", p.bufWidth, "height", p.bufHeight)
	} else if err := p.texture.(textureUpdater).UpdateData(p.frame); err != nil {
		return fmt.Errorf("present: update texture: %w", err)
	}

	if err := s.DrawTexture(p.texture, 0, 0); err != nil {
		return fmt.Errorf("present: draw texture: %w", err)
	}
	return nil
}

// Texture returns the current texture, or nil before the first Render.
func (p *Presenter) Texture() any {
	return p.texture
}

// Close releases the textures. Close is idempotent.
func (p *Presenter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if p.oldTexture != nil {
		destroy(p.oldTexture)
		p.oldTexture = nil
	}
	if p.texture != nil {
		destroy(p.texture)
		p.texture = nil
	}
	p.frame = nil
	return nil
}

func destroy(tex any) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}
