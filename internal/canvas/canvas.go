// Package canvas draws the demo scene into a gg bitmap target.
//
// A Renderer issues the same ordered sequence of drawing calls every frame.
// Later layers composite over earlier ones; there is no z-ordering beyond
// call order:
//
//  1. white background
//  2. dark red quadratic curve, bottom-left to top-right
//  3. dark green quadratic curve, top-left to bottom-right
//  4. translucent black 100x100 square at (10, 10)
//  5. translucent text, rotated 45 degrees about the origin
//  6. dark red text, unrotated
//  7. the synthetic texture, bilinear-scaled over the whole canvas
//
// and finally flushes the context.
package canvas

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/hellocanvas/internal/synth"
)

// Scene constants.
const (
	// Message is the string drawn by both text layers.
	Message = "Hello from gg + gogpu"

	// FontSize is the text size in points.
	FontSize = 24.0

	// CurveWidth is the stroke width of both curves.
	CurveWidth = 5.0
)

// Scene colors.
var (
	White     = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	DarkRed   = color.NRGBA{R: 128, G: 0, B: 0, A: 0xFF}
	DarkGreen = color.NRGBA{R: 0, G: 128, B: 0, A: 0xFF}
	HalfBlack = color.NRGBA{R: 0, G: 0, B: 0, A: 0x7F}
)

// Geometry of the fixed elements, in user-space units.
var (
	// CurveControl is the shared control point of both quadratic curves.
	CurveControl = gg.Pt(40, 50)

	// Square is the translucent square's origin and edge length.
	Square = struct{ X, Y, Size float64 }{10, 10, 100}

	// RotatedTextAt is where the rotated layer is drawn, in the rotated frame.
	RotatedTextAt = gg.Pt(80, 40)

	// TextAt is where the unrotated layer is drawn.
	TextAt = gg.Pt(100, 25)
)

// TextRotation is the rotation applied to the first text layer.
const TextRotation = math.Pi / 4

// FaceSource supplies font faces by size.
type FaceSource interface {
	Face(size float64) text.Face
}

// Renderer draws the demo scene. It holds no per-frame state and may be
// reused for any number of frames and sizes.
type Renderer struct {
	faces   FaceSource
	message string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithMessage replaces the string drawn by the text layers.
func WithMessage(s string) Option {
	return func(r *Renderer) {
		r.message = s
	}
}

// New creates a Renderer that takes text faces from faces.
func New(faces FaceSource, opts ...Option) *Renderer {
	r := &Renderer{faces: faces, message: Message}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Draw renders one complete frame into dc, whose user space is width x height.
//
// Layout and image construction failures are returned wrapped. A failure to
// flush the context at the end is ignored: the pixels composited so far are
// used as they are.
func (r *Renderer) Draw(dc *gg.Context, width, height float64) error {
	if err := r.fillBackground(dc, width, height); err != nil {
		return err
	}
	if err := r.strokeCurves(dc, width, height); err != nil {
		return err
	}
	if err := r.fillSquare(dc); err != nil {
		return err
	}

	face := r.face()
	rotated, err := NewTextLayout(r.message, face, HalfBlack)
	if err != nil {
		return fmt.Errorf("canvas: build text layout: %w", err)
	}
	if err := r.drawRotatedText(dc, rotated); err != nil {
		return err
	}

	plain, err := NewTextLayout(r.message, face, DarkRed)
	if err != nil {
		return fmt.Errorf("canvas: build text layout: %w", err)
	}
	plain.Draw(dc, TextAt.X, TextAt.Y)

	if err := r.drawTexture(dc, width, height); err != nil {
		return err
	}

	_ = dc.FlushGPU()
	return nil
}

func (r *Renderer) face() text.Face {
	if r.faces == nil {
		return nil
	}
	return r.faces.Face(FontSize)
}

func (r *Renderer) fillBackground(dc *gg.Context, width, height float64) error {
	dc.DrawRectangle(0, 0, width, height)
	setColor(dc, White)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("canvas: fill background: %w", err)
	}
	return nil
}

func (r *Renderer) strokeCurves(dc *gg.Context, width, height float64) error {
	dc.SetLineWidth(CurveWidth)

	dc.MoveTo(0, height)
	dc.QuadraticTo(CurveControl.X, CurveControl.Y, width, 0)
	setColor(dc, DarkRed)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("canvas: stroke rising curve: %w", err)
	}

	dc.MoveTo(0, 0)
	dc.QuadraticTo(CurveControl.X, CurveControl.Y, width, height)
	setColor(dc, DarkGreen)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("canvas: stroke falling curve: %w", err)
	}
	return nil
}

func (r *Renderer) fillSquare(dc *gg.Context) error {
	dc.DrawRectangle(Square.X, Square.Y, Square.Size, Square.Size)
	setColor(dc, HalfBlack)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("canvas: fill square: %w", err)
	}
	return nil
}

// drawRotatedText draws layout rotated about the canvas origin. The rotation
// is confined to a saved scope.
func (r *Renderer) drawRotatedText(dc *gg.Context, layout *TextLayout) error {
	return WithSave(dc, func(dc *gg.Context) error {
		dc.Rotate(TextRotation)
		layout.Draw(dc, RotatedTextAt.X, RotatedTextAt.Y)
		return nil
	})
}

// drawTexture draws the synthetic texture stretched over the whole canvas.
// The texture is resampled to the device size here so that gg only has to
// copy it 1:1.
func (r *Renderer) drawTexture(dc *gg.Context, width, height float64) error {
	img, err := MakeTexture(dc.Width(), dc.Height())
	if err != nil {
		return fmt.Errorf("canvas: make image: %w", err)
	}
	dc.DrawImageEx(img, gg.DrawImageOptions{
		X:             0,
		Y:             0,
		DstWidth:      width,
		DstHeight:     height,
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
	return nil
}

// MakeTexture builds the synthetic texture bilinear-scaled to width x height
// and uploads it into a straight-alpha gg image.
func MakeTexture(width, height int) (*gg.ImageBuf, error) {
	img, err := gg.NewImageBuf(width, height, gg.FormatRGBA8)
	if err != nil {
		return nil, err
	}
	scaled := synth.Scaled(synth.NRGBA(synth.Size, synth.Size), width, height)
	for y := range height {
		copy(img.RowBytes(y), scaled.Pix[y*scaled.Stride:y*scaled.Stride+width*4])
	}
	return img, nil
}

// WithSave runs fn between dc.Push and dc.Pop. The saved state is restored
// on every exit path, including a panic inside fn.
func WithSave(dc *gg.Context, fn func(*gg.Context) error) error {
	dc.Push()
	defer dc.Pop()
	return fn(dc)
}
