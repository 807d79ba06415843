package canvas

import (
	"errors"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Text layout errors.
var (
	// ErrNoFace is returned when a layout is built without a font face.
	ErrNoFace = errors.New("canvas: no font face")

	// ErrEmptyText is returned when a layout is built for an empty string.
	ErrEmptyText = errors.New("canvas: empty text")
)

// TextLayout is a measured single-line run of text in one face and color.
// Build it with [NewTextLayout]; draw it with [TextLayout.Draw].
type TextLayout struct {
	text  string
	face  text.Face
	color color.NRGBA

	width  float64
	height float64
	ascent float64
}

// NewTextLayout measures s in face. It fails when face is nil or s is empty.
func NewTextLayout(s string, face text.Face, col color.NRGBA) (*TextLayout, error) {
	if face == nil {
		return nil, ErrNoFace
	}
	if s == "" {
		return nil, ErrEmptyText
	}
	w, h := text.Measure(s, face)
	return &TextLayout{
		text:   s,
		face:   face,
		color:  col,
		width:  w,
		height: h,
		ascent: face.Metrics().Ascent,
	}, nil
}

// Text returns the laid out string.
func (l *TextLayout) Text() string { return l.text }

// Size returns the advance width and line height of the layout.
func (l *TextLayout) Size() (width, height float64) { return l.width, l.height }

// Draw draws the layout with its top-left corner at (x, y) in the current
// user space of dc.
func (l *TextLayout) Draw(dc *gg.Context, x, y float64) {
	dc.SetFont(l.face)
	setColor(dc, l.color)
	dc.DrawString(l.text, x, y+l.ascent)
}

// setColor sets the current brush from an 8-bit straight-alpha color.
func setColor(dc *gg.Context, c color.NRGBA) {
	dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}
