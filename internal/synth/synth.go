// Package synth generates the procedural test texture drawn over the canvas.
//
// The texture needs no external asset: every pixel is derived from its own
// coordinates, so it is cheap to regenerate each frame and trivially
// deterministic.
package synth

import (
	"image"

	"golang.org/x/image/draw"
)

// Size is the edge length of the texture the demo draws.
const Size = 256

// Alpha is the constant (straight, not premultiplied) alpha of every texel.
const Alpha = 127

// Data returns width*height*4 RGBA bytes with separate alpha. The texel at
// (x, y) is {x mod 256, y mod 256, 255 - x mod 256, Alpha}.
func Data(width, height int) []byte {
	if width <= 0 || height <= 0 {
		return nil
	}
	buf := make([]byte, width*height*4)
	for y := range height {
		for x := range width {
			i := (y*width + x) * 4
			buf[i+0] = uint8(x)
			buf[i+1] = uint8(y)
			buf[i+2] = ^uint8(x)
			buf[i+3] = Alpha
		}
	}
	return buf
}

// NRGBA wraps [Data] in an *image.NRGBA without copying.
func NRGBA(width, height int) *image.NRGBA {
	return &image.NRGBA{
		Pix:    Data(width, height),
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// Scaled resamples src to width x height with bilinear interpolation.
// The result keeps straight alpha.
func Scaled(src image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
