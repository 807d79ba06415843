// Package hellocanvas is a small desktop demo for the gg 2D graphics library.
//
// # Overview
//
// The program opens a gogpu window and, every frame, draws a fixed set of
// primitives into a freshly allocated off-screen gg context: a white
// background, two stroked quadratic curves, a translucent square, rotated
// and unrotated text, and a procedurally generated 256x256 bitmap scaled
// over the whole canvas. The finished pixels are copied into a frame buffer
// and presented through a GPU texture.
//
// # Architecture
//
//	window (gogpu) -> loop.Driver -> canvas.Renderer (draw into gg.Context)
//	                             -> pixel copy -> present.Presenter -> screen
//
// The repository is organized into:
//   - hellocanvas: shared logger and error-chain reporting
//   - internal/canvas: the fixed drawing sequence
//   - internal/synth: the synthetic test texture
//   - internal/present: the frame buffer presenter
//   - internal/loop: the event loop state machine
//   - internal/window: the gogpu binding
//   - internal/fonts, internal/config: embedded faces and settings
//   - cmd/hellocanvas: the executable
//
// # Logging
//
// Nothing is logged by default. Call [SetLogger] to enable output; the same
// logger is forwarded to gg.
package hellocanvas
