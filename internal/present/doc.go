// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package present copies finished frames to the screen.
//
// A Presenter owns a window-sized RGBA frame buffer. Each frame the caller
// writes pixels into [Presenter.Frame] and calls [Presenter.Render], which
// moves the buffer to the screen through a [Surface]:
//
//	Frame() (CPU bytes) -> GPU texture -> Surface -> window
//
// # Sizes
//
// The buffer size and the surface size are tracked separately and resized
// separately, mirroring how the window system reports them. Callers must
// resize both whenever the window size changes, otherwise the copied frame
// no longer matches what the surface shows. The surface size is
// bookkeeping only: gogpu resizes its swapchain itself, and Render always
// draws the texture 1:1 at the surface origin.
//
// # Textures
//
//   - The texture is created lazily on the first Render
//   - A buffer resize replaces the texture; the old one is destroyed only
//     after its replacement exists, since in-flight GPU work may still read it
//   - Textures are duck-typed: anything with Destroy() is destroyed, anything
//     with UpdateData([]byte) error is updated in place
//
// # Thread Safety
//
// Presenter is NOT safe for concurrent use. It is meant to be driven from
// the window's draw callback only.
package present
