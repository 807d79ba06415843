// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package present

import (
	"errors"
	"testing"
)

// mockTexture implements the updatable texture interfaces for testing.
type mockTexture struct {
	width         int
	height        int
	data          []byte
	destroyed     bool
	updated       int
	premultiplied bool
	failUpdate    bool
}

func (m *mockTexture) UpdateData(data []byte) error {
	if m.failUpdate {
		return errors.New("mock update failed")
	}
	m.data = append(m.data[:0], data...)
	m.updated++
	return nil
}

func (m *mockTexture) Destroy()                  { m.destroyed = true }
func (m *mockTexture) SetPremultiplied(p bool)   { m.premultiplied = p }
func (m *mockTexture) size() (width, height int) { return m.width, m.height }

// frozenTexture can be drawn and destroyed but not updated in place.
type frozenTexture struct{ destroyed bool }

func (f *frozenTexture) Destroy() { f.destroyed = true }

// mockSurface implements Surface for testing.
type mockSurface struct {
	textures  []*mockTexture
	frozen    []*frozenTexture
	useFrozen bool
	failNew   bool
	failDraw  bool
	drawn     any
	drawCount int
	drawX     float32
	drawY     float32
}

func (m *mockSurface) NewTexture(width, height int, data []byte) (any, error) {
	if m.failNew {
		return nil, errors.New("mock texture creation failed")
	}
	if m.useFrozen {
		f := &frozenTexture{}
		m.frozen = append(m.frozen, f)
		return f, nil
	}
	tex := &mockTexture{width: width, height: height, data: append([]byte(nil), data...)}
	m.textures = append(m.textures, tex)
	return tex, nil
}

func (m *mockSurface) DrawTexture(tex any, x, y float32) error {
	if m.failDraw {
		return errors.New("mock draw failed")
	}
	m.drawn = tex
	m.drawCount++
	m.drawX, m.drawY = x, y
	return nil
}

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       error
	}{
		{"valid", 400, 400, nil},
		{"zero width", 0, 400, ErrInvalidDimensions},
		{"negative height", 400, -1, ErrInvalidDimensions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.width, tt.height)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if got := len(p.Frame()); got != tt.width*tt.height*4 {
				t.Errorf("len(Frame()) = %d, want %d", got, tt.width*tt.height*4)
			}
			if w, h := p.SurfaceSize(); w != tt.width || h != tt.height {
				t.Errorf("SurfaceSize() = %dx%d, want %dx%d", w, h, tt.width, tt.height)
			}
		})
	}
}

func TestMustNew(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew(0, 0) did not panic")
		}
	}()
	MustNew(0, 0)
}

func TestResizeKeepsBufferInLockstep(t *testing.T) {
	p := MustNew(400, 400)
	sizes := [][2]int{{640, 480}, {1, 1}, {1920, 1080}, {400, 400}}
	for _, s := range sizes {
		if err := p.ResizeSurface(s[0], s[1]); err != nil {
			t.Fatalf("ResizeSurface(%v) error = %v", s, err)
		}
		if err := p.ResizeBuffer(s[0], s[1]); err != nil {
			t.Fatalf("ResizeBuffer(%v) error = %v", s, err)
		}
		if got, want := len(p.Frame()), s[0]*s[1]*4; got != want {
			t.Errorf("after resize to %v: len(Frame()) = %d, want %d", s, got, want)
		}
		bw, bh := p.BufferSize()
		sw, sh := p.SurfaceSize()
		if bw != sw || bh != sh {
			t.Errorf("buffer %dx%d and surface %dx%d out of step", bw, bh, sw, sh)
		}
	}
}

func TestResizeInvalid(t *testing.T) {
	p := MustNew(10, 10)
	if err := p.ResizeBuffer(0, 10); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("ResizeBuffer(0, 10) error = %v, want ErrInvalidDimensions", err)
	}
	if err := p.ResizeSurface(10, 0); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("ResizeSurface(10, 0) error = %v, want ErrInvalidDimensions", err)
	}
	if len(p.Frame()) != 10*10*4 {
		t.Error("failed resize must leave the buffer untouched")
	}
}

func TestRenderCreatesTextureLazily(t *testing.T) {
	p := MustNew(4, 2)
	s := &mockSurface{}

	if p.Texture() != nil {
		t.Fatal("texture exists before first Render")
	}
	copy(p.Frame(), []byte{1, 2, 3, 4})

	if err := p.Render(s); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(s.textures) != 1 {
		t.Fatalf("created %d textures, want 1", len(s.textures))
	}
	tex := s.textures[0]
	if w, h := tex.size(); w != 4 || h != 2 {
		t.Errorf("texture size = %dx%d, want 4x2", w, h)
	}
	if !tex.premultiplied {
		t.Error("texture not marked premultiplied")
	}
	if tex.data[0] != 1 || tex.data[3] != 4 {
		t.Errorf("texture data = %v, want frame contents", tex.data[:4])
	}
	if s.drawn != tex || s.drawCount != 1 {
		t.Errorf("drawn = %v (count %d), want the created texture once", s.drawn, s.drawCount)
	}
}

func TestRenderDrawsBufferAtOrigin(t *testing.T) {
	p := MustNew(2, 2)
	s := &mockSurface{}
	if err := p.ResizeSurface(8, 8); err != nil {
		t.Fatal(err)
	}

	if err := p.Render(s); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if w, h := s.textures[0].size(); w != 2 || h != 2 {
		t.Errorf("texture size = %dx%d, want buffer size 2x2", w, h)
	}
	if s.drawX != 0 || s.drawY != 0 {
		t.Errorf("drawn at (%v, %v), want origin", s.drawX, s.drawY)
	}
}

func TestRenderReusesTexture(t *testing.T) {
	p := MustNew(2, 2)
	s := &mockSurface{}

	for i := range 3 {
		p.Frame()[0] = byte(i)
		if err := p.Render(s); err != nil {
			t.Fatalf("Render() #%d error = %v", i, err)
		}
	}
	if len(s.textures) != 1 {
		t.Fatalf("created %d textures, want 1", len(s.textures))
	}
	if got := s.textures[0].updated; got != 2 {
		t.Errorf("texture updated %d times, want 2", got)
	}
	if got := s.textures[0].data[0]; got != 2 {
		t.Errorf("texture data[0] = %d, want last frame's 2", got)
	}
}

func TestResizeDefersTextureDestruction(t *testing.T) {
	p := MustNew(2, 2)
	s := &mockSurface{}

	if err := p.Render(s); err != nil {
		t.Fatal(err)
	}
	first := s.textures[0]

	if err := p.ResizeBuffer(3, 3); err != nil {
		t.Fatal(err)
	}
	if first.destroyed {
		t.Fatal("old texture destroyed before its replacement exists")
	}

	if err := p.Render(s); err != nil {
		t.Fatal(err)
	}
	if !first.destroyed {
		t.Error("old texture not destroyed after replacement was created")
	}
	if len(s.textures) != 2 {
		t.Fatalf("created %d textures, want 2", len(s.textures))
	}
	if w, h := s.textures[1].size(); w != 3 || h != 3 {
		t.Errorf("new texture size = %dx%d, want 3x3", w, h)
	}
}

func TestRenderWithoutInPlaceUpdate(t *testing.T) {
	p := MustNew(2, 2)
	s := &mockSurface{useFrozen: true}

	for range 3 {
		if err := p.Render(s); err != nil {
			t.Fatal(err)
		}
	}
	if len(s.frozen) != 3 {
		t.Fatalf("created %d textures, want one per frame", len(s.frozen))
	}
	if !s.frozen[0].destroyed || !s.frozen[1].destroyed || s.frozen[2].destroyed {
		t.Error("only superseded textures should be destroyed")
	}
}

func TestRenderErrors(t *testing.T) {
	t.Run("nil surface", func(t *testing.T) {
		if err := MustNew(1, 1).Render(nil); !errors.Is(err, ErrNilSurface) {
			t.Errorf("Render(nil) error = %v, want ErrNilSurface", err)
		}
	})
	t.Run("create fails", func(t *testing.T) {
		err := MustNew(1, 1).Render(&mockSurface{failNew: true})
		if err == nil || errors.Unwrap(err) == nil {
			t.Errorf("Render() error = %v, want wrapped creation error", err)
		}
	})
	t.Run("update fails", func(t *testing.T) {
		p := MustNew(1, 1)
		s := &mockSurface{}
		if err := p.Render(s); err != nil {
			t.Fatal(err)
		}
		s.textures[0].failUpdate = true
		if err := p.Render(s); err == nil {
			t.Error("Render() with failing update returned nil")
		}
	})
	t.Run("draw fails", func(t *testing.T) {
		if err := MustNew(1, 1).Render(&mockSurface{failDraw: true}); err == nil {
			t.Error("Render() with failing draw returned nil")
		}
	})
}

func TestClose(t *testing.T) {
	p := MustNew(2, 2)
	s := &mockSurface{}
	if err := p.Render(s); err != nil {
		t.Fatal(err)
	}

	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !s.textures[0].destroyed {
		t.Error("Close() did not destroy the texture")
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if p.Frame() != nil {
		t.Error("Frame() after Close() should be nil")
	}
	if err := p.Render(s); !errors.Is(err, ErrClosed) {
		t.Errorf("Render() after Close() error = %v, want ErrClosed", err)
	}
	if err := p.ResizeBuffer(3, 3); !errors.Is(err, ErrClosed) {
		t.Errorf("ResizeBuffer() after Close() error = %v, want ErrClosed", err)
	}
	if err := p.ResizeSurface(3, 3); !errors.Is(err, ErrClosed) {
		t.Errorf("ResizeSurface() after Close() error = %v, want ErrClosed", err)
	}
}
