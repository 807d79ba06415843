package window

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

var (
	// ErrNoTextureCreator is returned when the draw context cannot create
	// textures.
	ErrNoTextureCreator = errors.New("window: draw context has no texture creator")

	// ErrNotTexture is returned when a value passed to DrawTexture is not a
	// gpucontext.Texture.
	ErrNotTexture = errors.New("window: not a gpucontext texture")
)

// Surface adapts a gogpu texture drawer to present.Surface.
type Surface struct {
	drawer gpucontext.TextureDrawer
}

// NewSurface wraps the texture drawer of one draw callback.
func NewSurface(drawer gpucontext.TextureDrawer) Surface {
	return Surface{drawer: drawer}
}

// NewTexture uploads premultiplied RGBA data into a new GPU texture.
func (s Surface) NewTexture(width, height int, data []byte) (any, error) {
	creator := s.drawer.TextureCreator()
	if creator == nil {
		return nil, ErrNoTextureCreator
	}
	tex, err := creator.NewTextureFromRGBA(width, height, data)
	if err != nil {
		return nil, fmt.Errorf("window: new texture %dx%d: %w", width, height, err)
	}
	return tex, nil
}

// DrawTexture draws tex with its top-left corner at (x, y).
func (s Surface) DrawTexture(tex any, x, y float32) error {
	t, ok := tex.(gpucontext.Texture)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotTexture, tex)
	}
	return s.drawer.DrawTexture(t, x, y)
}
