// Package fonts resolves font families to embedded TrueType faces.
//
// The demo ships its fonts inside the binary so that it renders the same
// text on every machine, with no dependency on system font directories.
package fonts

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Family names accepted by [Load].
const (
	// Go is the Go project's sans-serif face. It is the default.
	Go = "go"

	// LatinModern is Latin Modern Sans 10pt regular.
	LatinModern = "latin-modern"

	// SansSerif is the generic family name; it resolves to [Go].
	SansSerif = "sans-serif"
)

// ErrUnknownFamily is returned by Load for a family that is not embedded.
var ErrUnknownFamily = errors.New("fonts: unknown family")

var families = map[string][]byte{
	Go:          goregular.TTF,
	LatinModern: lmsans10regular.TTF,
	SansSerif:   goregular.TTF,
}

// Families returns the accepted family names in sorted order.
func Families() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Faces is a parsed font source from which sized faces are cut.
// The source is heavyweight; load it once and share it across frames.
type Faces struct {
	family string
	source *text.FontSource
}

// Load parses the embedded font for family. An empty family means [SansSerif].
func Load(family string) (*Faces, error) {
	if family == "" {
		family = SansSerif
	}
	data, ok := families[family]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownFamily, family, Families())
	}
	source, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("fonts: parse %s: %w", family, err)
	}
	return &Faces{family: family, source: source}, nil
}

// MustLoad is like Load but panics on error.
// Use only with families known to be embedded.
func MustLoad(family string) *Faces {
	f, err := Load(family)
	if err != nil {
		panic(err)
	}
	return f
}

// Family returns the family the faces were loaded for.
func (f *Faces) Family() string {
	return f.family
}

// Name returns the font's own name as recorded in the file.
func (f *Faces) Name() string {
	return f.source.Name()
}

// Face returns a face at the given size in points.
func (f *Faces) Face(size float64) text.Face {
	return f.source.Face(size)
}

// Close releases the font source.
func (f *Faces) Close() error {
	return f.source.Close()
}
