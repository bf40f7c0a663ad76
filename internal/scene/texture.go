package scene

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/meshlab/internal/engine/texture"
)

// Texture is an image source for materials. Exactly one of Path and
// Checker is set.
type Texture struct {
	// Path is relative to the scene file. TGA, PNG, JPEG and BMP load.
	Path    string   `yaml:"path,omitempty"`
	Checker *Checker `yaml:"checker,omitempty"`
}

// Checker is a generated checkerboard.
type Checker struct {
	Size  int        `yaml:"size"`
	Cells int        `yaml:"cells"`
	A     [3]float32 `yaml:"a"`
	B     [3]float32 `yaml:"b"`
}

// DefaultCheckerSize is the edge length in pixels of a checker without one.
const DefaultCheckerSize = 256

func (t Texture) validate() error {
	switch {
	case t.Path == "" && t.Checker == nil:
		return errors.New("needs a path or a checker")
	case t.Path != "" && t.Checker != nil:
		return errors.New("path and checker are exclusive")
	case t.Checker != nil && (t.Checker.Size < 0 || t.Checker.Cells < 0):
		return fmt.Errorf("checker size %d and cells %d must not be negative", t.Checker.Size, t.Checker.Cells)
	}
	return nil
}

// decode produces the RGBA pixels for t, resolving Path against dir.
func (t Texture) decode(dir string) (*image.RGBA, error) {
	if c := t.Checker; c != nil {
		size := c.Size
		if size == 0 {
			size = DefaultCheckerSize
		}
		return texture.Checker(size, c.Cells, rgba(c.A), rgba(c.B)), nil
	}
	path := t.Path
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	return texture.Load(path)
}

// BuildTextures decodes or generates every texture the scene declares.
func (s *Scene) BuildTextures() (map[string]*image.RGBA, error) {
	out := make(map[string]*image.RGBA, len(s.Textures))
	var mu sync.Mutex
	var g errgroup.Group

	for _, name := range sortedKeys(s.Textures) {
		tex := s.Textures[name]
		g.Go(func() error {
			img, err := tex.decode(s.dir)
			if err != nil {
				return fmt.Errorf("texture %q: %w", name, err)
			}
			mu.Lock()
			out[name] = img
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func rgba(c [3]float32) color.RGBA {
	ch := func(v float32) uint8 {
		return uint8(min(max(v, 0), 1)*255 + 0.5)
	}
	return color.RGBA{R: ch(c[0]), G: ch(c[1]), B: ch(c[2]), A: 255}
}
