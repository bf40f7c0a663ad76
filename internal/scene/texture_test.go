package scene

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestValidateTextures(t *testing.T) {
	src := `
textures:
  empty: {}
  both: {path: a.png, checker: {size: 4}}
  negative: {checker: {size: -1}}
materials:
  tiled: {color: [1, 1, 1], texture: missing}
meshes:
  cube: {shape: box, width: 1, height: 1, depth: 1}
pieces:
  - name: box
    parts: [{mesh: cube, material: tiled}]
`
	_, err := Parse([]byte(src))
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 4)

	msg := err.Error()
	assert.Contains(t, msg, `texture "empty": needs a path or a checker`)
	assert.Contains(t, msg, `texture "both": path and checker are exclusive`)
	assert.Contains(t, msg, `texture "negative"`)
	assert.Contains(t, msg, `material "tiled": unknown texture "missing"`)
}

func TestBuildTexturesFromFile(t *testing.T) {
	dir := t.TempDir()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	f, err := os.Create(filepath.Join(dir, "red.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	src := `
name: textured
textures:
  red: {path: red.png}
  grid: {checker: {cells: 4, a: [1, 1, 1], b: [0, 0, 0]}}
materials:
  painted: {color: [1, 1, 1], texture: red}
meshes:
  cube: {shape: box, width: 1, height: 1, depth: 1}
pieces:
  - name: box
    parts: [{mesh: cube, material: painted}]
`
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	imgs, err := s.BuildTextures()
	require.NoError(t, err)
	require.Len(t, imgs, 2)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, imgs["red"].RGBAAt(0, 0))

	grid := imgs["grid"]
	assert.Equal(t, DefaultCheckerSize, grid.Bounds().Dx())
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, grid.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{A: 255}, grid.RGBAAt(DefaultCheckerSize/4, 0))

	m, ok := s.Material("painted")
	require.True(t, ok)
	assert.Equal(t, "red", m.Texture)
}

func TestBuildTexturesMissingFile(t *testing.T) {
	s := &Scene{Textures: map[string]Texture{"gone": {Path: "gone.png"}}, dir: t.TempDir()}
	_, err := s.BuildTextures()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `texture "gone"`)
}

func TestDefaultRoomTextures(t *testing.T) {
	imgs, err := Default().BuildTextures()
	require.NoError(t, err)
	require.Contains(t, imgs, "tiles")
	assert.Equal(t, 256, imgs["tiles"].Bounds().Dx())
}

func TestRGBAClamps(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, G: 0, B: 128, A: 255}, rgba([3]float32{2, -1, 0.5}))
}
