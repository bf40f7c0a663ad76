package renderer

import (
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/Faultbox/meshlab/internal/engine/texture"
)

// GPUTexture is a 2D RGBA texture on the GPU.
type GPUTexture struct {
	ID     uint32
	Width  int
	Height int
}

// UploadTexture creates a mipmapped, repeating texture from img. Row 0 of img is
// the top of the picture.
func UploadTexture(img *image.RGBA) *GPUTexture {
	flipped := texture.FlipVertical(img)
	w, h := flipped.Rect.Dx(), flipped.Rect.Dy()

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	var pix any
	if len(flipped.Pix) > 0 {
		pix = &flipped.Pix[0]
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &GPUTexture{ID: id, Width: w, Height: h}
}

// Bind binds the texture to the given texture unit.
func (t *GPUTexture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the GPU texture.
func (t *GPUTexture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
