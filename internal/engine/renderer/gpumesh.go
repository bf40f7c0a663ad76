package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/Faultbox/meshlab/pkg/mesh"
)

// Attribute locations shared with phong.vert.
const (
	attribPosition = 0
	attribNormal   = 1
	attribTexCoord = 2
)

// GPUMesh is a mesh uploaded to vertex and index buffers.
type GPUMesh struct {
	Name       string
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
	Layout     mesh.Layout
}

// Upload copies m into new GL buffers. A current GL context is required.
func Upload(m *mesh.Mesh) (*GPUMesh, error) {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return nil, fmt.Errorf("upload %q: empty mesh", m.Name)
	}

	layout := mesh.LayoutFor(m)
	data := m.Interleave(layout)
	stride := int32(layout.Stride())

	g := &GPUMesh{Name: m.Name, IndexCount: int32(len(m.Indices)), Layout: layout}

	gl.GenVertexArrays(1, &g.VAO)
	gl.BindVertexArray(g.VAO)

	gl.GenBuffers(1, &g.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(attribPosition, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(attribPosition)
	gl.VertexAttribPointerWithOffset(attribNormal, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(attribNormal)
	if layout == mesh.LayoutPosNormalUV {
		gl.VertexAttribPointerWithOffset(attribTexCoord, 2, gl.FLOAT, false, stride, 6*4)
		gl.EnableVertexAttribArray(attribTexCoord)
	}

	// The element buffer binding is VAO state and must stay bound.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if errCode := gl.GetError(); errCode != gl.NO_ERROR {
		g.Delete()
		return nil, fmt.Errorf("upload %q: GL error 0x%x", m.Name, errCode)
	}
	return g, nil
}

// Draw issues one indexed draw call.
func (g *GPUMesh) Draw() {
	gl.BindVertexArray(g.VAO)
	gl.DrawElementsWithOffset(gl.TRIANGLES, g.IndexCount, gl.UNSIGNED_INT, 0)
}

// Delete frees the GL buffers.
func (g *GPUMesh) Delete() {
	if g.EBO != 0 {
		gl.DeleteBuffers(1, &g.EBO)
	}
	if g.VBO != 0 {
		gl.DeleteBuffers(1, &g.VBO)
	}
	if g.VAO != 0 {
		gl.DeleteVertexArrays(1, &g.VAO)
	}
	*g = GPUMesh{Name: g.Name}
}
