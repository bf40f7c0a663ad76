// Package mesh generates triangle meshes for parametric primitives.
//
// Every generator is a pure function of its parameters: it allocates a fresh
// Mesh and never touches shared state, so it is safe to call from multiple
// goroutines. Triangles are wound counter-clockwise when viewed from outside
// the solid and normals point outward.
package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vertex is a single mesh vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds generated vertex and index data ready for GPU upload.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32

	// HasTexCoords reports whether Vertex.TexCoord carries meaningful data.
	HasTexCoords bool
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Size returns the extent of the box on each axis.
func (b Bounds) Size() [3]float32 {
	return [3]float32{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// Center returns the midpoint of the box.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// TriangleCount returns the number of triangles described by Indices.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the vertices of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c Vertex) {
	return m.Vertices[m.Indices[i*3]], m.Vertices[m.Indices[i*3+1]], m.Vertices[m.Indices[i*3+2]]
}

// Bounds computes the bounding box of all vertex positions.
// An empty mesh returns the zero box.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for _, v := range m.Vertices[1:] {
		for i := range 3 {
			b.Min[i] = math32.Min(b.Min[i], v.Position[i])
			b.Max[i] = math32.Max(b.Max[i], v.Position[i])
		}
	}
	return b
}

// normalTolerance is how far a normal's length may drift from 1.
const normalTolerance = 1e-3

// Validate checks the structural invariants of the mesh: indices form whole
// triangles and reference existing vertices, positions are finite and
// normals are unit length.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh %q: index count %d is not a multiple of 3", m.Name, len(m.Indices))
	}
	n := uint32(len(m.Vertices))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("mesh %q: index %d at position %d out of range (%d vertices)", m.Name, idx, i, n)
		}
	}
	for i, v := range m.Vertices {
		for _, c := range v.Position {
			if !finite(c) {
				return fmt.Errorf("mesh %q: vertex %d has non-finite position %v", m.Name, i, v.Position)
			}
		}
		l := length(v.Normal)
		if math32.Abs(l-1) > normalTolerance {
			return fmt.Errorf("mesh %q: vertex %d normal %v has length %f", m.Name, i, v.Normal, l)
		}
	}
	return nil
}

// Helper functions

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

func length(v [3]float32) float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func normalize(v [3]float32) [3]float32 {
	l := length(v)
	if l == 0 {
		return [3]float32{}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// faceNormal returns the unnormalized normal of triangle abc by the
// right-hand rule; its length is twice the triangle's area.
func faceNormal(a, b, c [3]float32) [3]float32 {
	return cross(sub(b, a), sub(c, a))
}

// clampCount raises n to min.
func clampCount(n, min int) int {
	if n < min {
		return min
	}
	return n
}

// ringAngle returns the angle of step i out of n around a full circle.
// Step n maps back to angle 0 so closing vertices repeat the first position
// exactly.
func ringAngle(i, n int) float32 {
	return 2 * math32.Pi * float32(i%n) / float32(n)
}
