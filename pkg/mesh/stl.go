package mesh

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// stlFacet is one 50-byte binary STL triangle record.
type stlFacet struct {
	Normal    [3]float32
	Verts     [3][3]float32
	Attribute uint16
}

// maxSTLFacets bounds the triangle count ReadSTL accepts from a header.
const maxSTLFacets = 1 << 26

// stlPrealloc caps the facets ReadSTL reserves room for up front. Larger
// files grow as facets arrive.
const stlPrealloc = 1 << 16

// WriteSTL writes m as a binary STL file. Facet normals are recomputed from
// the triangle geometry; zero-area triangles fall back to the average of
// their vertex normals.
func WriteSTL(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)

	var header [80]byte
	copy(header[:], "meshlab "+m.Name)
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(m.TriangleCount())); err != nil {
		return fmt.Errorf("writing facet count: %w", err)
	}

	for i := range m.TriangleCount() {
		a, b, c := m.Triangle(i)
		n := normalize(faceNormal(a.Position, b.Position, c.Position))
		if n == ([3]float32{}) {
			n = normalize([3]float32{
				a.Normal[0] + b.Normal[0] + c.Normal[0],
				a.Normal[1] + b.Normal[1] + c.Normal[1],
				a.Normal[2] + b.Normal[2] + c.Normal[2],
			})
		}
		facet := stlFacet{
			Normal: n,
			Verts:  [3][3]float32{a.Position, b.Position, c.Position},
		}
		if err := binary.Write(bw, binary.LittleEndian, &facet); err != nil {
			return fmt.Errorf("writing facet %d: %w", i, err)
		}
	}

	return bw.Flush()
}

// ReadSTL reads a binary STL file. Every facet becomes three vertices that
// carry the facet normal, so the result renders flat shaded.
func ReadSTL(r io.Reader) (*Mesh, error) {
	var header struct {
		Text  [80]byte
		Count uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if header.Count > maxSTLFacets {
		return nil, fmt.Errorf("facet count %d exceeds limit %d", header.Count, maxSTLFacets)
	}

	reserve := min(header.Count, stlPrealloc) * 3
	m := &Mesh{
		Name:     "stl",
		Vertices: make([]Vertex, 0, reserve),
		Indices:  make([]uint32, 0, reserve),
	}

	br := bufio.NewReader(r)
	var facet stlFacet
	for i := range header.Count {
		if err := binary.Read(br, binary.LittleEndian, &facet); err != nil {
			return nil, fmt.Errorf("reading facet %d: %w", i, err)
		}
		n := normalize(facet.Normal)
		if n == ([3]float32{}) {
			n = normalize(faceNormal(facet.Verts[0], facet.Verts[1], facet.Verts[2]))
		}
		if n == ([3]float32{}) {
			n = [3]float32{0, 1, 0}
		}
		for _, p := range facet.Verts {
			m.Indices = append(m.Indices, uint32(len(m.Vertices)))
			m.Vertices = append(m.Vertices, Vertex{Position: p, Normal: n})
		}
	}

	return m, nil
}
