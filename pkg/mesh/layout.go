package mesh

// Layout selects which attributes Interleave packs per vertex.
type Layout int

const (
	// LayoutPosNormal packs position and normal (6 floats, 24 bytes).
	LayoutPosNormal Layout = iota
	// LayoutPosNormalUV packs position, normal and texture coordinates
	// (8 floats, 32 bytes).
	LayoutPosNormalUV
)

// Components returns the number of float32 values per vertex.
func (l Layout) Components() int {
	if l == LayoutPosNormalUV {
		return 8
	}
	return 6
}

// Stride returns the size of one vertex in bytes.
func (l Layout) Stride() int {
	return l.Components() * 4
}

// String implements fmt.Stringer.
func (l Layout) String() string {
	switch l {
	case LayoutPosNormal:
		return "pos+normal"
	case LayoutPosNormalUV:
		return "pos+normal+uv"
	default:
		return "unknown"
	}
}

// LayoutFor returns the richest layout the mesh can fill.
func LayoutFor(m *Mesh) Layout {
	if m.HasTexCoords {
		return LayoutPosNormalUV
	}
	return LayoutPosNormal
}

// Interleave packs the vertices into a single float32 slice with the given
// layout, suitable for one ARRAY_BUFFER upload.
func (m *Mesh) Interleave(layout Layout) []float32 {
	n := layout.Components()
	out := make([]float32, 0, len(m.Vertices)*n)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
		)
		if layout == LayoutPosNormalUV {
			out = append(out, v.TexCoord[0], v.TexCoord[1])
		}
	}
	return out
}
