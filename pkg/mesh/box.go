package mesh

// boxFace describes one face of an axis-aligned box. u and v span the face so
// that u x v == normal, which keeps the quad counter-clockwise from outside.
type boxFace struct {
	normal, u, v [3]float32
}

var boxFaces = [6]boxFace{
	{normal: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},
	{normal: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
	{normal: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{0, 0, -1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}},
}

// Box builds an axis-aligned cuboid centered on the origin. Each face has
// its own four vertices so normals stay flat; UVs span rect on every face.
// A zero rect means FullTexRect.
func Box(width, height, depth float32, rect TexRect) (*Mesh, error) {
	if err := requirePositive("box", "width", width); err != nil {
		return nil, err
	}
	if err := requirePositive("box", "height", height); err != nil {
		return nil, err
	}
	if err := requirePositive("box", "depth", depth); err != nil {
		return nil, err
	}
	if rect.IsZero() {
		rect = FullTexRect
	}
	if err := rect.validate("box"); err != nil {
		return nil, err
	}

	half := [3]float32{width / 2, height / 2, depth / 2}
	m := &Mesh{
		Name:         "box",
		Vertices:     make([]Vertex, 0, 24),
		Indices:      make([]uint32, 0, 36),
		HasTexCoords: true,
	}

	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, f := range boxFaces {
		first := uint32(len(m.Vertices))
		for _, c := range corners {
			var pos [3]float32
			for i := range 3 {
				pos[i] = (f.normal[i] + f.u[i]*c[0] + f.v[i]*c[1]) * half[i]
			}
			m.Vertices = append(m.Vertices, Vertex{
				Position: pos,
				Normal:   f.normal,
				TexCoord: rect.Map(c[0], c[1]),
			})
		}
		m.Indices = append(m.Indices,
			first, first+1, first+2,
			first, first+2, first+3,
		)
	}

	return m, nil
}
