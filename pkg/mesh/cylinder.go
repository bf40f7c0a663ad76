package mesh

import "github.com/chewxy/math32"

// Cylinder builds a capped cylinder, frustum or cone standing on the XZ plane
// with its axis along +Y.
//
// Vertex layout, with n = sectorCount:
//
//	[0, n]          side wall base ring (y = 0)
//	[n+1, 2n+1]     side wall top ring (y = height)
//	2n+2            base cap center, normal -Y
//	[2n+3, 3n+3]    base cap ring
//	3n+4            top cap center, normal +Y
//	[3n+5, 4n+5]    top cap ring
//
// A topRadius of 0 yields a cone: the top ring collapses onto the apex but
// still holds one vertex per sector, each with its own slanted normal, so the
// side wall is triangulated exactly like a cylinder's.
func Cylinder(baseRadius, topRadius, height float32, sectorCount int) (*Mesh, error) {
	if err := requireNonNegative("cylinder", "baseRadius", baseRadius); err != nil {
		return nil, err
	}
	if err := requireNonNegative("cylinder", "topRadius", topRadius); err != nil {
		return nil, err
	}
	if err := requirePositive("cylinder", "height", height); err != nil {
		return nil, err
	}
	n := clampCount(sectorCount, MinSectorCount)
	ring := n + 1

	m := &Mesh{
		Name:         "cylinder",
		Vertices:     make([]Vertex, 0, 4*ring+2),
		Indices:      make([]uint32, 0, n*12),
		HasTexCoords: true,
	}
	if topRadius == 0 {
		m.Name = "cone"
	}

	// Side wall. The slant term (baseRadius-topRadius) tilts the normal
	// upward on a narrowing frustum and is zero for a straight cylinder.
	slant := baseRadius - topRadius
	for _, r := range [2]struct {
		radius float32
		y      float32
		v      float32
	}{{baseRadius, 0, 0}, {topRadius, height, 1}} {
		for j := 0; j <= n; j++ {
			a := ringAngle(j, n)
			cos, sin := math32.Cos(a), math32.Sin(a)
			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{r.radius * cos, r.y, r.radius * sin},
				Normal:   normalize([3]float32{height * cos, slant, height * sin}),
				TexCoord: [2]float32{float32(j) / float32(n), r.v},
			})
		}
	}

	base := uint32(0)
	top := uint32(ring)
	for j := 0; j < n; j++ {
		m.Indices = appendQuad(m.Indices, top+uint32(j), base+uint32(j))
	}

	// Caps get their own vertices since their normals differ from the wall's.
	baseCenter := m.appendCap(baseRadius, 0, -1, n)
	topCenter := m.appendCap(topRadius, height, 1, n)

	for j := uint32(0); j < uint32(n); j++ {
		k := baseCenter + 1 + j
		m.Indices = append(m.Indices, baseCenter, k, k+1)
	}
	for j := uint32(0); j < uint32(n); j++ {
		k := topCenter + 1 + j
		m.Indices = append(m.Indices, topCenter, k+1, k)
	}

	return m, nil
}

// Cone builds a capped cone with its apex at (0, height, 0).
func Cone(baseRadius, height float32, sectorCount int) (*Mesh, error) {
	return Cylinder(baseRadius, 0, height, sectorCount)
}

// appendCap appends a center vertex followed by n+1 ring vertices at height y,
// all facing ny on the Y axis, and returns the index of the center vertex.
func (m *Mesh) appendCap(radius, y, ny float32, n int) uint32 {
	center := uint32(len(m.Vertices))
	normal := [3]float32{0, ny, 0}
	m.Vertices = append(m.Vertices, Vertex{
		Position: [3]float32{0, y, 0},
		Normal:   normal,
		TexCoord: [2]float32{0.5, 0.5},
	})
	for j := 0; j <= n; j++ {
		a := ringAngle(j, n)
		cos, sin := math32.Cos(a), math32.Sin(a)
		m.Vertices = append(m.Vertices, Vertex{
			Position: [3]float32{radius * cos, y, radius * sin},
			Normal:   normal,
			TexCoord: [2]float32{cos*0.5 + 0.5, sin*0.5 + 0.5},
		})
	}
	return center
}
