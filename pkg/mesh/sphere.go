package mesh

import "github.com/chewxy/math32"

// Sphere tessellation limits. Lower counts are clamped up.
const (
	MinSectorCount = 3
	MinStackCount  = 2

	DefaultSectorCount = 20
	DefaultStackCount  = 18
)

// Sphere builds a UV sphere of the given radius centered on the origin.
//
// The stack angle runs from +pi/2 (north pole) down to -pi/2 and the sector
// angle from 0 to 2pi, giving a (stackCount+1) x (sectorCount+1) vertex grid
// stored row by row from the north pole. Rows at the poles collapse to a
// single point; the zero-area triangles they produce are kept so every quad
// has the same shape in the index buffer.
func Sphere(radius float32, sectorCount, stackCount int) (*Mesh, error) {
	if err := requirePositive("sphere", "radius", radius); err != nil {
		return nil, err
	}
	sectorCount = clampCount(sectorCount, MinSectorCount)
	stackCount = clampCount(stackCount, MinStackCount)

	cols := sectorCount + 1
	m := &Mesh{
		Name:         "sphere",
		Vertices:     make([]Vertex, 0, (stackCount+1)*cols),
		Indices:      make([]uint32, 0, stackCount*sectorCount*6),
		HasTexCoords: true,
	}

	invRadius := 1 / radius
	stackStep := math32.Pi / float32(stackCount)

	for i := 0; i <= stackCount; i++ {
		stackAngle := math32.Pi/2 - float32(i)*stackStep
		xz := radius * math32.Cos(stackAngle)
		y := radius * math32.Sin(stackAngle)

		for j := 0; j <= sectorCount; j++ {
			sectorAngle := ringAngle(j, sectorCount)
			pos := [3]float32{
				xz * math32.Cos(sectorAngle),
				y,
				xz * math32.Sin(sectorAngle),
			}
			m.Vertices = append(m.Vertices, Vertex{
				Position: pos,
				Normal:   [3]float32{pos[0] * invRadius, pos[1] * invRadius, pos[2] * invRadius},
				TexCoord: [2]float32{float32(j) / float32(sectorCount), float32(i) / float32(stackCount)},
			})
		}
	}

	for i := 0; i < stackCount; i++ {
		k1 := uint32(i * cols)  // current row
		k2 := k1 + uint32(cols) // row below
		for j := 0; j < sectorCount; j++ {
			m.Indices = appendQuad(m.Indices, k1, k2)
			k1++
			k2++
		}
	}

	return m, nil
}

// appendQuad emits the two triangles joining upper-row vertices k1, k1+1 and
// lower-row vertices k2, k2+1. With sector angles increasing toward +Z this
// order is counter-clockwise seen from outside.
func appendQuad(indices []uint32, k1, k2 uint32) []uint32 {
	return append(indices,
		k1, k1+1, k2,
		k1+1, k2+1, k2,
	)
}
