package mesh

import (
	"errors"
	"sync"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

// assertIndicesValid checks the index-validity invariant shared by every generator.
func assertIndicesValid(t *testing.T, m *Mesh) {
	t.Helper()
	require.Zero(t, len(m.Indices)%3, "index count must be a multiple of 3")
	for i, idx := range m.Indices {
		require.Less(t, idx, uint32(len(m.Vertices)), "index %d out of range", i)
	}
}

// assertOutwardWinding checks every non-degenerate triangle is counter-clockwise
// around its averaged vertex normal.
func assertOutwardWinding(t *testing.T, m *Mesh, indices []uint32) {
	t.Helper()
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := m.Vertices[indices[i]], m.Vertices[indices[i+1]], m.Vertices[indices[i+2]]
		fn := faceNormal(a.Position, b.Position, c.Position)
		if length(fn) < 1e-6 {
			continue
		}
		avg := [3]float32{
			a.Normal[0] + b.Normal[0] + c.Normal[0],
			a.Normal[1] + b.Normal[1] + c.Normal[1],
			a.Normal[2] + b.Normal[2] + c.Normal[2],
		}
		d := fn[0]*avg[0] + fn[1]*avg[1] + fn[2]*avg[2]
		assert.Greater(t, d, float32(0), "triangle %d (%d,%d,%d) is wound inward", i/3, indices[i], indices[i+1], indices[i+2])
	}
}

func TestSphereCounts(t *testing.T) {
	tests := []struct {
		sectors, stacks int
		wantSectors     int
		wantStacks      int
	}{
		{20, 18, 20, 18},
		{3, 2, 3, 2},
		{36, 9, 36, 9},
		{1, 1, 3, 2},  // clamped
		{-5, 0, 3, 2}, // clamped
		{4, 100, 4, 100},
	}

	for _, tt := range tests {
		m, err := Sphere(2, tt.sectors, tt.stacks)
		require.NoError(t, err)

		assert.Len(t, m.Vertices, (tt.wantStacks+1)*(tt.wantSectors+1))
		assert.Len(t, m.Indices, tt.wantStacks*tt.wantSectors*6)
		assertIndicesValid(t, m)
	}
}

func TestSphereGeometry(t *testing.T) {
	const radius = 2.5
	m, err := Sphere(radius, 24, 12)
	require.NoError(t, err)

	for i, v := range m.Vertices {
		assert.InDelta(t, 1, length(v.Normal), eps, "normal %d not unit length", i)
		assert.InDelta(t, radius, length(v.Position), eps*radius, "vertex %d not on sphere", i)
	}

	// First row is the north pole, last row the south pole.
	assert.InDelta(t, radius, m.Vertices[0].Position[1], eps)
	assert.InDelta(t, -radius, m.Vertices[len(m.Vertices)-1].Position[1], eps)

	// Seam vertices repeat the first sector exactly.
	cols := 25
	for row := 0; row <= 12; row++ {
		assert.Equal(t, m.Vertices[row*cols].Position, m.Vertices[row*cols+24].Position)
	}

	require.NoError(t, m.Validate())
}

func TestSphereFormula(t *testing.T) {
	m, err := Sphere(1, 4, 2)
	require.NoError(t, err)

	// Row 1 is the equator: sector angles 0, pi/2, pi, 3pi/2.
	equator := m.Vertices[5:10]
	want := [][3]float32{{1, 0, 0}, {0, 0, 1}, {-1, 0, 0}, {0, 0, -1}, {1, 0, 0}}
	for i, v := range equator {
		for c := range 3 {
			assert.InDelta(t, want[i][c], v.Position[c], eps, "equator vertex %d component %d", i, c)
		}
	}
}

func TestSphereWinding(t *testing.T) {
	m, err := Sphere(1, 16, 8)
	require.NoError(t, err)
	assertOutwardWinding(t, m, m.Indices)
}

func TestSphereInvalid(t *testing.T) {
	for _, r := range []float32{0, -1, math32.NaN(), math32.Inf(1)} {
		_, err := Sphere(r, 10, 10)
		require.Error(t, err, "radius %v", r)
		assert.True(t, errors.Is(err, ErrInvalidParameter))

		var pe *ParamError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "radius", pe.Param)
	}
}

func TestCylinderExample(t *testing.T) {
	m, err := Cylinder(1, 1, 2, 4)
	require.NoError(t, err)

	n := 4
	assert.Len(t, m.Vertices, 4*(n+1)+2)
	assert.Len(t, m.Indices, n*12)
	assertIndicesValid(t, m)

	base := m.Vertices[0].Position
	top := m.Vertices[n+1].Position
	for c, want := range [3]float32{1, 0, 0} {
		assert.InDelta(t, want, base[c], eps)
	}
	for c, want := range [3]float32{1, 2, 0} {
		assert.InDelta(t, want, top[c], eps)
	}
}

func TestCylinderStraightNormals(t *testing.T) {
	m, err := Cylinder(0.75, 0.75, 3, 16)
	require.NoError(t, err)

	side := 2 * 17
	for i, v := range m.Vertices[:side] {
		assert.Zero(t, v.Normal[1], "side normal %d has Y component", i)
		assert.InDelta(t, 1, length(v.Normal), eps)
	}
	require.NoError(t, m.Validate())
}

func TestCylinderCaps(t *testing.T) {
	m, err := Cylinder(1, 0.5, 2, 8)
	require.NoError(t, err)

	n := 8
	baseCenter := 2*n + 2
	topCenter := 3*n + 4
	for i := baseCenter; i < topCenter; i++ {
		assert.Equal(t, [3]float32{0, -1, 0}, m.Vertices[i].Normal)
		assert.Zero(t, m.Vertices[i].Position[1])
	}
	for i := topCenter; i < len(m.Vertices); i++ {
		assert.Equal(t, [3]float32{0, 1, 0}, m.Vertices[i].Normal)
		assert.InDelta(t, 2, m.Vertices[i].Position[1], eps)
	}

	// Cap vertices duplicate ring positions but not normals.
	assert.Equal(t, m.Vertices[0].Position, m.Vertices[baseCenter+1].Position)
	assert.NotEqual(t, m.Vertices[0].Normal, m.Vertices[baseCenter+1].Normal)
}

func TestCylinderFrustumNormals(t *testing.T) {
	m, err := Cylinder(2, 1, 1, 12)
	require.NoError(t, err)

	// Narrowing toward the top tilts side normals upward: (h cos, rb-rt, h sin).
	want := float32(1) / math32.Sqrt(2)
	for i := range 2 * 13 {
		assert.InDelta(t, want, m.Vertices[i].Normal[1], eps, "side vertex %d", i)
	}
}

func TestCylinderWinding(t *testing.T) {
	for _, tt := range []struct {
		name      string
		base, top float32
	}{
		{"cylinder", 1, 1},
		{"frustum", 1.5, 0.5},
		{"inverted frustum", 0.5, 1.5},
		{"cone", 1, 0},
	} {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Cylinder(tt.base, tt.top, 2, 10)
			require.NoError(t, err)
			assertOutwardWinding(t, m, m.Indices)
		})
	}
}

func TestConeApexRing(t *testing.T) {
	m, err := Cone(1, 2, 6)
	require.NoError(t, err)
	assert.Equal(t, "cone", m.Name)

	n := 6
	apex := m.Vertices[n+1 : 2*n+2]
	for i, v := range apex {
		for c, want := range [3]float32{0, 2, 0} {
			assert.InDelta(t, want, v.Position[c], eps, "apex vertex %d", i)
		}
	}
	distinct := map[[3]float32]bool{}
	for _, v := range apex[:n] {
		distinct[v.Normal] = true
	}
	assert.Len(t, distinct, n, "apex normals should differ per sector")
	require.NoError(t, m.Validate())
}

func TestCylinderInvalid(t *testing.T) {
	tests := []struct {
		name              string
		base, top, height float32
		param             string
	}{
		{"negative base", -1, 1, 1, "baseRadius"},
		{"negative top", 1, -0.5, 1, "topRadius"},
		{"zero height", 1, 1, 0, "height"},
		{"negative height", 1, 1, -2, "height"},
		{"nan base", math32.NaN(), 1, 1, "baseRadius"},
		{"inf height", 1, 1, math32.Inf(1), "height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Cylinder(tt.base, tt.top, tt.height, 8)
			require.ErrorIs(t, err, ErrInvalidParameter)
			var pe *ParamError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.param, pe.Param)
		})
	}
}

func TestCylinderClampsSectors(t *testing.T) {
	m, err := Cylinder(1, 1, 1, 0)
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 4*(MinSectorCount+1)+2)
}

func TestHexagonDefault(t *testing.T) {
	m, err := Hexagon(FullTexRect)
	require.NoError(t, err)

	assert.Len(t, m.Vertices, 8)
	assert.Len(t, m.Indices, 18)
	assertIndicesValid(t, m)

	assert.Equal(t, m.Vertices[1].Position, m.Vertices[7].Position)
	assert.Equal(t, [3]float32{1, 0, 0}, m.Vertices[1].Position)
	assert.InDelta(t, 1.0, m.Vertices[1].TexCoord[0], eps)
	assert.InDelta(t, 0.5, m.Vertices[1].TexCoord[1], eps)

	// Center maps to the middle of the rect.
	assert.Equal(t, [2]float32{0.5, 0.5}, m.Vertices[0].TexCoord)

	for _, v := range m.Vertices {
		assert.Equal(t, [3]float32{0, 0, 1}, v.Normal)
	}
	for i := 1; i <= 6; i++ {
		assert.Equal(t, []uint32{0, uint32(i), uint32(i + 1)}, m.Indices[(i-1)*3:i*3])
	}
	assertOutwardWinding(t, m, m.Indices)
}

func TestHexagonTexRect(t *testing.T) {
	rect := TexRect{XMin: 0.25, YMin: 0.5, XMax: 0.75, YMax: 1}
	m, err := Hexagon(rect)
	require.NoError(t, err)

	for i, v := range m.Vertices {
		assert.GreaterOrEqual(t, v.TexCoord[0], rect.XMin-eps, "vertex %d", i)
		assert.LessOrEqual(t, v.TexCoord[0], rect.XMax+eps, "vertex %d", i)
		assert.GreaterOrEqual(t, v.TexCoord[1], rect.YMin-eps, "vertex %d", i)
		assert.LessOrEqual(t, v.TexCoord[1], rect.YMax+eps, "vertex %d", i)
	}
	assert.InDelta(t, 0.75, m.Vertices[1].TexCoord[0], eps)
	assert.InDelta(t, 0.75, m.Vertices[1].TexCoord[1], eps)

	_, err = Hexagon(TexRect{XMax: math32.NaN()})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestZeroTexRectMeansFull(t *testing.T) {
	full, err := Hexagon(FullTexRect)
	require.NoError(t, err)
	zero, err := Hexagon(TexRect{})
	require.NoError(t, err)
	assert.Equal(t, full.Vertices, zero.Vertices)
	assert.Equal(t, [2]float32{1, 0.5}, zero.Vertices[1].TexCoord)

	built, err := Build(Spec{Shape: ShapeHexagon})
	require.NoError(t, err)
	assert.Equal(t, zero.Vertices, built.Vertices)

	poly, err := Polygon(5, TexRect{})
	require.NoError(t, err)
	assert.Equal(t, [2]float32{0.5, 0.5}, poly.Vertices[0].TexCoord)

	fullBox, err := Box(1, 1, 1, FullTexRect)
	require.NoError(t, err)
	zeroBox, err := Box(1, 1, 1, TexRect{})
	require.NoError(t, err)
	assert.Equal(t, fullBox.Vertices, zeroBox.Vertices)
}

func TestPolygonSides(t *testing.T) {
	for _, sides := range []int{3, 5, 8, 32} {
		m, err := Polygon(sides, FullTexRect)
		require.NoError(t, err)
		assert.Len(t, m.Vertices, sides+2)
		assert.Len(t, m.Indices, sides*3)
		assertIndicesValid(t, m)
	}

	m, err := Polygon(1, FullTexRect)
	require.NoError(t, err)
	assert.Len(t, m.Vertices, MinPolygonSides+2)
}

func TestBox(t *testing.T) {
	m, err := Box(2, 4, 6, FullTexRect)
	require.NoError(t, err)

	assert.Len(t, m.Vertices, 24)
	assert.Len(t, m.Indices, 36)
	assertIndicesValid(t, m)
	assertOutwardWinding(t, m, m.Indices)
	require.NoError(t, m.Validate())

	b := m.Bounds()
	assert.Equal(t, [3]float32{-1, -2, -3}, b.Min)
	assert.Equal(t, [3]float32{1, 2, 3}, b.Max)
	assert.Equal(t, [3]float32{2, 4, 6}, b.Size())

	_, err = Box(1, 0, 1, FullTexRect)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestValidateCatchesBadMesh(t *testing.T) {
	m := &Mesh{
		Name: "bad",
		Vertices: []Vertex{
			{Normal: [3]float32{0, 1, 0}},
			{Normal: [3]float32{0, 1, 0}},
		},
		Indices: []uint32{0, 1, 2},
	}
	assert.Error(t, m.Validate())

	m.Indices = []uint32{0, 1}
	assert.Error(t, m.Validate())

	m.Indices = []uint32{0, 1, 1}
	m.Vertices[1].Normal = [3]float32{0, 2, 0}
	assert.Error(t, m.Validate())

	m.Vertices[1].Normal = [3]float32{0, 1, 0}
	assert.NoError(t, m.Validate())
}

func TestEmptyBounds(t *testing.T) {
	var m Mesh
	assert.Equal(t, Bounds{}, m.Bounds())
}

func TestConcurrentGeneration(t *testing.T) {
	ref, err := Sphere(1, 32, 16)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*Mesh, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m, err := Sphere(1, 32, 16)
			if err == nil {
				results[i] = m
			}
		}(i)
	}
	wg.Wait()

	for i, m := range results {
		require.NotNil(t, m, "goroutine %d failed", i)
		assert.Equal(t, ref.Vertices, m.Vertices)
		assert.Equal(t, ref.Indices, m.Indices)
	}
}
