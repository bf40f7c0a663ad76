package mesh

import "github.com/chewxy/math32"

// TexRect is the region of a texture a flat shape maps its UVs into.
type TexRect struct {
	XMin float32 `yaml:"x_min"`
	YMin float32 `yaml:"y_min"`
	XMax float32 `yaml:"x_max"`
	YMax float32 `yaml:"y_max"`
}

// FullTexRect covers the whole texture.
var FullTexRect = TexRect{XMin: 0, YMin: 0, XMax: 1, YMax: 1}

// IsZero reports whether the rect was left unset.
func (r TexRect) IsZero() bool {
	return r == TexRect{}
}

// Map converts a point in [-1,1]^2 into the rect.
func (r TexRect) Map(x, y float32) [2]float32 {
	return [2]float32{
		r.XMin + (r.XMax-r.XMin)*(x+1)/2,
		r.YMin + (r.YMax-r.YMin)*(y+1)/2,
	}
}

func (r TexRect) validate(shape string) error {
	for _, c := range []struct {
		name string
		v    float32
	}{{"xMin", r.XMin}, {"yMin", r.YMin}, {"xMax", r.XMax}, {"yMax", r.YMax}} {
		if err := requireFinite(shape, "texRect."+c.name, c.v); err != nil {
			return err
		}
	}
	return nil
}

// HexagonSides is the side count of Hexagon.
const HexagonSides = 6

// MinPolygonSides is the smallest side count Polygon produces.
const MinPolygonSides = 3

// Hexagon builds a flat regular hexagon inscribed in the unit circle on the
// XY plane, facing +Z, with UVs mapped into rect (FullTexRect when zero).
//
// The result has 8 vertices (center plus 7 perimeter vertices, the last
// repeating the first) and 18 indices.
func Hexagon(rect TexRect) (*Mesh, error) {
	m, err := Polygon(HexagonSides, rect)
	if err != nil {
		return nil, err
	}
	m.Name = "hexagon"
	return m, nil
}

// Polygon builds a regular polygon fan with the given number of sides on the
// XY plane, facing +Z. Vertex 0 is the center; perimeter vertex i sits at
// angle 2*pi*i/sides for i = 0..sides, so the final vertex closes the fan on
// the first. Sides below MinPolygonSides are clamped and a zero rect means
// FullTexRect.
func Polygon(sides int, rect TexRect) (*Mesh, error) {
	if rect.IsZero() {
		rect = FullTexRect
	}
	if err := rect.validate("polygon"); err != nil {
		return nil, err
	}
	sides = clampCount(sides, MinPolygonSides)

	normal := [3]float32{0, 0, 1}
	m := &Mesh{
		Name:         "polygon",
		Vertices:     make([]Vertex, 0, sides+2),
		Indices:      make([]uint32, 0, sides*3),
		HasTexCoords: true,
	}

	m.Vertices = append(m.Vertices, Vertex{
		Normal:   normal,
		TexCoord: rect.Map(0, 0),
	})
	for i := 0; i <= sides; i++ {
		a := ringAngle(i, sides)
		x, y := math32.Cos(a), math32.Sin(a)
		m.Vertices = append(m.Vertices, Vertex{
			Position: [3]float32{x, y, 0},
			Normal:   normal,
			TexCoord: rect.Map(x, y),
		})
	}
	for i := uint32(1); i <= uint32(sides); i++ {
		m.Indices = append(m.Indices, 0, i, i+1)
	}

	return m, nil
}
