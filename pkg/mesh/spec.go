package mesh

import "fmt"

// Shape names accepted by Spec.
const (
	ShapeSphere   = "sphere"
	ShapeCylinder = "cylinder"
	ShapeCone     = "cone"
	ShapeHexagon  = "hexagon"
	ShapePolygon  = "polygon"
	ShapeBox      = "box"
)

// Shapes lists every shape Build understands.
var Shapes = []string{ShapeSphere, ShapeCylinder, ShapeCone, ShapeHexagon, ShapePolygon, ShapeBox}

// Spec is a declarative description of a mesh, as read from config and
// scene files. Fields that do not apply to Shape are ignored.
type Spec struct {
	Shape string `yaml:"shape"`

	Radius     float32 `yaml:"radius,omitempty"`
	BaseRadius float32 `yaml:"base_radius,omitempty"`
	TopRadius  float32 `yaml:"top_radius,omitempty"`
	Height     float32 `yaml:"height,omitempty"`
	Width      float32 `yaml:"width,omitempty"`
	Depth      float32 `yaml:"depth,omitempty"`

	// Zero counts fall back to the defaults passed to WithDefaults.
	Sectors int `yaml:"sectors,omitempty"`
	Stacks  int `yaml:"stacks,omitempty"`
	Sides   int `yaml:"sides,omitempty"`

	// A zero rect means FullTexRect.
	TexRect TexRect `yaml:"tex_rect,omitempty"`
}

// WithDefaults returns a copy of s with unset tessellation counts filled in.
func (s Spec) WithDefaults(sectors, stacks int) Spec {
	if s.Sectors == 0 {
		s.Sectors = sectors
	}
	if s.Stacks == 0 {
		s.Stacks = stacks
	}
	if s.Sides == 0 {
		s.Sides = HexagonSides
	}
	if s.TexRect.IsZero() {
		s.TexRect = FullTexRect
	}
	return s
}

// Build generates the mesh described by s. Unset counts use
// DefaultSectorCount and DefaultStackCount.
func Build(s Spec) (*Mesh, error) {
	s = s.WithDefaults(DefaultSectorCount, DefaultStackCount)

	switch s.Shape {
	case ShapeSphere:
		return Sphere(s.Radius, s.Sectors, s.Stacks)
	case ShapeCylinder:
		return Cylinder(s.BaseRadius, s.TopRadius, s.Height, s.Sectors)
	case ShapeCone:
		return Cone(s.BaseRadius, s.Height, s.Sectors)
	case ShapeHexagon:
		return Hexagon(s.TexRect)
	case ShapePolygon:
		return Polygon(s.Sides, s.TexRect)
	case ShapeBox:
		return Box(s.Width, s.Height, s.Depth, s.TexRect)
	default:
		return nil, fmt.Errorf("mesh: unknown shape %q", s.Shape)
	}
}
