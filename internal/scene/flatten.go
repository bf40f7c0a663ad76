package scene

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshlab/pkg/math"
	"github.com/Faultbox/meshlab/pkg/mesh"
)

// DrawItem is one mesh instance ready to render.
type DrawItem struct {
	Piece    string
	Mesh     string
	Material Material
	Model    math.Mat4
}

// Flatten expands pieces into draw items in scene order, with
// Model = global * piece * spin * part. Spinning pieces turn by spinDeg
// degrees about their local Y axis.
func (s *Scene) Flatten(global math.Mat4, spinDeg float32) []DrawItem {
	var items []DrawItem
	for _, p := range s.Pieces {
		pm := global.Mul(p.Transform.Matrix())
		if p.Spin {
			pm = pm.Mul(math.RotateY(math.Radians(spinDeg)))
		}
		for _, part := range p.Parts {
			mat, ok := s.Material(part.Material)
			if !ok {
				mat = DefaultMaterial()
			}
			items = append(items, DrawItem{
				Piece:    p.Name,
				Mesh:     part.Mesh,
				Material: mat,
				Model:    pm.Mul(part.Transform.Matrix()),
			})
		}
	}
	return items
}

// Bounds returns the world-space box enclosing every item whose mesh is in
// lib. It reports false when nothing contributes.
func Bounds(items []DrawItem, lib Library) (mesh.Bounds, bool) {
	var out mesh.Bounds
	found := false
	for _, it := range items {
		m, ok := lib[it.Mesh]
		if !ok || len(m.Vertices) == 0 {
			continue
		}
		local := m.Bounds()
		for corner := range 8 {
			p := math.Vec3{X: local.Min[0], Y: local.Min[1], Z: local.Min[2]}
			if corner&1 != 0 {
				p.X = local.Max[0]
			}
			if corner&2 != 0 {
				p.Y = local.Max[1]
			}
			if corner&4 != 0 {
				p.Z = local.Max[2]
			}
			w := it.Model.TransformPoint(p).Array()
			if !found {
				out = mesh.Bounds{Min: w, Max: w}
				found = true
				continue
			}
			for i := range 3 {
				out.Min[i] = math32.Min(out.Min[i], w[i])
				out.Max[i] = math32.Max(out.Max[i], w[i])
			}
		}
	}
	return out, found
}
