package scene

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/meshlab/pkg/mesh"
)

// Library maps mesh names to generated meshes.
type Library map[string]*mesh.Mesh

// BuildMeshes generates every mesh the scene declares, once each.
// Specs without their own tessellation use sectors and stacks.
func (s *Scene) BuildMeshes(sectors, stacks int) (Library, error) {
	lib := make(Library, len(s.Meshes))
	var mu sync.Mutex
	var g errgroup.Group

	for _, name := range sortedKeys(s.Meshes) {
		spec := s.Meshes[name].WithDefaults(sectors, stacks)
		g.Go(func() error {
			m, err := mesh.Build(spec)
			if err != nil {
				return fmt.Errorf("mesh %q: %w", name, err)
			}
			m.Name = name
			mu.Lock()
			lib[name] = m
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lib, nil
}

// Stats returns total vertex and triangle counts.
func (l Library) Stats() (vertices, triangles int) {
	for _, m := range l {
		vertices += len(m.Vertices)
		triangles += m.TriangleCount()
	}
	return vertices, triangles
}

// Names returns the mesh names in sorted order.
func (l Library) Names() []string {
	return sortedKeys(l)
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
