// Package scene describes a room of furniture built from parametric meshes
// and turns it into a flat list of draw calls.
//
// A Scene names its meshes and materials once; pieces of furniture refer
// to them by name and combine several parts, each with its own transform
// relative to the piece.
package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/meshlab/internal/engine/lighting"
	"github.com/Faultbox/meshlab/pkg/mesh"
)

// Scene is a complete room description.
type Scene struct {
	Name      string               `yaml:"name"`
	Meshes    map[string]mesh.Spec `yaml:"meshes"`
	Materials map[string]Material  `yaml:"materials"`
	Textures  map[string]Texture   `yaml:"textures,omitempty"`
	Pieces    []Piece              `yaml:"pieces"`

	// Lights is optional; nil means the stock rig.
	Lights *lighting.RigConfig `yaml:"lights,omitempty"`

	// dir resolves relative texture paths; empty means the working directory.
	dir string
}

// Piece is one object in the room, such as a chair.
type Piece struct {
	Name      string    `yaml:"name"`
	Transform Transform `yaml:"transform"`

	// Spin marks pieces that turn about their local Y axis with the fan.
	Spin bool `yaml:"spin"`

	Parts []Part `yaml:"parts"`
}

// Part is a single mesh instance within a piece.
type Part struct {
	Mesh      string    `yaml:"mesh"`
	Material  string    `yaml:"material"`
	Transform Transform `yaml:"transform"`
}

// LightConfig returns the scene's lights or the stock rig.
func (s *Scene) LightConfig() lighting.RigConfig {
	if s.Lights == nil {
		return lighting.DefaultRigConfig()
	}
	return *s.Lights
}

// Material returns the resolved material name refers to. An empty name
// yields the default material.
func (s *Scene) Material(name string) (Material, bool) {
	if name == "" {
		return DefaultMaterial(), true
	}
	m, ok := s.Materials[name]
	if !ok {
		return Material{}, false
	}
	return m.Resolved(), true
}

// Parse decodes a scene from YAML and validates it.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Validate reports every problem in the scene at once: unbuildable mesh
// specs, malformed textures, materials with negative terms or missing
// textures, duplicate piece names, and parts that refer to missing meshes
// or materials.
func (s *Scene) Validate() error {
	var err error

	for _, name := range sortedKeys(s.Meshes) {
		spec := s.Meshes[name].WithDefaults(mesh.DefaultSectorCount, mesh.DefaultStackCount)
		if _, buildErr := mesh.Build(spec); buildErr != nil {
			err = multierr.Append(err, fmt.Errorf("mesh %q: %w", name, buildErr))
		}
	}
	for _, name := range sortedKeys(s.Textures) {
		if texErr := s.Textures[name].validate(); texErr != nil {
			err = multierr.Append(err, fmt.Errorf("texture %q: %w", name, texErr))
		}
	}
	for _, name := range sortedKeys(s.Materials) {
		m := s.Materials[name]
		if matErr := m.validate(); matErr != nil {
			err = multierr.Append(err, fmt.Errorf("material %q: %w", name, matErr))
		}
		if _, ok := s.Textures[m.Texture]; m.Texture != "" && !ok {
			err = multierr.Append(err, fmt.Errorf("material %q: unknown texture %q", name, m.Texture))
		}
	}

	if len(s.Pieces) == 0 {
		err = multierr.Append(err, fmt.Errorf("scene has no pieces"))
	}
	seen := make(map[string]bool, len(s.Pieces))
	for i, p := range s.Pieces {
		label := p.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		} else if seen[p.Name] {
			err = multierr.Append(err, fmt.Errorf("piece %q: duplicate name", p.Name))
		}
		seen[p.Name] = true

		if len(p.Parts) == 0 {
			err = multierr.Append(err, fmt.Errorf("piece %s: no parts", label))
		}
		for j, part := range p.Parts {
			if _, ok := s.Meshes[part.Mesh]; !ok {
				err = multierr.Append(err, fmt.Errorf("piece %s part %d: unknown mesh %q", label, j, part.Mesh))
			}
			if _, ok := s.Material(part.Material); !ok {
				err = multierr.Append(err, fmt.Errorf("piece %s part %d: unknown material %q", label, j, part.Material))
			}
		}
	}

	if s.Lights != nil {
		if lightErr := s.Lights.Validate(); lightErr != nil {
			err = multierr.Append(err, lightErr)
		}
	}
	return err
}
