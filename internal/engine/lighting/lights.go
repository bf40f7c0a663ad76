// Package lighting holds the light sources of a scene and the on/off
// switches the viewer exposes for them.
package lighting

import (
	"fmt"

	"github.com/chewxy/math32"
)

// MaxPointLights is the number of point lights the shaders support.
const MaxPointLights = 4

// Default attenuation terms, reaching roughly 50 units.
const (
	DefaultConstant  = 1.0
	DefaultLinear    = 0.09
	DefaultQuadratic = 0.032
)

// DefaultSpotCutoff is the spot cone half-angle in degrees.
const DefaultSpotCutoff = 5.5

// Attenuation holds the constant, linear and quadratic falloff terms.
type Attenuation struct {
	Constant  float32 `yaml:"constant"`
	Linear    float32 `yaml:"linear"`
	Quadratic float32 `yaml:"quadratic"`
}

// IsZero reports whether no term is set.
func (a Attenuation) IsZero() bool {
	return a == Attenuation{}
}

// At returns the attenuation factor at distance d.
func (a Attenuation) At(d float32) float32 {
	den := a.Constant + a.Linear*d + a.Quadratic*d*d
	if den <= 0 {
		return 1
	}
	return 1 / den
}

func (a Attenuation) withDefaults() Attenuation {
	if a.IsZero() {
		return Attenuation{DefaultConstant, DefaultLinear, DefaultQuadratic}
	}
	return a
}

// PointLight is an omnidirectional light with distance falloff.
type PointLight struct {
	Position    [3]float32  `yaml:"position"`
	Ambient     [3]float32  `yaml:"ambient"`
	Diffuse     [3]float32  `yaml:"diffuse"`
	Specular    [3]float32  `yaml:"specular"`
	Attenuation Attenuation `yaml:"attenuation"`
	Off         bool        `yaml:"off"`
}

// DirectionalLight lights everything from one direction.
// Direction is the way the light travels. When Sun is set it overrides
// Direction.
type DirectionalLight struct {
	Direction [3]float32 `yaml:"direction"`
	Sun       *SunAngles `yaml:"sun,omitempty"`
	Ambient   [3]float32 `yaml:"ambient"`
	Diffuse   [3]float32 `yaml:"diffuse"`
	Specular  [3]float32 `yaml:"specular"`
	Off       bool       `yaml:"off"`
}

// SpotLight is a cone light. Cutoff is the half-angle in degrees.
type SpotLight struct {
	Position    [3]float32  `yaml:"position"`
	Direction   [3]float32  `yaml:"direction"`
	Ambient     [3]float32  `yaml:"ambient"`
	Diffuse     [3]float32  `yaml:"diffuse"`
	Specular    [3]float32  `yaml:"specular"`
	Attenuation Attenuation `yaml:"attenuation"`
	Cutoff      float32     `yaml:"cutoff"`
	Off         bool        `yaml:"off"`
}

// CosCutoff returns the cosine of the cone half-angle, the form the
// fragment shader compares against.
func (s SpotLight) CosCutoff() float32 {
	return math32.Cos(s.Cutoff * math32.Pi / 180)
}

// SunAngles places the sun by compass azimuth and elevation above the
// horizon, both in degrees.
type SunAngles struct {
	Azimuth   float32 `yaml:"azimuth"`
	Elevation float32 `yaml:"elevation"`
}

// Direction returns the unit vector pointing from the scene towards the sun.
func (s SunAngles) Direction() [3]float32 {
	az := s.Azimuth * math32.Pi / 180
	el := s.Elevation * math32.Pi / 180
	sinEl, cosEl := math32.Sincos(el)
	sinAz, cosAz := math32.Sincos(az)
	return [3]float32{cosEl * sinAz, sinEl, cosEl * cosAz}
}

// RigConfig is the serialized form of a light rig.
type RigConfig struct {
	Points      []PointLight     `yaml:"points"`
	Directional DirectionalLight `yaml:"directional"`
	Spot        SpotLight        `yaml:"spot"`
}

// Validate checks counts and vectors that the shaders cannot handle.
func (c RigConfig) Validate() error {
	if len(c.Points) > MaxPointLights {
		return fmt.Errorf("lighting: %d point lights, at most %d supported", len(c.Points), MaxPointLights)
	}
	if c.Directional.Sun == nil && isZero3(c.Directional.Direction) {
		return fmt.Errorf("lighting: directional light needs a direction or sun angles")
	}
	if isZero3(c.Spot.Direction) {
		return fmt.Errorf("lighting: spot light needs a direction")
	}
	if c.Spot.Cutoff < 0 || c.Spot.Cutoff >= 90 {
		return fmt.Errorf("lighting: spot cutoff %v must be in [0, 90)", c.Spot.Cutoff)
	}
	return nil
}

// DefaultRigConfig returns the room's stock lighting: four warm point
// lights near the ceiling, a low sun and a narrow spot over the table.
func DefaultRigConfig() RigConfig {
	point := func(x, y, z float32) PointLight {
		return PointLight{
			Position: [3]float32{x, y, z},
			Ambient:  [3]float32{0.05, 0.05, 0.05},
			Diffuse:  [3]float32{1, 1, 1},
			Specular: [3]float32{1, 1, 1},
		}
	}
	return RigConfig{
		Points: []PointLight{
			point(4.0, 2.89, 2.0),
			point(2.0, 2.89, 3.8),
			point(1.3, 2.95, 1.36),
			point(1.5, 1.1, 1.0),
		},
		Directional: DirectionalLight{
			Sun:      &SunAngles{Azimuth: 200, Elevation: 55},
			Ambient:  [3]float32{0.2, 0.2, 0.2},
			Diffuse:  [3]float32{0.8, 0.8, 0.8},
			Specular: [3]float32{1, 1, 1},
		},
		Spot: SpotLight{
			Position:  [3]float32{1.5, 2.9, 1.5},
			Direction: [3]float32{0, -1, 0},
			Ambient:   [3]float32{0.2, 0.2, 0.2},
			Diffuse:   [3]float32{0.8, 0.8, 0.8},
			Specular:  [3]float32{1, 1, 1},
			Cutoff:    DefaultSpotCutoff,
		},
	}
}

func isZero3(v [3]float32) bool {
	return v == [3]float32{}
}

func normalize3(v [3]float32) [3]float32 {
	l := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l == 0 {
		return v
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
