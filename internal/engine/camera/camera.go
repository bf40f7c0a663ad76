// Package camera provides an orbit camera for inspecting scenes.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshlab/pkg/math"
	"github.com/Faultbox/meshlab/pkg/mesh"
)

// Config is the initial camera placement. Angles are in degrees.
type Config struct {
	Target   [3]float32
	Distance float32
	Yaw      float32
	Pitch    float32
	FOV      float32
}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // vertical angle, radians
	Yaw      float32 // horizontal angle, radians

	// Vertical field of view in degrees and clip planes
	FOV  float32
	Near float32
	Far  float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
	PanSensitivity  float32
}

// NewOrbitCamera creates an orbit camera sized for a room-scale scene.
func NewOrbitCamera(cfg Config) *OrbitCamera {
	c := &OrbitCamera{
		Center:          math.V3(cfg.Target),
		Distance:        cfg.Distance,
		Pitch:           math.Radians(cfg.Pitch),
		Yaw:             math.Radians(cfg.Yaw),
		FOV:             cfg.FOV,
		Near:            0.1,
		Far:             100,
		MinDistance:     0.5,
		MaxDistance:     60,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		PanSensitivity:  0.0015,
	}
	if c.FOV <= 0 {
		c.FOV = 45
	}
	c.clamp()
	return c
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sinP, cosP := math32.Sincos(c.Pitch)
	sinY, cosY := math32.Sincos(c.Yaw)
	return c.Center.Add(math.Vec3{
		X: c.Distance * cosP * sinY,
		Y: c.Distance * sinP,
		Z: c.Distance * cosP * cosY,
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// Projection returns the perspective matrix for a viewport aspect ratio.
func (c *OrbitCamera) Projection(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(math.Radians(c.FOV), aspect, c.Near, c.Far)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity
	c.clamp()
}

// HandleZoom moves toward the center for positive delta. Steps scale with
// distance so zooming feels the same near and far.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.clamp()
}

// HandlePan slides the center in the view plane by a mouse delta.
func (c *OrbitCamera) HandlePan(deltaX, deltaY float32) {
	forward := c.Center.Sub(c.Position()).Normalize()
	right := forward.Cross(math.Vec3{Y: 1}).Normalize()
	up := right.Cross(forward)

	speed := c.Distance * c.PanSensitivity
	c.Center = c.Center.
		Add(right.Scale(-deltaX * speed)).
		Add(up.Scale(deltaY * speed))
}

// FitToBounds centers the camera on b and backs off until it fits the view.
func (c *OrbitCamera) FitToBounds(b mesh.Bounds) {
	c.Center = math.V3(b.Center())
	size := math.V3(b.Size())
	radius := size.Length() / 2
	if radius == 0 {
		radius = 1
	}
	c.Distance = radius / math32.Sin(math.Radians(c.FOV)/2)
	c.clamp()
}

func (c *OrbitCamera) clamp() {
	c.Pitch = max(c.MinPitch, min(c.Pitch, c.MaxPitch))
	c.Distance = max(c.MinDistance, min(c.Distance, c.MaxDistance))
}
