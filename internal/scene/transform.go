package scene

import "github.com/Faultbox/meshlab/pkg/math"

// Transform places an object: scale first, then rotation about X, Y and Z
// in that order, then translation. Rotation is in degrees.
type Transform struct {
	Position [3]float32 `yaml:"position"`
	Rotation [3]float32 `yaml:"rotation"`
	Scale    [3]float32 `yaml:"scale"`
}

// Identity returns a transform that leaves geometry unchanged.
func Identity() Transform {
	return Transform{Scale: [3]float32{1, 1, 1}}
}

// Matrix returns T * Rx * Ry * Rz * S. An all-zero Scale counts as unit
// scale so transforms omitted from scene files are identities.
func (t Transform) Matrix() math.Mat4 {
	scale := t.Scale
	if scale == [3]float32{} {
		scale = [3]float32{1, 1, 1}
	}
	return math.Translate(math.V3(t.Position)).
		Mul(math.RotateX(math.Radians(t.Rotation[0]))).
		Mul(math.RotateY(math.Radians(t.Rotation[1]))).
		Mul(math.RotateZ(math.Radians(t.Rotation[2]))).
		Mul(math.Scale(math.V3(scale)))
}

// Translate moves the transform by d.
func (t *Transform) Translate(dx, dy, dz float32) {
	t.Position[0] += dx
	t.Position[1] += dy
	t.Position[2] += dz
}

// Rotate adds the given angles in degrees.
func (t *Transform) Rotate(dx, dy, dz float32) {
	t.Rotation[0] += dx
	t.Rotation[1] += dy
	t.Rotation[2] += dz
}
