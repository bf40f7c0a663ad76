package controls

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshlab/internal/engine/lighting"
	"github.com/Faultbox/meshlab/internal/scene"
)

// Per-update steps for held keys.
const (
	TranslateStep = 0.1
	RotateStep    = 1.0
	ZoomStep      = 0.25
)

// DefaultFanSpeed is the fan rotation in degrees per second.
const DefaultFanSpeed = 180

// FanState is the ceiling fan's switch and current blade angle.
type FanState struct {
	On    bool
	Angle float32
	Speed float32
}

// Advance turns the blades by dt seconds when the fan is on.
func (f *FanState) Advance(dt float32) {
	if !f.On || dt <= 0 {
		return
	}
	f.Angle = math32.Mod(f.Angle+f.Speed*dt, 360)
}

// State is everything the keyboard can change.
type State struct {
	Object scene.Transform
	Fan    FanState
	Lights *lighting.Rig
}

// NewState returns the initial state around rig.
func NewState(rig *lighting.Rig) *State {
	return &State{
		Object: scene.Identity(),
		Fan:    FanState{Speed: DefaultFanSpeed},
		Lights: rig,
	}
}

// Actions are requests the controller cannot carry out itself.
type Actions struct {
	Quit       bool
	Screenshot bool

	// Zoom is positive to move the camera closer.
	Zoom float32
}

// Controller applies key bindings to a State. Movement keys act on every
// update while held. Screenshot fires once per press.
type Controller struct {
	prev [keyCount]bool
}

// NewController returns a controller with no keys held.
func NewController() *Controller {
	return &Controller{}
}

// Update reads keys and mutates st. dt is the frame time in seconds and
// only drives the fan.
func (c *Controller) Update(keys KeyState, st *State, dt float32) Actions {
	var act Actions
	down := keys.Down

	if down(KeyEscape) {
		act.Quit = true
	}
	if down(KeyF12) && !c.prev[KeyF12] {
		act.Screenshot = true
	}

	if down(KeyEqual) {
		act.Zoom += ZoomStep
	}
	if down(KeyMinus) {
		act.Zoom -= ZoomStep
	}

	obj := &st.Object
	if down(KeyUp) {
		obj.Translate(0, TranslateStep, 0)
	}
	if down(KeyDown) {
		obj.Translate(0, -TranslateStep, 0)
	}
	if down(KeyRight) {
		obj.Translate(-TranslateStep, 0, 0)
	}
	if down(KeyLeft) {
		obj.Translate(TranslateStep, 0, 0)
	}
	if down(KeyPeriod) {
		obj.Translate(0, 0, TranslateStep)
	}
	if down(KeyComma) {
		obj.Translate(0, 0, -TranslateStep)
	}

	if down(KeyX) {
		obj.Rotate(RotateStep, 0, 0)
	}
	if down(KeyY) {
		obj.Rotate(0, RotateStep, 0)
	}
	if down(KeyZ) {
		obj.Rotate(0, 0, RotateStep)
	}
	if down(KeyA) {
		obj.Rotate(-RotateStep, 0, 0)
	}
	if down(KeyB) {
		obj.Rotate(0, -RotateStep, 0)
	}
	if down(KeyC) {
		obj.Rotate(0, 0, -RotateStep)
	}

	if st.Lights != nil {
		applyLightKeys(down, st.Lights)
	}

	if down(KeyF) {
		st.Fan.On = true
	}
	if down(KeyG) {
		st.Fan.On = false
	}
	st.Fan.Advance(dt)

	for k := range c.prev {
		c.prev[k] = down(Key(k))
	}
	return act
}

// applyLightKeys handles the light switches. Later keys win when several
// are held.
func applyLightKeys(down func(Key) bool, rig *lighting.Rig) {
	if down(Key1) {
		rig.SetAll(false)
	}
	if down(Key2) {
		rig.SetAll(true)
	}
	if down(Key3) {
		rig.SetPoints(false)
	}
	if down(Key4) {
		rig.SetPoints(true)
	}
	if down(Key0) {
		rig.OnlyFirstPoint()
	}
	if down(Key5) {
		rig.SetDirectional(false)
	}
	if down(Key6) {
		rig.SetDirectional(true)
	}
	if down(Key7) {
		rig.SetSpot(false)
	}
	if down(Key8) {
		rig.SetSpot(true)
	}

	if down(KeyPad1) {
		rig.SetAmbient(false)
	}
	if down(KeyPad2) {
		rig.SetAmbient(true)
	}
	if down(KeyPad3) {
		rig.SetDiffuse(false)
	}
	if down(KeyPad4) {
		rig.SetDiffuse(true)
	}
	if down(KeyPad5) {
		rig.SetSpecular(false)
	}
	if down(KeyPad6) {
		rig.SetSpecular(true)
	}
}
