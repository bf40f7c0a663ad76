// Package controls turns held keys into changes to the viewer state.
package controls

// Key identifies a keyboard key independent of the windowing backend.
type Key int

// Keys the viewer binds.
const (
	KeyUnknown Key = iota
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyComma
	KeyPeriod
	KeyEqual
	KeyMinus
	KeyA
	KeyB
	KeyC
	KeyF
	KeyG
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	KeyPad1
	KeyPad2
	KeyPad3
	KeyPad4
	KeyPad5
	KeyPad6
	KeyF12
	keyCount
)

// KeyState reports which keys are currently held.
type KeyState interface {
	Down(k Key) bool
}

// KeySet is a KeyState backed by a map, handy for tests and replays.
type KeySet map[Key]bool

// Down implements KeyState.
func (s KeySet) Down(k Key) bool {
	return s[k]
}
