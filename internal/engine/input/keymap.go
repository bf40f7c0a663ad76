package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/meshlab/internal/controls"
)

// scancodes binds each viewer key to physical keys. Position-based
// scancodes keep the bindings stable across keyboard layouts.
var scancodes = map[controls.Key][]sdl.Scancode{
	controls.KeyEscape: {sdl.SCANCODE_ESCAPE},
	controls.KeyUp:     {sdl.SCANCODE_UP},
	controls.KeyDown:   {sdl.SCANCODE_DOWN},
	controls.KeyLeft:   {sdl.SCANCODE_LEFT},
	controls.KeyRight:  {sdl.SCANCODE_RIGHT},
	controls.KeyComma:  {sdl.SCANCODE_COMMA},
	controls.KeyPeriod: {sdl.SCANCODE_PERIOD},
	controls.KeyEqual:  {sdl.SCANCODE_EQUALS, sdl.SCANCODE_KP_PLUS},
	controls.KeyMinus:  {sdl.SCANCODE_MINUS, sdl.SCANCODE_KP_MINUS},
	controls.KeyA:      {sdl.SCANCODE_A},
	controls.KeyB:      {sdl.SCANCODE_B},
	controls.KeyC:      {sdl.SCANCODE_C},
	controls.KeyF:      {sdl.SCANCODE_F},
	controls.KeyG:      {sdl.SCANCODE_G},
	controls.KeyX:      {sdl.SCANCODE_X},
	controls.KeyY:      {sdl.SCANCODE_Y},
	controls.KeyZ:      {sdl.SCANCODE_Z},
	controls.Key0:      {sdl.SCANCODE_0},
	controls.Key1:      {sdl.SCANCODE_1},
	controls.Key2:      {sdl.SCANCODE_2},
	controls.Key3:      {sdl.SCANCODE_3},
	controls.Key4:      {sdl.SCANCODE_4},
	controls.Key5:      {sdl.SCANCODE_5},
	controls.Key6:      {sdl.SCANCODE_6},
	controls.Key7:      {sdl.SCANCODE_7},
	controls.Key8:      {sdl.SCANCODE_8},
	controls.KeyPad1:   {sdl.SCANCODE_KP_1},
	controls.KeyPad2:   {sdl.SCANCODE_KP_2},
	controls.KeyPad3:   {sdl.SCANCODE_KP_3},
	controls.KeyPad4:   {sdl.SCANCODE_KP_4},
	controls.KeyPad5:   {sdl.SCANCODE_KP_5},
	controls.KeyPad6:   {sdl.SCANCODE_KP_6},
	controls.KeyF12:    {sdl.SCANCODE_F12},
}
