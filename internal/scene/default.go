package scene

import (
	_ "embed"
	"fmt"
)

//go:embed room.yaml
var roomYAML []byte

// Default returns the built-in room.
func Default() *Scene {
	s, err := Parse(roomYAML)
	if err != nil {
		panic(fmt.Sprintf("scene: built-in room is invalid: %v", err))
	}
	return s
}

// LoadOrDefault loads path, or returns the built-in room when path is empty.
func LoadOrDefault(path string) (*Scene, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
