// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/meshlab/internal/logger"
	"github.com/Faultbox/meshlab/pkg/mesh"
)

// Config holds all viewer settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Mesh       MeshConfig       `yaml:"mesh"`
	Scene      SceneConfig      `yaml:"scene"`
	Camera     CameraConfig     `yaml:"camera"`
	Render     RenderConfig     `yaml:"render"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// MeshConfig holds tessellation defaults applied to scene meshes that
// leave their counts unset.
type MeshConfig struct {
	Sectors int `yaml:"sectors"`
	Stacks  int `yaml:"stacks"`
}

// SceneConfig selects the scene file. An empty path uses the built-in room.
type SceneConfig struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

// CameraConfig holds the initial orbit camera setup.
type CameraConfig struct {
	Target   [3]float32 `yaml:"target"`
	Distance float32    `yaml:"distance"`
	Yaw      float32    `yaml:"yaw"`
	Pitch    float32    `yaml:"pitch"`
	FOV      float32    `yaml:"fov"`
}

// RenderConfig holds rasterizer settings.
type RenderConfig struct {
	Wireframe  bool       `yaml:"wireframe"`
	CullFaces  bool       `yaml:"cull_faces"`
	Background [3]float32 `yaml:"background"`
}

// ScreenshotConfig holds where captures are written.
type ScreenshotConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "meshlab",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Mesh: MeshConfig{
			Sectors: mesh.DefaultSectorCount,
			Stacks:  mesh.DefaultStackCount,
		},
		Scene: SceneConfig{
			Watch: true,
		},
		Camera: CameraConfig{
			Target:   [3]float32{4, 1, 4},
			Distance: 9,
			Yaw:      30,
			Pitch:    20,
			FOV:      45,
		},
		Render: RenderConfig{
			CullFaces:  true,
			Background: [3]float32{0.1, 0.1, 0.12},
		},
		Screenshot: ScreenshotConfig{
			Dir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate rejects settings the viewer cannot start with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Mesh.Sectors < mesh.MinSectorCount {
		return fmt.Errorf("mesh.sectors %d is below %d", c.Mesh.Sectors, mesh.MinSectorCount)
	}
	if c.Mesh.Stacks < mesh.MinStackCount {
		return fmt.Errorf("mesh.stacks %d is below %d", c.Mesh.Stacks, mesh.MinStackCount)
	}
	if c.Camera.Distance <= 0 {
		return fmt.Errorf("camera.distance %v must be positive", c.Camera.Distance)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera.fov %v must be in (0, 180)", c.Camera.FOV)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}
