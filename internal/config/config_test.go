package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/meshlab/pkg/mesh"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.Mesh.Sectors != mesh.DefaultSectorCount {
		t.Errorf("expected %d sectors, got %d", mesh.DefaultSectorCount, cfg.Mesh.Sectors)
	}
	if cfg.Mesh.Stacks != mesh.DefaultStackCount {
		t.Errorf("expected %d stacks, got %d", mesh.DefaultStackCount, cfg.Mesh.Stacks)
	}
	if cfg.Scene.Path != "" {
		t.Errorf("expected built-in scene by default, got %s", cfg.Scene.Path)
	}
	if !cfg.Render.CullFaces {
		t.Error("expected face culling on by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
mesh:
  sectors: 36
  stacks: 24
scene:
  path: "room.yaml"
  watch: false
camera:
  distance: 12
render:
  wireframe: true
logging:
  level: "debug"
  log_file: "meshlab.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Mesh.Sectors != 36 || cfg.Mesh.Stacks != 24 {
		t.Errorf("expected 36/24 tessellation, got %d/%d", cfg.Mesh.Sectors, cfg.Mesh.Stacks)
	}
	if cfg.Scene.Path != "room.yaml" || cfg.Scene.Watch {
		t.Errorf("unexpected scene config %+v", cfg.Scene)
	}
	if cfg.Camera.Distance != 12 {
		t.Errorf("expected camera distance 12, got %v", cfg.Camera.Distance)
	}
	// Fields missing from the file keep their defaults.
	if cfg.Camera.FOV != 45 {
		t.Errorf("expected default fov 45, got %v", cfg.Camera.FOV)
	}
	if !cfg.Render.Wireframe {
		t.Error("expected wireframe to be true")
	}
	if cfg.Logging.LogFile != "meshlab.log" {
		t.Errorf("expected log file 'meshlab.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"too few sectors", func(c *Config) { c.Mesh.Sectors = 2 }},
		{"too few stacks", func(c *Config) { c.Mesh.Stacks = 1 }},
		{"negative distance", func(c *Config) { c.Camera.Distance = -1 }},
		{"flat fov", func(c *Config) { c.Camera.FOV = 180 }},
		{"unknown level", func(c *Config) { c.Logging.Level = "chatty" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "meshlab.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find meshlab.yaml in current directory")
	}
}

func TestFlagsApply(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(*testing.T, *Config)
	}{
		{
			name: "debug flag",
			args: []string{"-debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name: "scene flag",
			args: []string{"-scene", "kitchen.yaml"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Path != "kitchen.yaml" {
					t.Errorf("expected scene kitchen.yaml, got %s", cfg.Scene.Path)
				}
			},
		},
		{
			name: "fullscreen flag",
			args: []string{"-fullscreen"},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
		},
		{
			name: "size and tessellation flags",
			args: []string{"-width", "2560", "-height", "1440", "-sectors", "64", "-stacks", "32"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
				if cfg.Mesh.Sectors != 64 || cfg.Mesh.Stacks != 32 {
					t.Errorf("expected 64/32, got %d/%d", cfg.Mesh.Sectors, cfg.Mesh.Stacks)
				}
			},
		},
		{
			name: "wireframe flag",
			args: []string{"-wireframe"},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Render.Wireframe {
					t.Error("expected wireframe with wireframe flag")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(flag.NewFlagSet("test", flag.ContinueOnError), tt.args)
			if err != nil {
				t.Fatalf("parse flags: %v", err)
			}
			cfg := Default()
			f.apply(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(&Flags{Config: configPath, Width: 1920})
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from flag, height from file.
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("mesh:\n  sectors: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(&Flags{Config: configPath}); err == nil {
		t.Error("expected error for sectors below minimum")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Mesh.Sectors = 48
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Mesh.Sectors != 48 {
		t.Errorf("expected 48 sectors after reload, got %d", loaded.Mesh.Sectors)
	}
}
