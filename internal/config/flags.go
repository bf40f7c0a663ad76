package config

import "flag"

// Flags holds command-line overrides. Zero values leave the file setting alone.
type Flags struct {
	Config     string
	Debug      bool
	Scene      string
	Windowed   bool
	Fullscreen bool
	Width      int
	Height     int
	Sectors    int
	Stacks     int
	Wireframe  bool

	// SaveConfig writes the effective config to the user config dir and exits.
	SaveConfig bool
}

// Register binds the viewer flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Scene, "scene", "", "Scene file to load instead of the built-in room")
	fs.BoolVar(&f.Windowed, "windowed", false, "Run in windowed mode")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run in fullscreen mode")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.IntVar(&f.Sectors, "sectors", 0, "Default sector count for round meshes")
	fs.IntVar(&f.Stacks, "stacks", 0, "Default stack count for spheres")
	fs.BoolVar(&f.Wireframe, "wireframe", false, "Draw triangle edges only")
	fs.BoolVar(&f.SaveConfig, "save-config", false, "Write the effective config to the user config dir and exit")
}

// Parse registers the flags on fs and parses args.
func Parse(fs *flag.FlagSet, args []string) (*Flags, error) {
	f := &Flags{}
	f.Register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// apply copies set flags over cfg.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Scene != "" {
		cfg.Scene.Path = f.Scene
	}
	if f.Windowed {
		cfg.Window.Fullscreen = false
	}
	if f.Fullscreen {
		cfg.Window.Fullscreen = true
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
	if f.Sectors > 0 {
		cfg.Mesh.Sectors = f.Sectors
	}
	if f.Stacks > 0 {
		cfg.Mesh.Stacks = f.Stacks
	}
	if f.Wireframe {
		cfg.Render.Wireframe = true
	}
}
