// Package app runs the interactive mesh viewer.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/meshlab/internal/config"
	"github.com/Faultbox/meshlab/internal/controls"
	"github.com/Faultbox/meshlab/internal/engine/camera"
	"github.com/Faultbox/meshlab/internal/engine/debug"
	"github.com/Faultbox/meshlab/internal/engine/input"
	"github.com/Faultbox/meshlab/internal/engine/lighting"
	"github.com/Faultbox/meshlab/internal/engine/renderer"
	"github.com/Faultbox/meshlab/internal/engine/window"
	"github.com/Faultbox/meshlab/internal/logger"
	"github.com/Faultbox/meshlab/internal/scene"
)

// App owns the window, renderer and per-frame state.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window     *window.Window
	renderer   *renderer.Renderer
	input      *input.Input
	camera     *camera.OrbitCamera
	controller *controls.Controller
	screenshot *debug.ScreenshotCapture

	scene   *scene.Scene
	library scene.Library
	state   *controls.State
}

// New opens the window and uploads the configured scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}

	sc, err := scene.LoadOrDefault(cfg.Scene.Path)
	if err != nil {
		return nil, err
	}

	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		Wireframe:  cfg.Render.Wireframe,
		CullFaces:  cfg.Render.CullFaces,
		Background: cfg.Render.Background,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()
	a.controller = controls.NewController()
	a.screenshot = debug.NewScreenshotCapture(cfg.Screenshot.Dir, "meshlab")
	a.camera = camera.NewOrbitCamera(camera.Config{
		Target:   cfg.Camera.Target,
		Distance: cfg.Camera.Distance,
		Yaw:      cfg.Camera.Yaw,
		Pitch:    cfg.Camera.Pitch,
		FOV:      cfg.Camera.FOV,
	})
	a.state = controls.NewState(lighting.NewRig(sc.LightConfig()))

	if err := a.setScene(sc); err != nil {
		a.Close()
		return nil, err
	}
	if cfg.Scene.Path != "" {
		a.frameScene()
	}

	a.log.Info("viewer initialized", zap.String("scene", sc.Name))
	return a, nil
}

// setScene builds and uploads sc. On failure the current scene stays.
func (a *App) setScene(sc *scene.Scene) error {
	start := time.Now()
	lib, err := sc.BuildMeshes(a.cfg.Mesh.Sectors, a.cfg.Mesh.Stacks)
	if err != nil {
		return fmt.Errorf("building meshes: %w", err)
	}
	textures, err := sc.BuildTextures()
	if err != nil {
		return fmt.Errorf("building textures: %w", err)
	}
	if err := a.renderer.SetLibrary(lib); err != nil {
		return fmt.Errorf("uploading meshes: %w", err)
	}
	a.renderer.SetTextures(textures)
	a.scene = sc
	a.library = lib
	a.window.SetTitle(fmt.Sprintf("%s - %s", a.cfg.Window.Title, sc.Name))
	a.state.Lights.Reconfigure(sc.LightConfig())

	vertices, triangles := lib.Stats()
	a.log.Info("scene loaded",
		zap.String("name", sc.Name),
		zap.Int("meshes", len(lib)),
		zap.Int("textures", len(textures)),
		zap.Int("pieces", len(sc.Pieces)),
		zap.Int("vertices", vertices),
		zap.Int("triangles", triangles),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

// Run drives the frame loop until the window closes, Escape is pressed or
// ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var reloads <-chan *scene.Scene
	if a.cfg.Scene.Watch && a.cfg.Scene.Path != "" {
		w, err := scene.NewWatcher(a.cfg.Scene.Path, logger.Named("scene"))
		if err != nil {
			a.log.Warn("scene hot reload disabled", zap.Error(err))
		} else {
			reloads = w.Updates()
			go w.Run(ctx)
		}
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting frame loop")

	for {
		select {
		case <-ctx.Done():
			return nil
		case sc, ok := <-reloads:
			if !ok {
				reloads = nil
				break
			}
			if err := a.setScene(sc); err != nil {
				a.log.Warn("scene reload rejected", zap.Error(err))
			}
		default:
		}

		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if a.input.Update() {
			return nil
		}
		a.handleEvents()

		act := a.controller.Update(a.input, a.state, dt)
		if act.Quit {
			return nil
		}
		if act.Zoom != 0 {
			a.camera.HandleZoom(act.Zoom)
		}

		a.render()
		if act.Screenshot {
			a.capture()
		}
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.Float32("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

func (a *App) handleEvents() {
	for _, ev := range a.input.Events() {
		switch ev.Type {
		case input.EventWindowResize:
			a.renderer.Resize(a.window.DrawableSize())
		case input.EventMouseMove:
			switch ev.Button {
			case input.ButtonLeft:
				a.camera.HandleDrag(float32(ev.DeltaX), float32(ev.DeltaY))
			case input.ButtonRight, input.ButtonMiddle:
				a.camera.HandlePan(float32(ev.DeltaX), float32(ev.DeltaY))
			}
		case input.EventMouseWheel:
			a.camera.HandleZoom(ev.Wheel)
		}
	}
}

// frameScene points the camera at the whole scene.
func (a *App) frameScene() {
	items := a.scene.Flatten(a.state.Object.Matrix(), a.state.Fan.Angle)
	if b, ok := scene.Bounds(items, a.library); ok {
		a.camera.FitToBounds(b)
	}
}

func (a *App) render() {
	width, height := a.renderer.Size()
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}

	items := a.scene.Flatten(a.state.Object.Matrix(), a.state.Fan.Angle)

	a.renderer.Begin()
	a.renderer.Draw(items, renderer.View{
		View:       a.camera.ViewMatrix(),
		Projection: a.camera.Projection(aspect),
		Eye:        a.camera.Position(),
	}, a.state.Lights.Frame())
	a.renderer.End()
}

func (a *App) capture() {
	pixels, w, h := a.renderer.ReadPixels()
	name, err := a.screenshot.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("file", name))
}

// Close releases GL and window resources.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
