// Package renderer draws scene meshes with OpenGL.
package renderer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshlab/internal/engine/lighting"
	"github.com/Faultbox/meshlab/internal/engine/renderer/shaders"
	"github.com/Faultbox/meshlab/internal/engine/shader"
	"github.com/Faultbox/meshlab/internal/logger"
	"github.com/Faultbox/meshlab/internal/scene"
	"github.com/Faultbox/meshlab/pkg/math"
	"github.com/Faultbox/meshlab/pkg/mesh"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Wireframe  bool
	CullFaces  bool
	Background [3]float32
}

// View is the camera state for one frame.
type View struct {
	View       math.Mat4
	Projection math.Mat4
	Eye        math.Vec3
}

// Renderer owns the GL state for drawing scenes.
type Renderer struct {
	config   Config
	phong    *shader.Program
	meshes   map[string]*GPUMesh
	textures map[string]*GPUTexture
}

// diffuseUnit is the texture unit sampled as the material's diffuse map.
const diffuseUnit = 0

// New creates a renderer. It must be called after the GL context exists.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	phong, err := shader.NewProgram("phong", shaders.PhongVertexShader, shaders.PhongFragmentShader)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		config:   cfg,
		phong:    phong,
		meshes:   make(map[string]*GPUMesh),
		textures: make(map[string]*GPUTexture),
	}

	phong.Use()
	phong.SetInt("diffuseMap", diffuseUnit)
	gl.UseProgram(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(cfg.Background[0], cfg.Background[1], cfg.Background[2], 1)
	r.SetCullFaces(cfg.CullFaces)
	r.SetWireframe(cfg.Wireframe)
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// Close releases every GL object the renderer created.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.clearMeshes()
	r.clearTextures()
	r.phong.Delete()
}

// SetLibrary replaces the uploaded meshes with lib. On failure the current
// meshes stay in place.
func (r *Renderer) SetLibrary(lib scene.Library) error {
	next := make(map[string]*GPUMesh, len(lib))
	for name, m := range lib {
		g, err := Upload(m)
		if err != nil {
			for _, up := range next {
				up.Delete()
			}
			return err
		}
		next[name] = g
	}
	r.clearMeshes()
	r.meshes = next
	logger.Debug("meshes uploaded", zap.Int("count", len(r.meshes)))
	return nil
}

// SetTextures replaces the uploaded textures with imgs.
func (r *Renderer) SetTextures(imgs map[string]*image.RGBA) {
	r.clearTextures()
	for name, img := range imgs {
		r.textures[name] = UploadTexture(img)
	}
	logger.Debug("textures uploaded", zap.Int("count", len(r.textures)))
}

func (r *Renderer) clearTextures() {
	for name, t := range r.textures {
		t.Delete()
		delete(r.textures, name)
	}
}

func (r *Renderer) clearMeshes() {
	for name, g := range r.meshes {
		g.Delete()
		delete(r.meshes, name)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// SetWireframe toggles line rasterization.
func (r *Renderer) SetWireframe(on bool) {
	r.config.Wireframe = on
	if on {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// SetCullFaces toggles back-face culling. Meshes wind counter-clockwise
// seen from outside.
func (r *Renderer) SetCullFaces(on bool) {
	r.config.CullFaces = on
	if on {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders items lit by lights. Items naming a mesh that was never
// uploaded are skipped.
func (r *Renderer) Draw(items []scene.DrawItem, v View, lights lighting.Frame) {
	p := r.phong
	p.Use()
	p.SetMat4("view", v.View)
	p.SetMat4("projection", v.Projection)
	p.SetVec3("viewPos", v.Eye.Array())
	r.uploadLights(lights)

	for _, it := range items {
		g, ok := r.meshes[it.Mesh]
		if !ok {
			continue
		}
		p.SetMat4("model", it.Model)
		p.SetMat3("normalMatrix", it.Model.NormalMatrix())
		p.SetVec3("material.ambient", it.Material.Ambient)
		p.SetVec3("material.diffuse", it.Material.Diffuse)
		p.SetVec3("material.specular", it.Material.Specular)
		p.SetFloat("material.shininess", it.Material.Shininess)

		tex, textured := r.textures[it.Material.Texture]
		textured = textured && g.Layout == mesh.LayoutPosNormalUV
		p.SetBool("textured", textured)
		if textured {
			tex.Bind(diffuseUnit)
		}
		g.Draw()
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) uploadLights(f lighting.Frame) {
	p := r.phong
	p.SetInt("numPointLights", int32(len(f.Points)))
	for i, l := range f.Points {
		prefix := fmt.Sprintf("pointLights[%d].", i)
		p.SetVec3(prefix+"position", l.Position)
		p.SetVec3(prefix+"ambient", l.Ambient)
		p.SetVec3(prefix+"diffuse", l.Diffuse)
		p.SetVec3(prefix+"specular", l.Specular)
		p.SetFloat(prefix+"k_c", l.Attenuation.Constant)
		p.SetFloat(prefix+"k_l", l.Attenuation.Linear)
		p.SetFloat(prefix+"k_q", l.Attenuation.Quadratic)
	}

	p.SetBool("dirLightOn", f.Directional != nil)
	if d := f.Directional; d != nil {
		p.SetVec3("dirLight.direction", d.Direction)
		p.SetVec3("dirLight.ambient", d.Ambient)
		p.SetVec3("dirLight.diffuse", d.Diffuse)
		p.SetVec3("dirLight.specular", d.Specular)
	}

	p.SetBool("spotLightOn", f.Spot != nil)
	if s := f.Spot; s != nil {
		p.SetVec3("spotLight.position", s.Position)
		p.SetVec3("spotLight.direction", s.Direction)
		p.SetVec3("spotLight.ambient", s.Ambient)
		p.SetVec3("spotLight.diffuse", s.Diffuse)
		p.SetVec3("spotLight.specular", s.Specular)
		p.SetFloat("spotLight.k_c", s.Attenuation.Constant)
		p.SetFloat("spotLight.k_l", s.Attenuation.Linear)
		p.SetFloat("spotLight.k_q", s.Attenuation.Quadratic)
		p.SetFloat("spotLight.cosCutoff", s.CosCutoff())
	}
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.UseProgram(0)
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pixels[0]))
	return pixels, w, h
}
