package lighting

// Components selects which Phong terms point lights contribute.
type Components struct {
	Ambient  bool
	Diffuse  bool
	Specular bool
}

// Rig is the live light state of a scene. It is owned by the render loop
// and is not safe for concurrent use.
type Rig struct {
	Points      []PointLight
	Directional DirectionalLight
	Spot        SpotLight
	Components  Components
}

// NewRig builds a rig from cfg with every light and component on unless
// cfg switches a light off. Missing attenuation and cutoff values get
// defaults and directions are normalized.
func NewRig(cfg RigConfig) *Rig {
	r := &Rig{Components: Components{Ambient: true, Diffuse: true, Specular: true}}
	r.Reconfigure(cfg)
	return r
}

// Reconfigure replaces the lights with those in cfg. Component switches
// survive so a scene reload does not undo them.
func (r *Rig) Reconfigure(cfg RigConfig) {
	n := min(len(cfg.Points), MaxPointLights)
	r.Points = make([]PointLight, n)
	for i, p := range cfg.Points[:n] {
		p.Attenuation = p.Attenuation.withDefaults()
		r.Points[i] = p
	}

	r.Directional = cfg.Directional
	if r.Directional.Sun != nil {
		d := r.Directional.Sun.Direction()
		r.Directional.Direction = [3]float32{-d[0], -d[1], -d[2]}
	}
	r.Directional.Direction = normalize3(r.Directional.Direction)

	r.Spot = cfg.Spot
	r.Spot.Direction = normalize3(r.Spot.Direction)
	r.Spot.Attenuation = r.Spot.Attenuation.withDefaults()
	if r.Spot.Cutoff == 0 {
		r.Spot.Cutoff = DefaultSpotCutoff
	}
}

// SetAll switches every light on or off.
func (r *Rig) SetAll(on bool) {
	r.SetPoints(on)
	r.SetDirectional(on)
	r.SetSpot(on)
}

// SetPoints switches all point lights.
func (r *Rig) SetPoints(on bool) {
	for i := range r.Points {
		r.Points[i].Off = !on
	}
}

// OnlyFirstPoint turns the first point light on and the others off.
func (r *Rig) OnlyFirstPoint() {
	for i := range r.Points {
		r.Points[i].Off = i != 0
	}
}

// SetDirectional switches the directional light.
func (r *Rig) SetDirectional(on bool) {
	r.Directional.Off = !on
}

// SetSpot switches the spot light.
func (r *Rig) SetSpot(on bool) {
	r.Spot.Off = !on
}

// SetAmbient switches the ambient term of the point lights.
func (r *Rig) SetAmbient(on bool) {
	r.Components.Ambient = on
}

// SetDiffuse switches the diffuse term of the point lights.
func (r *Rig) SetDiffuse(on bool) {
	r.Components.Diffuse = on
}

// SetSpecular switches the specular term of the point lights.
func (r *Rig) SetSpecular(on bool) {
	r.Components.Specular = on
}

// Frame is the light data for one draw: only lights that are on, with
// disabled point light components zeroed.
type Frame struct {
	Points      []PointLight
	Directional *DirectionalLight
	Spot        *SpotLight
}

// Frame resolves switches into the terms the renderer uploads.
func (r *Rig) Frame() Frame {
	var f Frame
	for _, p := range r.Points {
		if p.Off {
			continue
		}
		if !r.Components.Ambient {
			p.Ambient = [3]float32{}
		}
		if !r.Components.Diffuse {
			p.Diffuse = [3]float32{}
		}
		if !r.Components.Specular {
			p.Specular = [3]float32{}
		}
		f.Points = append(f.Points, p)
	}
	if !r.Directional.Off {
		d := r.Directional
		f.Directional = &d
	}
	if !r.Spot.Off {
		s := r.Spot
		f.Spot = &s
	}
	return f
}
