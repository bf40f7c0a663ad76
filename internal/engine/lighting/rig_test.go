package lighting

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRig(t *testing.T) {
	cfg := DefaultRigConfig()
	require.NoError(t, cfg.Validate())

	r := NewRig(cfg)
	require.Len(t, r.Points, MaxPointLights)
	for _, p := range r.Points {
		assert.Equal(t, Attenuation{DefaultConstant, DefaultLinear, DefaultQuadratic}, p.Attenuation)
	}

	f := r.Frame()
	assert.Len(t, f.Points, MaxPointLights)
	require.NotNil(t, f.Directional)
	require.NotNil(t, f.Spot)

	// Sun above the horizon means the light travels downward.
	d := f.Directional.Direction
	assert.Less(t, d[1], float32(0))
	assert.InDelta(t, 1, math32.Sqrt(d[0]*d[0]+d[1]*d[1]+d[2]*d[2]), 1e-5)
	assert.InDelta(t, math32.Cos(5.5*math32.Pi/180), f.Spot.CosCutoff(), 1e-6)
}

func TestSwitches(t *testing.T) {
	tests := []struct {
		name      string
		apply     func(*Rig)
		points    int
		dir, spot bool
	}{
		{"all off", func(r *Rig) { r.SetAll(false) }, 0, false, false},
		{"all off then on", cycleAll, 4, true, true},
		{"points off", func(r *Rig) { r.SetPoints(false) }, 0, true, true},
		{"only first", func(r *Rig) { r.OnlyFirstPoint() }, 1, true, true},
		{"directional off", func(r *Rig) { r.SetDirectional(false) }, 4, false, true},
		{"spot off", func(r *Rig) { r.SetSpot(false) }, 4, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRig(DefaultRigConfig())
			tt.apply(r)
			f := r.Frame()
			assert.Len(t, f.Points, tt.points)
			assert.Equal(t, tt.dir, f.Directional != nil)
			assert.Equal(t, tt.spot, f.Spot != nil)
		})
	}
}

func cycleAll(r *Rig) {
	r.SetAll(false)
	r.SetAll(true)
}

func TestOnlyFirstKeepsFirst(t *testing.T) {
	r := NewRig(DefaultRigConfig())
	r.OnlyFirstPoint()
	f := r.Frame()
	require.Len(t, f.Points, 1)
	assert.Equal(t, [3]float32{4.0, 2.89, 2.0}, f.Points[0].Position)
}

func TestComponentMasks(t *testing.T) {
	r := NewRig(DefaultRigConfig())
	r.SetAmbient(false)
	r.SetSpecular(false)

	f := r.Frame()
	for _, p := range f.Points {
		assert.Equal(t, [3]float32{}, p.Ambient)
		assert.Equal(t, [3]float32{1, 1, 1}, p.Diffuse)
		assert.Equal(t, [3]float32{}, p.Specular)
	}
	// Masks apply to point lights only.
	assert.Equal(t, [3]float32{0.2, 0.2, 0.2}, f.Directional.Ambient)

	// The rig itself keeps the configured colors.
	assert.Equal(t, [3]float32{0.05, 0.05, 0.05}, r.Points[0].Ambient)

	r.SetAmbient(true)
	r.SetDiffuse(false)
	f = r.Frame()
	assert.Equal(t, [3]float32{0.05, 0.05, 0.05}, f.Points[0].Ambient)
	assert.Equal(t, [3]float32{}, f.Points[0].Diffuse)
}

func TestReconfigureKeepsComponents(t *testing.T) {
	r := NewRig(DefaultRigConfig())
	r.SetDiffuse(false)
	r.SetSpot(false)

	cfg := DefaultRigConfig()
	cfg.Points = cfg.Points[:2]
	r.Reconfigure(cfg)

	assert.Len(t, r.Points, 2)
	assert.False(t, r.Components.Diffuse)
	assert.False(t, r.Spot.Off, "light switches come from the new config")
}

func TestReconfigureTruncatesPoints(t *testing.T) {
	cfg := DefaultRigConfig()
	cfg.Points = append(cfg.Points, cfg.Points[0])
	assert.Error(t, cfg.Validate())

	r := NewRig(cfg)
	assert.Len(t, r.Points, MaxPointLights)
}

func TestValidate(t *testing.T) {
	cfg := DefaultRigConfig()
	cfg.Directional.Sun = nil
	assert.Error(t, cfg.Validate())

	cfg.Directional.Direction = [3]float32{0, -1, 0}
	assert.NoError(t, cfg.Validate())

	cfg.Spot.Cutoff = 95
	assert.Error(t, cfg.Validate())

	cfg.Spot.Cutoff = 10
	cfg.Spot.Direction = [3]float32{}
	assert.Error(t, cfg.Validate())
}

func TestAttenuation(t *testing.T) {
	a := Attenuation{}.withDefaults()
	assert.InDelta(t, 1, a.At(0), 1e-6)
	assert.InDelta(t, 1/(1+0.9+3.2), a.At(10), 1e-6)
	assert.Less(t, a.At(20), a.At(10))

	assert.Equal(t, float32(1), Attenuation{}.At(5))
}

func TestSunDirection(t *testing.T) {
	up := SunAngles{Elevation: 90}.Direction()
	assert.InDelta(t, 1, up[1], 1e-6)

	south := SunAngles{Azimuth: 0, Elevation: 0}.Direction()
	assert.InDelta(t, 1, south[2], 1e-6)

	east := SunAngles{Azimuth: 90, Elevation: 0}.Direction()
	assert.InDelta(t, 1, east[0], 1e-6)
}
