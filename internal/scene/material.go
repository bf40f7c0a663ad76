package scene

import "fmt"

// DefaultShininess is the specular exponent used when a material sets none.
const DefaultShininess = 32

// Material holds Phong reflectance terms. Color is a shorthand that fills
// ambient, diffuse and specular with the same value.
type Material struct {
	Color     *[3]float32 `yaml:"color,omitempty"`
	Ambient   [3]float32  `yaml:"ambient"`
	Diffuse   [3]float32  `yaml:"diffuse"`
	Specular  [3]float32  `yaml:"specular"`
	Shininess float32     `yaml:"shininess"`

	// Texture names an entry in Scene.Textures modulating ambient and
	// diffuse. It only shows on meshes with texture coordinates.
	Texture string `yaml:"texture,omitempty"`
}

// Color returns a flat material of one color.
func Color(r, g, b float32) Material {
	c := [3]float32{r, g, b}
	return Material{Ambient: c, Diffuse: c, Specular: c, Shininess: DefaultShininess}
}

// DefaultMaterial is applied to parts that name no material.
func DefaultMaterial() Material {
	return Color(0.8, 0.8, 0.8)
}

// Resolved expands the Color shorthand and fills the default shininess.
// Explicit terms win over Color.
func (m Material) Resolved() Material {
	if m.Color != nil {
		c := *m.Color
		if m.Ambient == [3]float32{} {
			m.Ambient = c
		}
		if m.Diffuse == [3]float32{} {
			m.Diffuse = c
		}
		if m.Specular == [3]float32{} {
			m.Specular = c
		}
		m.Color = nil
	}
	if m.Shininess == 0 {
		m.Shininess = DefaultShininess
	}
	return m
}

func (m Material) validate() error {
	if m.Shininess < 0 {
		return fmt.Errorf("shininess %v is negative", m.Shininess)
	}
	check := func(name string, c [3]float32) error {
		for _, v := range c {
			if v < 0 {
				return fmt.Errorf("%s %v has a negative channel", name, c)
			}
		}
		return nil
	}
	if m.Color != nil {
		if err := check("color", *m.Color); err != nil {
			return err
		}
	}
	if err := check("ambient", m.Ambient); err != nil {
		return err
	}
	if err := check("diffuse", m.Diffuse); err != nil {
		return err
	}
	return check("specular", m.Specular)
}
