package materials

import (
	"shading-lab/core"
	"shading-lab/math"
	"shading-lab/textures"
)

// GroundParams are the extra inputs of ground materials.
type GroundParams struct {
	HeightScale float32
	Heightmap   *textures.Texture
}

// Binding holds the per-object surface parameters that are pushed to
// whichever material the object currently uses.
type Binding struct {
	Color        core.Color3
	Texture      *textures.Texture
	Specular     core.Color3
	Shininess    float32
	TextureScale math.Vec2

	// Ground is nil for ordinary models.
	Ground *GroundParams
}

// NewBinding returns a binding with the 1x1 white texture and unit texture scale.
func NewBinding(color, specular core.Color3, shininess float32) *Binding {
	return &Binding{
		Color:        color,
		Texture:      textures.White(),
		Specular:     specular,
		Shininess:    shininess,
		TextureScale: math.Vec2One,
	}
}

// Apply writes the binding's uniforms into m.
func (b *Binding) Apply(m *Material) {
	m.SetColor3("mat_color", b.Color)
	m.SetTexture("mat_texture", b.Texture)
	m.SetColor3("mat_specular", b.Specular)
	m.SetFloat("mat_shininess", b.Shininess)
	m.SetVector2("texture_scale", b.TextureScale)
	if b.Ground != nil {
		m.SetFloat("height_scalar", b.Ground.HeightScale)
		m.SetTexture("heightmap", b.Ground.Heightmap)
	}
}
