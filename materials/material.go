package materials

import (
	"shading-lab/core"
	"shading-lab/math"
	"shading-lab/textures"
)

// UniformType tags which field of a Uniform holds its value.
type UniformType int

const (
	UniformInt UniformType = iota
	UniformFloat
	UniformVec2
	UniformVec3
	UniformColor3
	UniformVec3Array
	UniformColor3Array
	UniformMat4
	UniformSampler
)

// Uniform is one pending shader input. Floats holds vector, array and matrix
// data flattened in GL order.
type Uniform struct {
	Name    string
	Type    UniformType
	Int     int32
	Floats  []float32
	Texture *textures.Texture
}

// Count is the number of array elements for array uniforms, 1 otherwise.
func (u Uniform) Count() int {
	switch u.Type {
	case UniformVec3Array, UniformColor3Array:
		return len(u.Floats) / 3
	default:
		return 1
	}
}

// Material is a shader program plus the uniform values to push to it.
// Setting a uniform records it; the GL backend flushes the table on draw.
// Program is zero until the backend compiles the sources.
type Material struct {
	Name           string
	Key            Key
	VertexSource   string
	FragmentSource string
	Program        uint32

	uniforms map[string]Uniform
	order    []string
}

func NewMaterial(name string, key Key, vert, frag string) *Material {
	return &Material{
		Name:           name,
		Key:            key,
		VertexSource:   vert,
		FragmentSource: frag,
		uniforms:       make(map[string]Uniform),
	}
}

func (m *Material) set(u Uniform) {
	if _, ok := m.uniforms[u.Name]; !ok {
		m.order = append(m.order, u.Name)
	}
	m.uniforms[u.Name] = u
}

func (m *Material) SetInt(name string, v int32) {
	m.set(Uniform{Name: name, Type: UniformInt, Int: v})
}

func (m *Material) SetFloat(name string, v float32) {
	m.set(Uniform{Name: name, Type: UniformFloat, Floats: []float32{v}})
}

func (m *Material) SetVector2(name string, v math.Vec2) {
	m.set(Uniform{Name: name, Type: UniformVec2, Floats: []float32{v.X, v.Y}})
}

func (m *Material) SetVector3(name string, v math.Vec3) {
	m.set(Uniform{Name: name, Type: UniformVec3, Floats: []float32{v.X, v.Y, v.Z}})
}

func (m *Material) SetColor3(name string, c core.Color3) {
	m.set(Uniform{Name: name, Type: UniformColor3, Floats: []float32{c.R, c.G, c.B}})
}

// SetArray3 sets a vec3 array from flat x,y,z triples.
func (m *Material) SetArray3(name string, flat []float32) {
	m.set(Uniform{Name: name, Type: UniformVec3Array, Floats: append([]float32(nil), flat...)})
}

func (m *Material) SetColor3Array(name string, cs []core.Color3) {
	m.set(Uniform{Name: name, Type: UniformColor3Array, Floats: core.FlattenColor3(cs)})
}

func (m *Material) SetMatrix(name string, mat math.Mat4) {
	flat := make([]float32, 0, 16)
	for c := 0; c < 4; c++ {
		flat = append(flat, mat[c][:]...)
	}
	m.set(Uniform{Name: name, Type: UniformMat4, Floats: flat})
}

func (m *Material) SetTexture(name string, tex *textures.Texture) {
	m.set(Uniform{Name: name, Type: UniformSampler, Texture: tex})
}

// Uniform returns the value last set under name.
func (m *Material) Uniform(name string) (Uniform, bool) {
	u, ok := m.uniforms[name]
	return u, ok
}

// Uniforms returns every uniform in first-set order.
func (m *Material) Uniforms() []Uniform {
	out := make([]Uniform, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.uniforms[name])
	}
	return out
}
