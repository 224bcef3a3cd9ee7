package opengl

import (
	"fmt"
	"log/slog"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"shading-lab/core"
	"shading-lab/materials"
	"shading-lab/math"
	"shading-lab/scene"
	"shading-lab/textures"
)

// MaxLights is the length of the light arrays declared by the shaders.
const MaxLights = 8

// Names of the transform uniforms set on every draw.
const (
	UniformWorld        = "world"
	UniformView         = "view"
	UniformProjection   = "projection"
	UniformNormalMatrix = "normal_matrix"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
	HasIndices bool
}

// Renderer is the OpenGL rendering backend. It owns no shaders of its own:
// every draw uses the program of the node's material, compiled on first use.
type Renderer struct {
	gpuMeshes map[*scene.Mesh]*GPUMesh

	// uniform locations per program, resolved lazily by name
	locations map[uint32]map[string]int32
	programs  []uint32
	uploaded  []*textures.Texture

	viewportW, viewportH int32
}

func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	slog.Info("OpenGL initialised", "version", version)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	return &Renderer{
		gpuMeshes: make(map[*scene.Mesh]*GPUMesh),
		locations: make(map[uint32]map[string]int32),
	}, nil
}

// SetViewport resizes the OpenGL viewport.
func (r *Renderer) SetViewport(width, height int) {
	r.viewportW = int32(width)
	r.viewportH = int32(height)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// BeginFrame clears colour and depth.
func (r *Renderer) BeginFrame(clear core.Color) {
	gl.ClearColor(clear.R, clear.G, clear.B, clear.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Prepare compiles the material's program if it has not been compiled yet.
func (r *Renderer) Prepare(m *materials.Material) error {
	if m.Program != 0 {
		return nil
	}
	prog, err := newProgram(m.VertexSource, m.FragmentSource)
	if err != nil {
		return fmt.Errorf("material %s: %w", m.Name, err)
	}
	m.Program = prog
	r.programs = append(r.programs, prog)
	r.locations[prog] = make(map[string]int32)
	slog.Debug("compiled material", "name", m.Name, "program", prog)
	return nil
}

// DrawNode draws a mesh node with its current material. The binding and the
// transform uniforms are written into the material, then the material's
// whole uniform table is pushed before the draw call.
func (r *Renderer) DrawNode(node *scene.Node, view, proj math.Mat4) error {
	if node.Mesh == nil {
		return nil
	}
	m := node.Material
	if m == nil {
		return fmt.Errorf("node %q has no material", node.Name)
	}
	if err := r.Prepare(m); err != nil {
		return err
	}
	gpu := r.ensureUploaded(node.Mesh)
	if gpu == nil {
		return nil
	}

	world := node.GetWorldMatrix()
	m.SetMatrix(UniformWorld, world)
	m.SetMatrix(UniformView, view)
	m.SetMatrix(UniformProjection, proj)
	m.SetMatrix(UniformNormalMatrix, world.NormalMatrix())
	if node.Binding != nil {
		node.Binding.Apply(m)
	}

	gl.UseProgram(m.Program)
	if err := r.flush(m); err != nil {
		return fmt.Errorf("node %q: %w", node.Name, err)
	}

	gl.BindVertexArray(gpu.VAO)
	if gpu.HasIndices {
		gl.DrawElements(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(node.Mesh.Vertices)))
	}
	gl.BindVertexArray(0)
	return nil
}

// flush pushes every uniform of m to its program. Samplers take texture
// units in the order they appear; textures not yet on the GPU are uploaded.
func (r *Renderer) flush(m *materials.Material) error {
	var unit int32
	for _, u := range m.Uniforms() {
		loc := r.location(m.Program, u.Name)
		if loc < 0 {
			continue
		}
		switch u.Type {
		case materials.UniformInt:
			gl.Uniform1i(loc, u.Int)
		case materials.UniformFloat:
			gl.Uniform1f(loc, u.Floats[0])
		case materials.UniformVec2:
			gl.Uniform2fv(loc, 1, &u.Floats[0])
		case materials.UniformVec3, materials.UniformColor3:
			gl.Uniform3fv(loc, 1, &u.Floats[0])
		case materials.UniformVec3Array, materials.UniformColor3Array:
			n := min(u.Count(), MaxLights)
			if n > 0 {
				gl.Uniform3fv(loc, int32(n), &u.Floats[0])
			}
		case materials.UniformMat4:
			gl.UniformMatrix4fv(loc, 1, false, &u.Floats[0])
		case materials.UniformSampler:
			tex := u.Texture
			if tex == nil {
				continue
			}
			if tex.GLID == 0 {
				if err := UploadTexture(tex); err != nil {
					return fmt.Errorf("uniform %s: %w", u.Name, err)
				}
				r.uploaded = append(r.uploaded, tex)
			}
			gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
			gl.BindTexture(gl.TEXTURE_2D, tex.GLID)
			gl.Uniform1i(loc, unit)
			unit++
		}
	}
	return nil
}

// location caches GetUniformLocation per program. Uniforms the linker
// dropped resolve to -1 and are skipped.
func (r *Renderer) location(prog uint32, name string) int32 {
	cache := r.locations[prog]
	if loc, ok := cache[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
	cache[name] = loc
	return loc
}

func (r *Renderer) ReleaseMesh(mesh *scene.Mesh) {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		if gpu.HasIndices {
			gl.DeleteBuffers(1, &gpu.EBO)
		}
		delete(r.gpuMeshes, mesh)
		mesh.GPUData = nil
	}
}

// Destroy releases all GPU resources.
func (r *Renderer) Destroy() {
	for mesh := range r.gpuMeshes {
		r.ReleaseMesh(mesh)
	}
	for _, tex := range r.uploaded {
		DeleteTexture(tex)
	}
	for _, prog := range r.programs {
		gl.DeleteProgram(prog)
	}
	r.uploaded = nil
	r.programs = nil
}

func (r *Renderer) ensureUploaded(mesh *scene.Mesh) *GPUMesh {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		return gpu
	}
	if len(mesh.Vertices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gpu := &GPUMesh{
		IndexCount: int32(len(mesh.Indices)),
		HasIndices: len(mesh.Indices) > 0,
	}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.UV))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	if gpu.HasIndices {
		gl.GenBuffers(1, &gpu.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
			len(mesh.Indices)*4,
			gl.Ptr(mesh.Indices),
			gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)

	r.gpuMeshes[mesh] = gpu
	mesh.GPUData = gpu
	return gpu
}

// ── Shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
