package scene

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shading-lab/core"
	"shading-lab/materials"
	"shading-lab/math"
)

type recordingHandler struct {
	name string
	log  *[]string
}

func (h recordingHandler) HandleKey(ev core.KeyEvent) {
	*h.log = append(*h.log, h.name+":"+ev.Key)
}

func (h recordingHandler) BeforeRender() {
	*h.log = append(*h.log, h.name+":frame")
}

func TestSceneObserversRunInOrder(t *testing.T) {
	var log []string
	s := NewScene("test")
	s.OnKeyboard(recordingHandler{"a", &log})
	s.OnKeyboard(recordingHandler{"b", &log})
	s.OnBeforeRender(recordingHandler{"c", &log})

	s.DispatchKey(core.KeyEvent{Key: "w"})
	s.BeforeRender()

	assert.Equal(t, []string{"a:w", "b:w", "c:frame"}, log)
}

func TestSceneLightArrays(t *testing.T) {
	s := NewScene("lights")
	assert.Empty(t, s.LightPositions())
	assert.Empty(t, s.LightColors())

	red := NewPointLight("red", math.NewVec3(1, 1, 5))
	red.Diffuse = core.NewColor3(1, 0, 0)
	s.AddLight(red)
	s.AddLight(NewPointLight("white", math.NewVec3(0, 3, 0)))

	assert.Equal(t, []math.Vec3{{X: 1, Y: 1, Z: 5}, {X: 0, Y: 3, Z: 0}}, s.LightPositions())
	assert.Equal(t, []core.Color3{{R: 1}, core.Color3White}, s.LightColors())
}

func TestCameraAttachControl(t *testing.T) {
	s := NewScene("cam")
	cam := NewCamera(math.NewVec3(0, 1.8, 10), math.NewVec3(0, 1.8, 0), math.DegToRad(35), 0.1, 100)
	s.SetCamera(cam)

	// detached cameras ignore input
	cam.HandleKey(core.KeyEvent{Key: "up"})
	assertVec3(t, math.NewVec3(0, 1.8, 10), cam.Position)

	cam.AttachControl(s)
	cam.AttachControl(s)
	s.DispatchKey(core.KeyEvent{Key: "up"})
	assertVec3(t, math.NewVec3(0, 1.8, 9.5), cam.Position)
	assertVec3(t, math.NewVec3(0, 1.8, -0.5), cam.Target)

	s.DispatchKey(core.KeyEvent{Key: "right"})
	assertVec3(t, math.NewVec3(0.5, 1.8, 9.5), cam.Position)

	s.DispatchKey(core.KeyEvent{Key: "up", Action: core.KeyUp})
	assertVec3(t, math.NewVec3(0.5, 1.8, 9.5), cam.Position)
}

func TestNodeWorldMatrix(t *testing.T) {
	parent := NewNode("parent")
	parent.SetPosition(math.NewVec3(1, 0, 0))
	child := NewMeshNode(CreateBox(1, 1, 1))
	child.SetScale(math.NewVec3(5, 5, 5))
	parent.AddChild(child)

	assertVec3(t, math.NewVec3(6, 0, 0), child.GetWorldMatrix().MulVec3(math.NewVec3(1, 0, 0)))

	parent.Translate(math.NewVec3(0, 2, 0))
	assertVec3(t, math.NewVec3(6, 2, 0), child.GetWorldMatrix().MulVec3(math.NewVec3(1, 0, 0)))
	assert.Same(t, child, parent.Find("Box"))
}

func TestGLBRoundTrip(t *testing.T) {
	mesh := CreateMeshFromArrays("cube", cubePositions, nil, cubeIndices)
	require.NoError(t, RecomputeNormals(mesh))
	node := NewMeshNode(mesh)
	node.SetPosition(math.NewVec3(1, 2, 3))
	node.SetScale(math.NewVec3(5, 5, 5))
	node.Binding = materials.NewBinding(core.NewColor3(0.2, 0.45, 0.5), core.Gray(0.4), 5)

	path := filepath.Join(t.TempDir(), "cube.glb")
	require.NoError(t, SaveGLB(path, node))

	roots, err := LoadGLTF(path)
	require.NoError(t, err)
	require.Len(t, roots, 1)

	got := roots[0]
	assert.Equal(t, "cube", got.Name)
	assertVec3(t, node.Transform.Position, got.Transform.Position)
	assertVec3(t, node.Transform.Scale, got.Transform.Scale)
	require.NotNil(t, got.Mesh)
	assert.Equal(t, mesh.Indices, got.Mesh.Indices)
	require.Len(t, got.Mesh.Vertices, len(mesh.Vertices))
	for i := range mesh.Vertices {
		assertVec3(t, mesh.Vertices[i].Position, got.Mesh.Vertices[i].Position)
		assertVec3(t, mesh.Vertices[i].Normal, got.Mesh.Vertices[i].Normal)
	}

	require.NotNil(t, got.Binding)
	assert.InDelta(t, 0.2, got.Binding.Color.R, eps)
	assert.InDelta(t, 0.45, got.Binding.Color.G, eps)
	assert.InDelta(t, 0.5, got.Binding.Color.B, eps)
	assert.InDelta(t, 5, got.Binding.Shininess, 1e-3)
	assert.InDelta(t, 0.4, got.Binding.Specular.R, 1e-3)
}

func TestSaveGLBRequiresMesh(t *testing.T) {
	err := SaveGLB(filepath.Join(t.TempDir(), "x.glb"), NewNode("empty"))
	assert.Error(t, err)
}
