package scene

import (
	"shading-lab/core"
	"shading-lab/math"
)

// KeyHandler receives keyboard events dispatched to a scene.
type KeyHandler interface {
	HandleKey(ev core.KeyEvent)
}

// FrameHandler runs once per frame before the scene is drawn.
type FrameHandler interface {
	BeforeRender()
}

// Scene manages a collection of nodes, the active camera and point lights.
// Observers are called synchronously in registration order.
type Scene struct {
	Name        string
	Root        *Node
	Camera      *Camera
	Lights      []*Light
	Ambient     core.Color3
	ClearColor  core.Color
	RightHanded bool

	keyHandlers   []KeyHandler
	frameHandlers []FrameHandler
}

// Light is a point light.
type Light struct {
	Name     string
	Position math.Vec3
	Diffuse  core.Color3
	Specular core.Color3
}

func NewPointLight(name string, position math.Vec3) *Light {
	return &Light{
		Name:     name,
		Position: position,
		Diffuse:  core.Color3White,
		Specular: core.Color3White,
	}
}

func (l *Light) Translate(delta math.Vec3) {
	l.Position = l.Position.Add(delta)
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:       name,
		Root:       NewNode("Root"),
		Lights:     make([]*Light, 0),
		Ambient:    core.Color3Black,
		ClearColor: core.ColorBlack,
	}
}

func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

func (s *Scene) AddNode(node *Node) {
	s.Root.AddChild(node)
}

func (s *Scene) RemoveNode(node *Node) {
	s.Root.RemoveChild(node)
}

func (s *Scene) AddLight(light *Light) {
	s.Lights = append(s.Lights, light)
}

// LightPositions returns light positions in scene order.
func (s *Scene) LightPositions() []math.Vec3 {
	out := make([]math.Vec3, len(s.Lights))
	for i, l := range s.Lights {
		out[i] = l.Position
	}
	return out
}

// LightColors returns the diffuse colour of each light in scene order.
func (s *Scene) LightColors() []core.Color3 {
	out := make([]core.Color3, len(s.Lights))
	for i, l := range s.Lights {
		out[i] = l.Diffuse
	}
	return out
}

// GetVisibleNodes returns all nodes with meshes that are visible
func (s *Scene) GetVisibleNodes() []*Node {
	var visible []*Node
	s.Root.Traverse(func(node *Node) {
		if node.Visible && node.Mesh != nil {
			visible = append(visible, node)
		}
	})
	return visible
}

// ── Observers ───────────────────────────────────────────────────────────────

func (s *Scene) OnKeyboard(h KeyHandler) {
	s.keyHandlers = append(s.keyHandlers, h)
}

func (s *Scene) DispatchKey(ev core.KeyEvent) {
	for _, h := range s.keyHandlers {
		h.HandleKey(ev)
	}
}

func (s *Scene) OnBeforeRender(h FrameHandler) {
	s.frameHandlers = append(s.frameHandlers, h)
}

// BeforeRender runs the per-frame hooks.
func (s *Scene) BeforeRender() {
	for _, h := range s.frameHandlers {
		h.BeforeRender()
	}
}
