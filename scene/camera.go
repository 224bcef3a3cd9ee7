package scene

import (
	"shading-lab/core"
	"shading-lab/math"
)

// CameraStep is how far one arrow key press moves an attached camera.
const CameraStep float32 = 0.5

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3
	FOV      float32 // vertical, radians
	Aspect   float32
	Near     float32
	Far      float32

	// InputEnabled is set by AttachControl; arrow keys move the camera.
	InputEnabled bool
}

func NewCamera(position, target math.Vec3, fov, near, far float32) *Camera {
	return &Camera{
		Position: position,
		Target:   target,
		Up:       math.Vec3Up,
		FOV:      fov,
		Aspect:   16.0 / 9.0,
		Near:     near,
		Far:      far,
	}
}

func (c *Camera) UpdateAspectRatio(width, height float32) {
	if height > 0 {
		c.Aspect = width / height
	}
}

func (c *Camera) SetTarget(target math.Vec3) {
	c.Target = target
}

// Translate moves the camera and its target together.
func (c *Camera) Translate(delta math.Vec3) {
	c.Position = c.Position.Add(delta)
	c.Target = c.Target.Add(delta)
}

func (c *Camera) GetForward() math.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

func (c *Camera) GetRight() math.Vec3 {
	return c.GetForward().Cross(c.Up).Normalize()
}

func (c *Camera) GetViewMatrix() math.Mat4 {
	return math.Mat4LookAt(c.Position, c.Target, c.Up)
}

func (c *Camera) GetProjectionMatrix() math.Mat4 {
	return math.Mat4Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

func (c *Camera) GetViewProjectionMatrix() math.Mat4 {
	return c.GetProjectionMatrix().Mul(c.GetViewMatrix())
}

// AttachControl lets s's keyboard events drive the camera.
func (c *Camera) AttachControl(s *Scene) {
	if c.InputEnabled {
		return
	}
	c.InputEnabled = true
	s.OnKeyboard(c)
}

// HandleKey moves the camera on arrow keys: up/down along the view
// direction, left/right sideways.
func (c *Camera) HandleKey(ev core.KeyEvent) {
	if !c.InputEnabled || ev.Action != core.KeyDown {
		return
	}
	var delta math.Vec3
	switch ev.Key {
	case "up":
		delta = c.GetForward().Mul(CameraStep)
	case "down":
		delta = c.GetForward().Mul(-CameraStep)
	case "right":
		delta = c.GetRight().Mul(CameraStep)
	case "left":
		delta = c.GetRight().Mul(-CameraStep)
	default:
		return
	}
	c.Translate(delta)
}
