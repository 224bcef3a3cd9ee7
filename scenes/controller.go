package scenes

import (
	"fmt"
	"log/slog"

	"shading-lab/materials"
	"shading-lab/math"
	"shading-lab/scene"
)

// Controller is the public surface for switching between scenes, shading
// algorithms, height scales and lights. It owns the RenderState that the
// scene handlers read.
type Controller struct {
	state  *RenderState
	scenes []*SceneContext
}

// New assembles every definition against a fresh RenderState.
func New(defs []Definition, opts Options) (*Controller, error) {
	state := NewRenderState()
	c := &Controller{state: state}
	for i, def := range defs {
		ctx, err := Assemble(i, def, state, opts)
		if err != nil {
			return nil, err
		}
		c.scenes = append(c.scenes, ctx)
	}
	if len(c.scenes) == 0 {
		return nil, fmt.Errorf("no scenes: %w", ErrInvalidIndex)
	}
	return c, nil
}

// ActiveScene returns the scene graph currently selected.
func (c *Controller) ActiveScene() *scene.Scene {
	return c.ActiveContext().Scene
}

func (c *Controller) ActiveContext() *SceneContext {
	return c.scenes[c.state.ActiveScene]
}

// SetActiveScene selects scene idx. The active light index is kept.
func (c *Controller) SetActiveScene(idx int) error {
	if idx < 0 || idx >= len(c.scenes) {
		slog.Warn("active scene rejected", "index", idx, "scenes", len(c.scenes))
		return fmt.Errorf("%w: scene %d of %d", ErrInvalidIndex, idx, len(c.scenes))
	}
	c.state.ActiveScene = idx
	slog.Debug("active scene", "index", idx)
	return nil
}

// SetShadingAlgorithm switches every scene, not only the active one.
func (c *Controller) SetShadingAlgorithm(alg materials.Algorithm) error {
	if !alg.Valid() {
		return fmt.Errorf("%w: %d", materials.ErrUnknownAlgorithm, int(alg))
	}
	for _, ctx := range c.scenes {
		if err := ctx.AssignMaterials(alg); err != nil {
			return err
		}
	}
	c.state.Algorithm = alg
	slog.Debug("shading algorithm", "algorithm", alg)
	return nil
}

// SetHeightScale applies v to the ground of every scene. Any value is accepted.
func (c *Controller) SetHeightScale(v float32) {
	for _, ctx := range c.scenes {
		ctx.SetHeightScale(v)
	}
	slog.Debug("height scale", "value", v)
}

// HeightScale returns the height scale of the active scene's ground.
func (c *Controller) HeightScale() float32 {
	return c.ActiveContext().Ground.Binding.Ground.HeightScale
}

// SetActiveLight selects the light moved by keyboard input. idx is checked
// against the active scene's lights.
func (c *Controller) SetActiveLight(idx int) error {
	if _, err := c.ActiveContext().Light(idx); err != nil {
		slog.Warn("active light rejected", "index", idx, "scene", c.state.ActiveScene)
		return err
	}
	c.state.ActiveLight = idx
	slog.Debug("active light", "index", idx)
	return nil
}

// MoveActiveLight translates the active light of the active scene.
func (c *Controller) MoveActiveLight(delta math.Vec3) error {
	return MoveLight(c.ActiveContext(), c.state, delta)
}

// State returns a copy of the current selection.
func (c *Controller) State() RenderState {
	return *c.state
}

func (c *Controller) Scenes() []*SceneContext {
	return c.scenes
}

// Context returns the scene context at idx.
func (c *Controller) Context(idx int) (*SceneContext, error) {
	if idx < 0 || idx >= len(c.scenes) {
		return nil, fmt.Errorf("%w: scene %d of %d", ErrInvalidIndex, idx, len(c.scenes))
	}
	return c.scenes[idx], nil
}
