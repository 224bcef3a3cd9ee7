package scenes

import (
	"fmt"

	"shading-lab/core"
	"shading-lab/materials"
	"shading-lab/scene"
)

// SceneContext is one assembled scene together with everything the
// controller and handlers need to reach without walking the graph.
type SceneContext struct {
	Index              int
	Scene              *scene.Scene
	Camera             *scene.Camera
	Background         core.Color
	Ambient            core.Color3
	GroundSubdivisions [2]int
	Lights             []*scene.Light
	Models             []*scene.Node
	Ground             *scene.Node
	Materials          *materials.Set
}

// Light returns the light at idx.
func (c *SceneContext) Light(idx int) (*scene.Light, error) {
	if idx < 0 || idx >= len(c.Lights) {
		return nil, fmt.Errorf("%w: light %d (scene %d has %d lights)", ErrInvalidIndex, idx, c.Index, len(c.Lights))
	}
	return c.Lights[idx], nil
}

// Model returns the model instance with the given name, or nil.
func (c *SceneContext) Model(name string) *scene.Node {
	for _, m := range c.Models {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// AssignMaterials points the ground at its ground material and every model
// at its illum material for alg.
func (c *SceneContext) AssignMaterials(alg materials.Algorithm) error {
	ground, err := c.Materials.Lookup(materials.Ground, alg)
	if err != nil {
		return fmt.Errorf("scene %d: %w", c.Index, err)
	}
	illum, err := c.Materials.Lookup(materials.Illum, alg)
	if err != nil {
		return fmt.Errorf("scene %d: %w", c.Index, err)
	}
	c.Ground.Material = ground
	for _, m := range c.Models {
		m.Material = illum
	}
	return nil
}

// SetHeightScale updates the ground binding; the value is not range checked.
func (c *SceneContext) SetHeightScale(v float32) {
	c.Ground.Binding.Ground.HeightScale = v
}

// Renderables returns the ground followed by the models, in draw order.
func (c *SceneContext) Renderables() []*scene.Node {
	out := make([]*scene.Node, 0, len(c.Models)+1)
	out = append(out, c.Ground)
	return append(out, c.Models...)
}
