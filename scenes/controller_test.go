package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shading-lab/core"
	"shading-lab/materials"
	"shading-lab/math"
)

func TestControllerDefaults(t *testing.T) {
	c := newTestController(t)

	assert.Len(t, c.Scenes(), 3)
	assert.Equal(t, RenderState{ActiveScene: 0, ActiveLight: 0, Algorithm: materials.Gouraud}, c.State())
	assert.Same(t, c.Scenes()[0].Scene, c.ActiveScene())
}

func TestControllerSetActiveScene(t *testing.T) {
	c := newTestController(t)

	require.NoError(t, c.SetActiveScene(2))
	assert.Same(t, c.Scenes()[2].Scene, c.ActiveScene())

	for _, idx := range []int{-1, 3} {
		err := c.SetActiveScene(idx)
		assert.ErrorIs(t, err, ErrInvalidIndex)
	}
	assert.Equal(t, 2, c.State().ActiveScene)
}

func TestControllerSetShadingAlgorithmAllScenes(t *testing.T) {
	c := newTestController(t)

	require.NoError(t, c.SetShadingAlgorithm(materials.Phong))
	assert.Equal(t, materials.Phong, c.State().Algorithm)

	for _, ctx := range c.Scenes() {
		ground, err := ctx.Materials.Lookup(materials.Ground, materials.Phong)
		require.NoError(t, err)
		illum, err := ctx.Materials.Lookup(materials.Illum, materials.Phong)
		require.NoError(t, err)

		assert.Same(t, ground, ctx.Ground.Material, "scene %d ground", ctx.Index)
		for _, m := range ctx.Models {
			assert.Same(t, illum, m.Material, "scene %d model %s", ctx.Index, m.Name)
		}
	}

	err := c.SetShadingAlgorithm(materials.Algorithm(7))
	assert.ErrorIs(t, err, materials.ErrUnknownAlgorithm)
	assert.Equal(t, materials.Phong, c.State().Algorithm)
}

func TestControllerSetHeightScale(t *testing.T) {
	c := newTestController(t)

	c.SetHeightScale(-3.5)
	for _, ctx := range c.Scenes() {
		assert.Equal(t, float32(-3.5), ctx.Ground.Binding.Ground.HeightScale)
	}
	assert.Equal(t, float32(-3.5), c.HeightScale())
}

func TestControllerActiveLightMovesOnlyThatLight(t *testing.T) {
	c := newTestController(t)
	ctx := c.ActiveContext()
	before := []math.Vec3{ctx.Lights[0].Position, ctx.Lights[1].Position}

	require.NoError(t, c.SetActiveLight(1))
	c.ActiveScene().DispatchKey(core.KeyEvent{Key: "w"})

	assert.Equal(t, before[0], ctx.Lights[0].Position)
	assert.Equal(t, before[1].Add(math.NewVec3(0, 0, -0.5)), ctx.Lights[1].Position)
}

func TestLightKeys(t *testing.T) {
	c := newTestController(t)
	light := c.ActiveContext().Lights[0]
	start := light.Position

	cases := []struct {
		key  string
		want math.Vec3
	}{
		{"w", math.NewVec3(0, 0, -0.5)},
		{"a", math.NewVec3(-0.5, 0, 0)},
		{"s", math.NewVec3(0, 0, 0.5)},
		{"d", math.NewVec3(0.5, 0, 0)},
		{"r", math.NewVec3(0, 0.5, 0)},
		{"f", math.NewVec3(0, -0.5, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			light.Position = start
			c.ActiveScene().DispatchKey(core.KeyEvent{Key: tc.key})
			assert.Equal(t, start.Add(tc.want), light.Position)
		})
	}

	light.Position = start
	c.ActiveScene().DispatchKey(core.KeyEvent{Key: "w", Action: core.KeyUp})
	c.ActiveScene().DispatchKey(core.KeyEvent{Key: "q"})
	assert.Equal(t, start, light.Position)
}

func TestControllerSetActiveLightValidated(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.SetActiveScene(1))

	assert.ErrorIs(t, c.SetActiveLight(1), ErrInvalidIndex)
	assert.ErrorIs(t, c.SetActiveLight(-1), ErrInvalidIndex)
	assert.Equal(t, 0, c.State().ActiveLight)
}

func TestStaleActiveLightIsIgnored(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.SetActiveScene(2))
	require.NoError(t, c.SetActiveLight(2))

	// scene 1 has a single light; the index is kept but moves are skipped
	require.NoError(t, c.SetActiveScene(1))
	ctx := c.ActiveContext()
	before := ctx.Lights[0].Position

	c.ActiveScene().DispatchKey(core.KeyEvent{Key: "d"})
	assert.Equal(t, before, ctx.Lights[0].Position)
	assert.ErrorIs(t, c.MoveActiveLight(math.Vec3Right), ErrInvalidIndex)
}

func TestControllerContext(t *testing.T) {
	c := newTestController(t)

	ctx, err := c.Context(1)
	require.NoError(t, err)
	assert.Equal(t, 1, ctx.Index)

	_, err = c.Context(5)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestRenderStateIsolation(t *testing.T) {
	a := newTestController(t)
	b := newTestController(t)

	require.NoError(t, a.SetShadingAlgorithm(materials.Phong))
	assert.Equal(t, materials.Gouraud, b.State().Algorithm)
}
