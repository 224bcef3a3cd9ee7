package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shading-lab/core"
	"shading-lab/materials"
	"shading-lab/math"
	"shading-lab/scene"
)

func uniform(t *testing.T, m *materials.Material, name string) materials.Uniform {
	t.Helper()
	u, ok := m.Uniform(name)
	require.True(t, ok, "uniform %s not set", name)
	return u
}

func TestSyncUniforms(t *testing.T) {
	opts, _ := testOptions(t)
	ctx, err := Assemble(2, Definitions()[2], NewRenderState(), opts)
	require.NoError(t, err)

	m := materials.NewMaterial("probe", materials.Key{}, "", "")
	SyncUniforms(ctx, m)

	assert.Equal(t, []float32{0, 1.8, 10}, uniform(t, m, UniformCameraPosition).Floats)
	assert.Equal(t, []float32{0.2, 0.2, 0.2}, uniform(t, m, UniformAmbient).Floats)
	assert.Equal(t, int32(3), uniform(t, m, UniformNumLights).Int)

	positions := uniform(t, m, UniformLightPositions)
	assert.Equal(t, materials.UniformVec3Array, positions.Type)
	assert.Equal(t, []float32{1, 1, 5, 1, 1, 5, 2, 1, 5}, positions.Floats)
	assert.Equal(t, 3, positions.Count())

	colors := uniform(t, m, UniformLightColors)
	assert.Equal(t, materials.UniformColor3Array, colors.Type)
	assert.Equal(t, []float32{1, .99, .91, 1, 0, 0, 0, 0, 1}, colors.Floats)
}

func TestSyncUniformsNoLights(t *testing.T) {
	s := scene.NewScene("empty")
	s.Ambient = core.Gray(0.2)
	ctx := &SceneContext{
		Scene:  s,
		Camera: scene.NewCamera(math.NewVec3(1, 2, 3), math.Vec3Zero, 1, 0.1, 100),
	}

	m := materials.NewMaterial("probe", materials.Key{}, "", "")
	require.NotPanics(t, func() { SyncUniforms(ctx, m) })

	assert.Equal(t, int32(0), uniform(t, m, UniformNumLights).Int)
	assert.Empty(t, uniform(t, m, UniformLightPositions).Floats)
	assert.Empty(t, uniform(t, m, UniformLightColors).Floats)
	assert.Equal(t, 0, uniform(t, m, UniformLightColors).Count())
}

func TestUniformSyncFollowsAlgorithm(t *testing.T) {
	opts, _ := testOptions(t)
	state := NewRenderState()
	ctx, err := Assemble(0, Definitions()[0], state, opts)
	require.NoError(t, err)

	ctx.Scene.BeforeRender()
	for _, kind := range materials.Kinds {
		g, err := ctx.Materials.Lookup(kind, materials.Gouraud)
		require.NoError(t, err)
		assert.Equal(t, int32(2), uniform(t, g, UniformNumLights).Int)

		p, err := ctx.Materials.Lookup(kind, materials.Phong)
		require.NoError(t, err)
		_, ok := p.Uniform(UniformNumLights)
		assert.False(t, ok, "inactive %s material was synced", p.Name)
	}

	// a light moved earlier in the frame is visible to the sync
	state.Algorithm = materials.Phong
	ctx.Scene.DispatchKey(core.KeyEvent{Key: "r"})
	ctx.Scene.BeforeRender()

	p, err := ctx.Materials.Lookup(materials.Illum, materials.Phong)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1.5, 5, 0, 3, 0}, uniform(t, p, UniformLightPositions).Floats)
}
