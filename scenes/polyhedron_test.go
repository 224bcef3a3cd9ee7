package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shading-lab/math"
)

func TestBuildPolyhedron(t *testing.T) {
	mesh, err := BuildPolyhedron()
	require.NoError(t, err)

	assert.Equal(t, PolyhedronName, mesh.Name)
	require.Len(t, mesh.Vertices, 20)
	require.Len(t, mesh.Indices, 66)

	normals := mesh.Normals()
	for i := 0; i < 15; i++ {
		assert.InDelta(t, 1, normals[i].Length(), eps, "vertex %d", i)
	}

	// vertices 15-19 are not referenced by any triangle
	for i := 15; i < 20; i++ {
		assert.Equal(t, math.Vec3Zero, normals[i], "vertex %d", i)
		assert.True(t, normals[i].IsFinite(), "vertex %d", i)
	}

	want := map[int]math.Vec3{
		0:  {X: -0.42915, Y: -0.42915, Z: 0.79477},
		9:  {X: 1, Y: 0, Z: 0},
		10: {X: 0, Y: -0.88304, Z: 0.46930},
		14: {X: 0.12643, Y: 0.69928, Z: 0.70358},
	}
	for i, w := range want {
		assert.InDelta(t, w.X, normals[i].X, 1e-4, "vertex %d", i)
		assert.InDelta(t, w.Y, normals[i].Y, 1e-4, "vertex %d", i)
		assert.InDelta(t, w.Z, normals[i].Z, 1e-4, "vertex %d", i)
	}
}

func TestBuildPolyhedronDeterministic(t *testing.T) {
	a, err := BuildPolyhedron()
	require.NoError(t, err)
	b, err := BuildPolyhedron()
	require.NoError(t, err)
	assert.Equal(t, a.Normals(), b.Normals())
}

func TestPolyhedronDataIsCopied(t *testing.T) {
	positions, indices := PolyhedronData()
	positions[0] = math.Vec3One
	indices[0] = 19

	again, idx := PolyhedronData()
	assert.Equal(t, math.Vec3Zero, again[0])
	assert.Equal(t, uint32(0), idx[0])
}
