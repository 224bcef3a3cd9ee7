package scene

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shading-lab/math"
)

const eps = 1e-5

func assertVec3(t *testing.T, want, got math.Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, eps, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, eps, msgAndArgs...)
}

// cube corners of [-1,1]^3 indexed by bits x=1 y=2 z=4, wound outward
var (
	cubePositions = []math.Vec3{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1},
	}
	cubeIndices = []uint32{
		0, 2, 1, 1, 2, 3, // -Z
		4, 5, 6, 5, 7, 6, // +Z
		0, 4, 2, 2, 4, 6, // -X
		1, 3, 5, 3, 7, 5, // +X
		0, 1, 4, 1, 5, 4, // -Y
		2, 6, 3, 3, 6, 7, // +Y
	}
)

func TestComputeVertexNormalsSingleTriangle(t *testing.T) {
	positions := []math.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}

	normals, err := ComputeVertexNormals(positions, []uint32{0, 1, 2})
	require.NoError(t, err)
	require.Len(t, normals, 3)
	for i, n := range normals {
		assertVec3(t, math.Vec3Front, n, "vertex %d", i)
	}

	// reversed winding flips the normal
	normals, err = ComputeVertexNormals(positions, []uint32{0, 2, 1})
	require.NoError(t, err)
	assertVec3(t, math.Vec3Back, normals[0])
}

func TestComputeVertexNormalsCube(t *testing.T) {
	normals, err := ComputeVertexNormals(cubePositions, cubeIndices)
	require.NoError(t, err)
	require.Len(t, normals, len(cubePositions))

	for i, n := range normals {
		assert.InDelta(t, 1, n.Length(), eps, "vertex %d not unit length", i)
		assert.Greater(t, n.Dot(cubePositions[i]), float32(0), "vertex %d points inward", i)
	}

	// corners 0 and 7 touch exactly one triangle per face
	inv := float32(1 / stdmath.Sqrt(3))
	assertVec3(t, math.NewVec3(-inv, -inv, -inv), normals[0])
	assertVec3(t, math.NewVec3(inv, inv, inv), normals[7])
}

func TestComputeVertexNormalsCoplanarFan(t *testing.T) {
	// k triangles sharing vertex 0 with the same face normal give that normal
	positions := []math.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: -1, Y: 1, Z: 0},
	}
	indices := []uint32{0, 1, 2, 0, 2, 3, 0, 3, 4}

	normals, err := ComputeVertexNormals(positions, indices)
	require.NoError(t, err)
	for i, n := range normals {
		assertVec3(t, math.Vec3Front, n, "vertex %d", i)
	}
}

func TestComputeVertexNormalsUnreferencedAndDegenerate(t *testing.T) {
	positions := []math.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, // collinear
		{X: 5, Y: 5, Z: 5}, // unreferenced
	}

	normals, err := ComputeVertexNormals(positions, []uint32{0, 1, 2})
	require.NoError(t, err)
	for i, n := range normals {
		assert.Equal(t, math.Vec3Zero, n, "vertex %d", i)
		assert.True(t, n.IsFinite(), "vertex %d", i)
	}
}

func TestComputeVertexNormalsOpposingFaces(t *testing.T) {
	// two faces with opposite winding over the same vertices cancel out
	positions := []math.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}

	normals, err := ComputeVertexNormals(positions, []uint32{0, 1, 2, 0, 2, 1})
	require.NoError(t, err)
	for _, n := range normals {
		assert.Equal(t, math.Vec3Zero, n)
	}
}

func TestComputeVertexNormalsDeterministic(t *testing.T) {
	a, err := ComputeVertexNormals(cubePositions, cubeIndices)
	require.NoError(t, err)
	b, err := ComputeVertexNormals(cubePositions, cubeIndices)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComputeVertexNormalsEmpty(t *testing.T) {
	normals, err := ComputeVertexNormals(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, normals)
}

func TestComputeVertexNormalsMalformed(t *testing.T) {
	positions := []math.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}

	_, err := ComputeVertexNormals(positions, []uint32{0, 1, 2, 0})
	assert.ErrorIs(t, err, ErrMalformedMesh)

	_, err = ComputeVertexNormals(positions, []uint32{0, 1, 3})
	assert.ErrorIs(t, err, ErrMalformedMesh)
}

func TestRecomputeNormals(t *testing.T) {
	m := CreateMeshFromArrays("cube", cubePositions, nil, cubeIndices)
	require.NoError(t, RecomputeNormals(m))

	want, err := ComputeVertexNormals(cubePositions, cubeIndices)
	require.NoError(t, err)
	assert.Equal(t, want, m.Normals())

	bad := CreateMeshFromArrays("bad", cubePositions[:2], nil, []uint32{0, 1, 2})
	assert.ErrorIs(t, RecomputeNormals(bad), ErrMalformedMesh)
}
