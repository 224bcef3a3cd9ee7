package scenes

import (
	"fmt"

	"shading-lab/math"
	"shading-lab/scene"
)

// PolyhedronName is the model name of the procedural mesh in scene 0.
const PolyhedronName = "triangleMesh"

// Square base at z=0, a four-lobed pyramid rising to z=3 and a ring of
// side vertices at z=1. The last five vertices are not used by any triangle.
var polyhedronPositions = []math.Vec3{
	{X: 0, Y: 0, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: 1, Y: 1, Z: 0},
	{X: 0, Y: 1, Z: 0},

	{X: 0.5, Y: 0.5, Z: 1},
	{X: 0.25, Y: 0.25, Z: 2},
	{X: 0.75, Y: 0.25, Z: 2},
	{X: 0.75, Y: 0.75, Z: 2},
	{X: 0.25, Y: 0.75, Z: 2},
	{X: 0.5, Y: 0.5, Z: 3},

	{X: 0.5, Y: 0.25, Z: 1},
	{X: 0.75, Y: 0.5, Z: 1},
	{X: 0.5, Y: 0.75, Z: 1},
	{X: 0.25, Y: 0.5, Z: 1},

	{X: 0.75, Y: 0.25, Z: 1},
	{X: 0.75, Y: 0.75, Z: 1},

	{X: 0.5, Y: 0.75, Z: 1},

	{X: 0.25, Y: 0.75, Z: 1},
	{X: 0.25, Y: 0.25, Z: 1},
	{X: 0.5, Y: 0.25, Z: 1},
}

var polyhedronIndices = []uint32{
	0, 1, 2,
	0, 2, 3,

	4, 5, 6,
	4, 6, 7,
	4, 7, 8,
	4, 8, 9,

	0, 1, 10,
	1, 2, 11,
	2, 3, 12,
	3, 0, 13,
	1, 11, 10,
	2, 12, 11,
	3, 13, 12,
	0, 10, 13,
	2, 4, 14,
	4, 5, 14,
	5, 6, 14,
	6, 7, 14,
	7, 8, 14,
	8, 9, 14,
	9, 4, 14,
	4, 9, 5,
}

// PolyhedronData returns copies of the authored positions and indices.
func PolyhedronData() ([]math.Vec3, []uint32) {
	return append([]math.Vec3(nil), polyhedronPositions...), append([]uint32(nil), polyhedronIndices...)
}

// BuildPolyhedron builds the procedural mesh with smoothed vertex normals.
func BuildPolyhedron() (*scene.Mesh, error) {
	positions, indices := PolyhedronData()
	normals, err := scene.ComputeVertexNormals(positions, indices)
	if err != nil {
		return nil, fmt.Errorf("polyhedron normals: %w", err)
	}
	return scene.CreateMeshFromArrays(PolyhedronName, positions, normals, indices), nil
}
