package scene

import (
	"errors"
	"fmt"

	"shading-lab/math"
)

// ErrMalformedMesh is returned for index lists that do not describe triangles
// over the given positions.
var ErrMalformedMesh = errors.New("malformed mesh")

// ComputeVertexNormals returns one normal per position: the normalized sum of
// the unit face normals of every triangle that references the vertex. Face
// normals follow the winding (p2-p1) x (p3-p1). A vertex used by no triangle,
// or whose face normals cancel, gets the zero vector.
func ComputeVertexNormals(positions []math.Vec3, indices []uint32) ([]math.Vec3, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d indices is not a multiple of 3", ErrMalformedMesh, len(indices))
	}
	for i, idx := range indices {
		if int(idx) >= len(positions) {
			return nil, fmt.Errorf("%w: index %d at %d out of range for %d vertices",
				ErrMalformedMesh, idx, i, len(positions))
		}
	}

	normals := make([]math.Vec3, len(positions))

	// Accumulate unit face normals per vertex
	for i := 0; i < len(indices); i += 3 {
		i1, i2, i3 := indices[i], indices[i+1], indices[i+2]
		p1, p2, p3 := positions[i1], positions[i2], positions[i3]

		faceNormal := p2.Sub(p1).Cross(p3.Sub(p1)).Normalize()

		normals[i1] = normals[i1].Add(faceNormal)
		normals[i2] = normals[i2].Add(faceNormal)
		normals[i3] = normals[i3].Add(faceNormal)
	}

	// Normalize; zero sums stay zero
	for i := range normals {
		normals[i] = normals[i].Normalize()
	}

	return normals, nil
}

// RecomputeNormals replaces the normals of m with ComputeVertexNormals.
func RecomputeNormals(m *Mesh) error {
	normals, err := ComputeVertexNormals(m.Positions(), m.Indices)
	if err != nil {
		return fmt.Errorf("mesh %s: %w", m.Name, err)
	}
	for i := range m.Vertices {
		m.Vertices[i].Normal = normals[i]
	}
	return nil
}
