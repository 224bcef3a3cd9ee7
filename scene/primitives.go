package scene

import (
	stdmath "math"

	"shading-lab/core"
	"shading-lab/math"
)

// CreateSphere builds a UV sphere centred at the origin.
func CreateSphere(radius float32, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	var vertices []core.Vertex
	var indices []uint32

	for ring := 0; ring <= rings; ring++ {
		phi := float64(ring) * stdmath.Pi / float64(rings)
		sinPhi := float32(stdmath.Sin(phi))
		cosPhi := float32(stdmath.Cos(phi))

		for seg := 0; seg <= segments; seg++ {
			theta := float64(seg) * 2.0 * stdmath.Pi / float64(segments)
			sinTheta := float32(stdmath.Sin(theta))
			cosTheta := float32(stdmath.Cos(theta))

			normal := math.Vec3{X: sinPhi * cosTheta, Y: cosPhi, Z: sinPhi * sinTheta}
			vertices = append(vertices, core.Vertex{
				Position: normal.Mul(radius),
				Normal:   normal,
				UV:       math.Vec2{X: float32(seg) / float32(segments), Y: float32(ring) / float32(rings)},
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return CreateMeshFromData("Sphere", vertices, indices)
}

// CreateBox builds an axis-aligned box of the given size centred at the origin,
// with separate vertices per face so each face is flat-shaded.
func CreateBox(width, height, depth float32) *Mesh {
	x, y, z := width/2, height/2, depth/2

	type face struct {
		normal  math.Vec3
		corners [4]math.Vec3
	}
	faces := []face{
		{math.Vec3Front, [4]math.Vec3{{X: -x, Y: -y, Z: z}, {X: x, Y: -y, Z: z}, {X: x, Y: y, Z: z}, {X: -x, Y: y, Z: z}}},
		{math.Vec3Back, [4]math.Vec3{{X: x, Y: -y, Z: -z}, {X: -x, Y: -y, Z: -z}, {X: -x, Y: y, Z: -z}, {X: x, Y: y, Z: -z}}},
		{math.Vec3Up, [4]math.Vec3{{X: -x, Y: y, Z: z}, {X: x, Y: y, Z: z}, {X: x, Y: y, Z: -z}, {X: -x, Y: y, Z: -z}}},
		{math.Vec3Down, [4]math.Vec3{{X: -x, Y: -y, Z: -z}, {X: x, Y: -y, Z: -z}, {X: x, Y: -y, Z: z}, {X: -x, Y: -y, Z: z}}},
		{math.Vec3Right, [4]math.Vec3{{X: x, Y: -y, Z: z}, {X: x, Y: -y, Z: -z}, {X: x, Y: y, Z: -z}, {X: x, Y: y, Z: z}}},
		{math.Vec3Left, [4]math.Vec3{{X: -x, Y: -y, Z: -z}, {X: -x, Y: -y, Z: z}, {X: -x, Y: y, Z: z}, {X: -x, Y: y, Z: -z}}},
	}
	uvs := [4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	vertices := make([]core.Vertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(vertices))
		for i, c := range f.corners {
			vertices = append(vertices, core.Vertex{Position: c, Normal: f.normal, UV: uvs[i]})
		}
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return CreateMeshFromData("Box", vertices, indices)
}

// CreateGround builds a unit square in the XZ plane centred at the origin,
// split into rows x cols cells. UVs span 0..1 so a heightmap covers it once.
func CreateGround(rows, cols int) *Mesh {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}

	vertices := make([]core.Vertex, 0, (rows+1)*(cols+1))
	indices := make([]uint32, 0, rows*cols*6)

	for z := 0; z <= rows; z++ {
		for x := 0; x <= cols; x++ {
			u := float32(x) / float32(cols)
			v := float32(z) / float32(rows)

			vertices = append(vertices, core.Vertex{
				Position: math.Vec3{X: u - 0.5, Y: 0, Z: v - 0.5},
				Normal:   math.Vec3Up,
				UV:       math.Vec2{X: u, Y: v},
			})
		}
	}

	for z := 0; z < rows; z++ {
		for x := 0; x < cols; x++ {
			topLeft := uint32(z*(cols+1) + x)
			topRight := topLeft + 1
			bottomLeft := topLeft + uint32(cols+1)
			bottomRight := bottomLeft + 1

			indices = append(indices, topLeft, bottomLeft, topRight)
			indices = append(indices, topRight, bottomLeft, bottomRight)
		}
	}

	return CreateMeshFromData("Ground", vertices, indices)
}
