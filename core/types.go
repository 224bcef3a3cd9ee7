package core

import (
	"shading-lab/math"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// Color3 is an RGB colour without alpha, the form lights and materials use.
type Color3 struct {
	R, G, B float32
}

var (
	Color3White = Color3{1, 1, 1}
	Color3Black = Color3{0, 0, 0}
)

func NewColor3(r, g, b float32) Color3 {
	return Color3{R: r, G: g, B: b}
}

// Gray returns a colour with all three channels set to v.
func Gray(v float32) Color3 {
	return Color3{R: v, G: v, B: v}
}

func (c Color3) Array() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

func (c Color3) WithAlpha(a float32) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: a}
}

// FlattenColor3 packs colours into r,g,b,r,g,b...
func FlattenColor3(cs []Color3) []float32 {
	out := make([]float32, 0, len(cs)*3)
	for _, c := range cs {
		out = append(out, c.R, c.G, c.B)
	}
	return out
}

type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
}

type Transform struct {
	Position math.Vec3
	Scale    math.Vec3
}

func NewTransform() Transform {
	return Transform{
		Position: math.Vec3Zero,
		Scale:    math.Vec3One,
	}
}

func (t Transform) GetMatrix() math.Mat4 {
	return math.Mat4TS(t.Position, t.Scale)
}
