package math

import "github.com/go-gl/mathgl/mgl32"

// Mat4 is a column-major 4x4 matrix: m[col][row]. Its memory layout matches
// what gl.UniformMatrix4fv expects with transpose=false.
type Mat4 [4][4]float32

func Mat4Identity() Mat4 {
	return Mat4FromMGL(mgl32.Ident4())
}

// Mat4FromMGL converts from mathgl's flat column-major matrix.
func Mat4FromMGL(m mgl32.Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c][r] = m[c*4+r]
		}
	}
	return out
}

func (m Mat4) MGL() mgl32.Mat4 {
	var out mgl32.Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c*4+r] = m[c][r]
		}
	}
	return out
}

// Mul returns m * other, so other is applied to a vector first.
func (m Mat4) Mul(other Mat4) Mat4 {
	return Mat4FromMGL(m.MGL().Mul4(other.MGL()))
}

func (m Mat4) MulVec(v Vec4) Vec4 {
	r := m.MGL().Mul4x1(v.MGL())
	return Vec4{X: r[0], Y: r[1], Z: r[2], W: r[3]}
}

// MulVec3 transforms a point (w = 1) and divides by w.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	return m.MulVec(v.ToVec4(1)).ToVec3DivW()
}

func (m Mat4) Transpose() Mat4 {
	return Mat4FromMGL(m.MGL().Transpose())
}

// Inverse returns the identity for a singular matrix.
func (m Mat4) Inverse() Mat4 {
	mm := m.MGL()
	if mm.Det() == 0 {
		return Mat4Identity()
	}
	return Mat4FromMGL(mm.Inv())
}

func Mat4Translation(t Vec3) Mat4 {
	return Mat4FromMGL(mgl32.Translate3D(t.X, t.Y, t.Z))
}

func Mat4Scale(s Vec3) Mat4 {
	return Mat4FromMGL(mgl32.Scale3D(s.X, s.Y, s.Z))
}

// Mat4TS composes translation after scale.
func Mat4TS(translation, scale Vec3) Mat4 {
	return Mat4Translation(translation).Mul(Mat4Scale(scale))
}

// Mat4Perspective builds a right-handed projection; fovY is in radians.
func Mat4Perspective(fovY, aspect, near, far float32) Mat4 {
	return Mat4FromMGL(mgl32.Perspective(fovY, aspect, near, far))
}

func Mat4LookAt(eye, target, up Vec3) Mat4 {
	return Mat4FromMGL(mgl32.LookAtV(eye.MGL(), target.MGL(), up.MGL()))
}

// NormalMatrix returns the inverse-transpose of the upper 3x3 of m, padded to 4x4.
func (m Mat4) NormalMatrix() Mat4 {
	n := m.MGL().Mat3().Inv().Transpose()
	return Mat4FromMGL(n.Mat4())
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return mgl32.DegToRad(deg)
}
