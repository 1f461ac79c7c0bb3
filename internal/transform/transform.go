package transform

import (
	"github.com/chewxy/math32"
)

// Mat4 is a 4x4 matrix in column-major order (OpenGL layout): element (row r,
// column c) is at index c*4+r.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Scale returns a scale matrix for the given per-axis factors.
func Scale(s [3]float32) Mat4 {
	m := Identity()
	m[0] = s[0]
	m[5] = s[1]
	m[10] = s[2]
	return m
}

// Translate returns a translation matrix.
func Translate(t [3]float32) Mat4 {
	m := Identity()
	m[12] = t[0]
	m[13] = t[1]
	m[14] = t[2]
	return m
}

// RotateX returns a rotation of rad radians about the X axis.
func RotateX(rad float32) Mat4 {
	sin, cos := math32.Sincos(rad)
	m := Identity()
	m[5] = cos
	m[6] = sin
	m[9] = -sin
	m[10] = cos
	return m
}

// RotateY returns a rotation of rad radians about the Y axis.
func RotateY(rad float32) Mat4 {
	sin, cos := math32.Sincos(rad)
	m := Identity()
	m[0] = cos
	m[2] = -sin
	m[8] = sin
	m[10] = cos
	return m
}

// RotateZ returns a rotation of rad radians about the Z axis.
func RotateZ(rad float32) Mat4 {
	sin, cos := math32.Sincos(rad)
	m := Identity()
	m[0] = cos
	m[1] = sin
	m[4] = -sin
	m[5] = cos
	return m
}

// Mul returns m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * n[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// MulPoint transforms p as a position (w = 1).
func (m Mat4) MulPoint(p [3]float32) [3]float32 {
	var out [3]float32
	for r := 0; r < 3; r++ {
		out[r] = m[r]*p[0] + m[4+r]*p[1] + m[8+r]*p[2] + m[12+r]
	}
	return out
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}

// Compose builds a model matrix from per-axis scale, XYZ Euler rotation in
// degrees, and translation. The composition is fixed: translation outermost,
// then Z, Y, and X rotation, scale innermost (T * Rz * Ry * Rx * S). Applied
// to a point this scales first, rotates about local X, then Y, then Z, then
// moves to the world position. Euler composition is order-sensitive, so this
// order must not change.
func Compose(scale, rotDeg, translation [3]float32) Mat4 {
	t := Translate(translation)
	rz := RotateZ(DegToRad(rotDeg[2]))
	ry := RotateY(DegToRad(rotDeg[1]))
	rx := RotateX(DegToRad(rotDeg[0]))
	s := Scale(scale)
	return t.Mul(rz).Mul(ry).Mul(rx).Mul(s)
}
