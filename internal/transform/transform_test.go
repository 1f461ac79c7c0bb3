package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1.0e-5

func assertVec3InDelta(t *testing.T, want, got [3]float32) {
	t.Helper()
	assert.InDelta(t, want[0], got[0], tol)
	assert.InDelta(t, want[1], got[1], tol)
	assert.InDelta(t, want[2], got[2], tol)
}

func TestIdentity(t *testing.T) {
	p := [3]float32{1.5, -2, 3}
	assert.Equal(t, p, Identity().MulPoint(p))
}

func TestElementals(t *testing.T) {
	p := [3]float32{1, 0, 0}

	assertVec3InDelta(t, [3]float32{2, 0, 0}, Scale([3]float32{2, 5, 7}).MulPoint(p))
	assertVec3InDelta(t, [3]float32{2, 3, 4}, Translate([3]float32{1, 3, 4}).MulPoint(p))

	// Right-handed rotations: +90 about Z sends +X to +Y, +90 about Y sends
	// +X to -Z, +90 about X sends +Y to +Z.
	assertVec3InDelta(t, [3]float32{0, 1, 0}, RotateZ(DegToRad(90)).MulPoint(p))
	assertVec3InDelta(t, [3]float32{0, 0, -1}, RotateY(DegToRad(90)).MulPoint(p))
	assertVec3InDelta(t, [3]float32{0, 0, 1}, RotateX(DegToRad(90)).MulPoint([3]float32{0, 1, 0}))
}

// Compose must equal the explicit product T * Rz * Ry * Rx * S.
func TestComposeMatchesExplicitProduct(t *testing.T) {
	scale := [3]float32{2, 1, 3}
	rot := [3]float32{90, 30, -45}
	trans := [3]float32{1, 2, 3}

	want := Translate(trans).
		Mul(RotateZ(DegToRad(rot[2]))).
		Mul(RotateY(DegToRad(rot[1]))).
		Mul(RotateX(DegToRad(rot[0]))).
		Mul(Scale(scale))
	got := Compose(scale, rot, trans)
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol)
	}
}

// Known-point check: scale (2,1,3), rotate 90 degrees about X, translate
// (1,2,3). The point (1,1,1) scales to (2,1,3), rotates to (2,-3,1), and
// lands at (3,-1,4).
func TestComposeKnownPoint(t *testing.T) {
	m := Compose([3]float32{2, 1, 3}, [3]float32{90, 0, 0}, [3]float32{1, 2, 3})
	assertVec3InDelta(t, [3]float32{3, -1, 4}, m.MulPoint([3]float32{1, 1, 1}))
}

// Euler order is X first, then Y, then Z. With rotation (90,90,0) the point
// +Z goes to -Y under Rx and stays there under Ry; with (0,90,90) it goes to
// +X under Ry and then to +Y under Rz. Swapping angles between axes changes
// the result, so the order is observable.
func TestComposeEulerOrder(t *testing.T) {
	p := [3]float32{0, 0, 1}

	m := Compose([3]float32{1, 1, 1}, [3]float32{90, 90, 0}, [3]float32{0, 0, 0})
	assertVec3InDelta(t, [3]float32{0, -1, 0}, m.MulPoint(p))

	n := Compose([3]float32{1, 1, 1}, [3]float32{0, 90, 90}, [3]float32{0, 0, 0})
	assertVec3InDelta(t, [3]float32{0, 1, 0}, n.MulPoint(p))
}

func TestMulAssociatesWithPoints(t *testing.T) {
	a := RotateZ(DegToRad(37))
	b := Translate([3]float32{4, -2, 9})
	p := [3]float32{0.5, 1.5, -3}
	assertVec3InDelta(t, a.MulPoint(b.MulPoint(p)), a.Mul(b).MulPoint(p))
}
