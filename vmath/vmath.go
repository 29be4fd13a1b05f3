// Package vmath holds the small set of vector and matrix helpers the resolver
// needs on top of mgl64: Euler rotations built from degrees and the
// component-wise operations used by signed distance fields.
//
// Every function is pure. Vectors and matrices are mgl64 values, so nothing
// here owns state.
package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// EulerXYZ returns the rotation for the given angles in radians.
// The rotation is applied about the fixed X axis first, then Y, then Z,
// which gives R = Rz * Ry * Rx.
func EulerXYZ(radians mgl64.Vec3) mgl64.Mat3 {
	rx := mgl64.Rotate3DX(radians.X())
	ry := mgl64.Rotate3DY(radians.Y())
	rz := mgl64.Rotate3DZ(radians.Z())

	return rz.Mul3(ry).Mul3(rx)
}

// Euler returns the rotation for angles given in degrees.
func Euler(degrees mgl64.Vec3) mgl64.Mat3 {
	return EulerXYZ(Radians(degrees))
}

// Radians converts every component from degrees to radians.
func Radians(degrees mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		mgl64.DegToRad(degrees.X()),
		mgl64.DegToRad(degrees.Y()),
		mgl64.DegToRad(degrees.Z()),
	}
}

// Abs returns the component-wise absolute value.
func Abs(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Abs(v[0]), math.Abs(v[1]), math.Abs(v[2])}
}

// Sign returns the component-wise sign of v. Zero maps to +1 so that a
// gradient mirrored by Sign never collapses to the zero vector.
func Sign(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{signNonZero(v[0]), signNonZero(v[1]), signNonZero(v[2])}
}

func signNonZero(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// MaxScalar clamps every component from below.
func MaxScalar(v mgl64.Vec3, floor float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Max(v[0], floor), math.Max(v[1], floor), math.Max(v[2], floor)}
}

// MaxComponent returns the largest of the three components.
func MaxComponent(v mgl64.Vec3) float64 {
	return math.Max(v[0], math.Max(v[1], v[2]))
}

// MulElem is the component-wise (Hadamard) product.
func MulElem(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Midpoint returns (a + b) / 2.
func Midpoint(a, b mgl64.Vec3) mgl64.Vec3 {
	return a.Add(b).Mul(0.5)
}

// IsFinite reports whether no component is NaN or infinite.
func IsFinite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
