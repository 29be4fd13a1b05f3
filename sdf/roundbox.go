// Package sdf implements the signed distance and analytic gradient of a
// rounded box.
//
// The rounded box is the only primitive the resolver needs. Spheres are
// boxes with zero half-extents, capsules are boxes whose half-extents are
// zero everywhere but along Y, and every Minkowski sum used by the resolver
// is a box of some half-extents inflated by a radius.
package sdf

import (
	"github.com/akmonengine/minkowski/vmath"
	"github.com/go-gl/mathgl/mgl64"
)

// Gradient is the result of a distance query.
// Distance is negative inside the surface. Normal is the gradient of the
// field at the query point; it is unit length except where several axes tie
// for the deepest penetration, in which case every tied axis is set.
type Gradient struct {
	Distance float64
	Normal   mgl64.Vec3
}

// Penetrating reports whether the query point is on or inside the surface.
func (g Gradient) Penetrating() bool {
	return g.Distance <= 0
}

// RoundBox returns the distance and gradient at p, expressed in the box's
// local frame, for the box of half-extents b grown outward by radius r.
func RoundBox(p, b mgl64.Vec3, r float64) Gradient {
	w := vmath.Abs(p).Sub(b)
	g := vmath.MaxComponent(w)
	s := vmath.Sign(p)

	if g > 0 {
		q := vmath.MaxScalar(w, 0)
		l := q.Len()

		return Gradient{
			Distance: l - r,
			Normal:   vmath.MulElem(q.Mul(1/l), s),
		}
	}

	var n mgl64.Vec3
	for i := range 3 {
		if w[i] == g {
			n[i] = 1
		}
	}

	return Gradient{
		Distance: g - r,
		Normal:   vmath.MulElem(n, s),
	}
}

// Frame is a rotation plus translation that places a local shape in world
// space.
type Frame struct {
	Origin   mgl64.Vec3
	Rotation mgl64.Mat3
}

// ToLocal maps a world-space offset (already relative to the origin) into
// the frame.
func (f Frame) ToLocal(offset mgl64.Vec3) mgl64.Vec3 {
	return f.Rotation.Transpose().Mul3x1(offset)
}

// ToWorld maps a local direction back to world space.
func (f Frame) ToWorld(direction mgl64.Vec3) mgl64.Vec3 {
	return f.Rotation.Mul3x1(direction)
}

// Probe queries RoundBox with a world-space offset and returns the gradient
// with its normal rotated back into world space.
func (f Frame) Probe(offset, b mgl64.Vec3, r float64) Gradient {
	g := RoundBox(f.ToLocal(offset), b, r)
	g.Normal = f.ToWorld(g.Normal)

	return g
}

// ProbePoint is Probe for a world-space point.
func (f Frame) ProbePoint(point, b mgl64.Vec3, r float64) Gradient {
	return f.Probe(point.Sub(f.Origin), b, r)
}
