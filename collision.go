package minkowski

import (
	"encoding/binary"
	"math"

	"github.com/akmonengine/minkowski/actor"
	"github.com/akmonengine/minkowski/collide"
	"github.com/akmonengine/minkowski/constraint"
	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl64"
)

// ShapeFrame is the render-facing view of one shape.
type ShapeFrame struct {
	Kind        string     `json:"kind"`
	Position    mgl64.Vec3 `json:"position"`
	Angles      mgl64.Vec3 `json:"angles"`
	HalfExtents mgl64.Vec3 `json:"half_extents"`
	Radius      float64    `json:"radius"`
	Bounds      actor.AABB `json:"bounds"`
}

func newShapeFrame(s *actor.ShapeState) ShapeFrame {
	return ShapeFrame{
		Kind:        s.Kind.String(),
		Position:    s.Transform.Position,
		Angles:      s.Transform.Angles,
		HalfExtents: s.HalfExtents,
		Radius:      s.Radius,
		Bounds:      s.AABB(),
	}
}

// MinkowskiFrame describes the rounded box drawn as the Minkowski sum.
type MinkowskiFrame struct {
	HalfExtents mgl64.Vec3 `json:"half_extents"`
	Radius      float64    `json:"radius"`
}

// Frame is everything a renderer needs to draw one step.
type Frame struct {
	Pair      collide.Pair                       `json:"pair"`
	Outer     ShapeFrame                         `json:"outer"`
	Center    ShapeFrame                         `json:"center"`
	Minkowski MinkowskiFrame                     `json:"minkowski"`
	Contacts  [constraint.MaxContacts]mgl64.Vec3 `json:"contacts"`
	Distance  float64                            `json:"distance"`
	Colliding bool                               `json:"colliding"`
	Time      float64                            `json:"time"`
	DeltaTime float64                            `json:"dt"`
}

// Frame snapshots the current state. The result shares nothing with the
// world.
func (w *World) Frame() Frame {
	return Frame{
		Pair:   w.Pair,
		Outer:  newShapeFrame(w.Outer),
		Center: newShapeFrame(w.Center),
		Minkowski: MinkowskiFrame{
			HalfExtents: w.Manifold.MinkowskiHalfExtents,
			Radius:      w.Manifold.MinkowskiRadius,
		},
		Contacts:  w.Manifold.Contacts,
		Distance:  w.Manifold.Distance,
		Colliding: w.Manifold.Colliding(),
		Time:      w.Time,
		DeltaTime: w.LastDT,
	}
}

// Digest hashes the geometric payload of the frame. The clock is left out,
// so a scene at rest keeps the same digest.
func (f Frame) Digest() uint64 {
	h := xxhash.New()
	var buf [8]byte

	writeFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = h.Write(buf[:])
	}
	writeVec := func(v mgl64.Vec3) {
		for _, c := range v {
			writeFloat(c)
		}
	}
	writeShape := func(s ShapeFrame) {
		_, _ = h.WriteString(s.Kind)
		writeVec(s.Position)
		writeVec(s.Angles)
		writeVec(s.HalfExtents)
		writeFloat(s.Radius)
	}

	_, _ = h.Write([]byte{byte(f.Pair)})
	writeShape(f.Outer)
	writeShape(f.Center)
	writeVec(f.Minkowski.HalfExtents)
	writeFloat(f.Minkowski.Radius)
	for _, c := range f.Contacts {
		writeVec(c)
	}
	writeFloat(f.Distance)

	return h.Sum64()
}
