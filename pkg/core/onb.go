package core

import "math"

// ONB is an orthonormal basis built around a single axis, used to move
// directions between a local shading frame and world space.
// W is the frame axis (typically the shading normal); U and V span the
// tangent plane.
type ONB struct {
	U, V, W Vec3
}

// NewONB builds an orthonormal basis whose W axis points along w
func NewONB(w Vec3) ONB {
	unitW := w.Normalize()

	// Pick a helper axis that is not parallel to w
	var a Vec3
	if math.Abs(unitW.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}

	v := unitW.Cross(a).Normalize()
	u := unitW.Cross(v)

	return ONB{U: u, V: v, W: unitW}
}

// ToWorld transforms a local-space direction into world space
func (o ONB) ToWorld(local Vec3) Vec3 {
	return o.U.Multiply(local.X).Add(o.V.Multiply(local.Y)).Add(o.W.Multiply(local.Z))
}

// ToLocal transforms a world-space direction into the local frame.
// ToLocal and ToWorld are exact inverses because U, V, W are orthonormal.
func (o ONB) ToLocal(world Vec3) Vec3 {
	return NewVec3(world.Dot(o.U), world.Dot(o.V), world.Dot(o.W))
}
