package geometry

import (
	"github.com/jmelas/go-pathsampler/pkg/core"
	"github.com/jmelas/go-pathsampler/pkg/material"
)

// Hittable is the interface for geometry that can be intersected by rays and
// sampled as a light source. PdfValue and Random form a consistent pair:
// PdfValue reports the exact solid-angle density of the directions Random
// draws toward the object from the given origin.
type Hittable interface {
	// Hit tests a ray against the object within [tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool)

	// BoundingBox returns an axis-aligned box enclosing the object
	BoundingBox() AABB

	// PdfValue returns the solid-angle density of sampling the given
	// direction from origin, or 0 if the direction misses the object
	PdfValue(origin, direction core.Vec3) float64

	// Random returns a unit direction from origin toward a point sampled
	// uniformly over the object's surface area
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}
