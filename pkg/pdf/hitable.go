package pdf

import (
	"github.com/jmelas/go-pathsampler/pkg/core"
	"github.com/jmelas/go-pathsampler/pkg/geometry"
)

// Hitable samples directions toward scene geometry (typically light-emitting
// primitives) as seen from a fixed shading point. It delegates to the
// geometry's own area-to-solid-angle density and direction sampler, giving
// direct light sampling the same contract as BSDF sampling.
type Hitable struct {
	light  geometry.Hittable
	origin core.Vec3
}

// NewHitable creates a pdf sampling the given geometry from origin
func NewHitable(light geometry.Hittable, origin core.Vec3) *Hitable {
	return &Hitable{light: light, origin: origin}
}

// Value returns the geometry's solid-angle density toward direction
func (h *Hitable) Value(direction core.Vec3) float64 {
	return h.light.PdfValue(h.origin, direction)
}

// Generate returns a direction toward a point sampled on the geometry
func (h *Hitable) Generate(sampler core.Sampler) core.Vec3 {
	return h.light.Random(h.origin, sampler)
}
