package pdf

import (
	"math"

	"github.com/jmelas/go-pathsampler/pkg/core"
)

// Cosine is the cosine-weighted hemispherical distribution around a surface
// normal, matching ideal diffuse (Lambertian) scattering.
type Cosine struct {
	uvw core.ONB
}

// NewCosine creates a cosine-weighted pdf around the given axis
func NewCosine(w core.Vec3) *Cosine {
	return &Cosine{uvw: core.NewONB(w)}
}

// Value returns cos(θ)/π for directions above the hemisphere, 0 below
func (c *Cosine) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(c.uvw.W)
	if cosine > 0 {
		return cosine / math.Pi
	}
	return 0
}

// Generate draws a cosine-weighted direction in the hemisphere around the axis
func (c *Cosine) Generate(sampler core.Sampler) core.Vec3 {
	return c.uvw.ToWorld(core.CosineSampleHemisphere(sampler.Get2D()))
}
