package pdf

import (
	"math"

	"github.com/jmelas/go-pathsampler/pkg/core"
	"github.com/jmelas/go-pathsampler/pkg/material"
)

// Glossy importance samples a combined glossy+diffuse surface with a fixed
// 50/50 mixture of microfacet-specular and cosine-diffuse strategies.
type Glossy struct {
	uvw          core.ONB
	wi           core.Vec3 // Local, unit, points away from the surface
	distribution material.MicrofacetDistribution
}

// NewGlossy creates a glossy pdf around the normal w for the given
// world-space incoming ray direction
func NewGlossy(w, incoming core.Vec3, distribution material.MicrofacetDistribution) *Glossy {
	uvw := core.NewONB(w)
	return &Glossy{
		uvw:          uvw,
		wi:           uvw.ToLocal(incoming).Normalize().Negate(),
		distribution: distribution,
	}
}

// Value returns the mixture density 0.5·(cos(θi)/π + D-pdf/Jacobian).
// When the outgoing direction is on the opposite hemisphere side from the
// incoming one, the two lobes are incompatible and the density is reported
// as +Inf; the integrator treats that sample as zero contribution.
func (g *Glossy) Value(direction core.Vec3) float64 {
	wo := g.uvw.ToLocal(direction).Normalize()
	if wo.Z*g.wi.Z < 0 {
		return math.Inf(1)
	}
	wh := g.wi.Add(wo).Normalize()
	diffuse := math.Abs(g.wi.Z) / math.Pi
	specular := g.distribution.Pdf(wo, g.wi, wh) / (4 * wo.Dot(wh))
	return 0.5 * (diffuse + specular)
}

// Generate samples the microfacet lobe with probability 0.5, the cosine lobe
// otherwise
func (g *Glossy) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		wh := g.distribution.SampleWh(g.wi, sampler.Get2D())
		return g.uvw.ToWorld(core.Reflect(g.wi, wh))
	}
	return g.uvw.ToWorld(core.CosineSampleHemisphere(sampler.Get2D()))
}
