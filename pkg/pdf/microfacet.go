package pdf

import (
	"github.com/jmelas/go-pathsampler/pkg/core"
	"github.com/jmelas/go-pathsampler/pkg/material"
)

// Microfacet importance samples reflected directions proportionally to a
// microfacet half-vector distribution. The incoming direction is fixed in the
// local frame at construction and reused for every call.
type Microfacet struct {
	uvw          core.ONB
	wi           core.Vec3 // Local, unit, points away from the surface
	distribution material.MicrofacetDistribution
}

// NewMicrofacet creates a microfacet-reflection pdf around the normal w for
// the given world-space incoming ray direction
func NewMicrofacet(w, incoming core.Vec3, distribution material.MicrofacetDistribution) *Microfacet {
	uvw := core.NewONB(w)
	return &Microfacet{
		uvw:          uvw,
		wi:           uvw.ToLocal(incoming).Normalize().Negate(),
		distribution: distribution,
	}
}

// Value returns the half-vector distribution's density divided by the
// Jacobian of the reflection mapping, 4·dot(wo, wh). If dot(wo, wh) is zero
// the result is unbounded; callers guard or discard such samples.
func (m *Microfacet) Value(direction core.Vec3) float64 {
	wo := m.uvw.ToLocal(direction).Normalize()
	wh := m.wi.Add(wo).Normalize()
	return m.distribution.Pdf(wo, m.wi, wh) / (4 * wo.Dot(wh))
}

// Generate samples a half-vector from the distribution and reflects the
// incoming direction about it
func (m *Microfacet) Generate(sampler core.Sampler) core.Vec3 {
	wh := m.distribution.SampleWh(m.wi, sampler.Get2D())
	return m.uvw.ToWorld(core.Reflect(m.wi, wh))
}
