package pdf

import (
	"github.com/jmelas/go-pathsampler/pkg/core"
)

// Mixture combines two pdfs with fixed 50/50 weights, the multiple importance
// sampling pattern for pairing a BSDF strategy with a light strategy.
type Mixture struct {
	p0, p1 Pdf
}

// NewMixture creates a 50/50 mixture of two pdfs
func NewMixture(p0, p1 Pdf) *Mixture {
	return &Mixture{p0: p0, p1: p1}
}

// Value returns the arithmetic mean of the two densities
func (m *Mixture) Value(direction core.Vec3) float64 {
	return 0.5*m.p0.Value(direction) + 0.5*m.p1.Value(direction)
}

// Generate delegates to one of the two pdfs with equal probability.
// The selector draw is consumed; the delegate pulls fresh values from the
// sampler so the choice and the sample stay uncorrelated.
func (m *Mixture) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return m.p0.Generate(sampler)
	}
	return m.p1.Generate(sampler)
}
