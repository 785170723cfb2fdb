// Package pdf implements the probability density objects used to importance
// sample scattering and light directions during path tracing. Every variant
// obeys one contract: Value reports the exact density of the distribution
// Generate draws from, so that dividing a sample's contribution by its
// density yields an unbiased Monte Carlo estimate.
package pdf

import (
	"github.com/jmelas/go-pathsampler/pkg/core"
)

// Pdf pairs a density evaluation with a matching direction sampler.
// Implementations are immutable after construction and safe to share across
// goroutines; the Sampler passed to Generate is the only mutable state and
// must be owned by the calling goroutine.
type Pdf interface {
	// Value returns the density of sampling the given world-space direction
	Value(direction core.Vec3) float64

	// Generate draws a world-space direction from the distribution
	Generate(sampler core.Sampler) core.Vec3
}
