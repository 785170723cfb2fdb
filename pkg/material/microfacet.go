package material

import (
	"math"

	"github.com/jmelas/go-pathsampler/pkg/core"
)

// MicrofacetDistribution models the statistical orientation of microscopic
// facets on a rough surface. Directions are expressed in the local shading
// frame (+Z is the surface normal).
type MicrofacetDistribution interface {
	// D returns the differential area of microfacets oriented along wh
	D(wh core.Vec3) float64

	// Pdf returns the density of sampling the half-vector wh via SampleWh
	Pdf(wo, wi, wh core.Vec3) float64

	// SampleWh draws a half-vector from the distribution, in the same
	// hemisphere as wi, using two uniform numbers
	SampleWh(wi core.Vec3, u core.Vec2) core.Vec3
}

// TrowbridgeReitz is the GGX microfacet distribution. Alpha is the roughness
// parameter; smaller values concentrate facets around the surface normal.
type TrowbridgeReitz struct {
	Alpha float64
}

// NewTrowbridgeReitz creates a GGX distribution, clamping alpha away from
// zero to keep the density finite
func NewTrowbridgeReitz(alpha float64) *TrowbridgeReitz {
	return &TrowbridgeReitz{Alpha: math.Max(alpha, 1e-4)}
}

// D returns the GGX normal distribution function evaluated at wh
func (d *TrowbridgeReitz) D(wh core.Vec3) float64 {
	cos2Theta := wh.Z * wh.Z
	a2 := d.Alpha * d.Alpha
	denom := cos2Theta*(a2-1) + 1
	if denom <= 0 {
		return 0
	}
	return a2 / (math.Pi * denom * denom)
}

// Pdf returns the density of half-vectors produced by SampleWh, which samples
// the full distribution: D(wh) * |cos(θh)|
func (d *TrowbridgeReitz) Pdf(wo, wi, wh core.Vec3) float64 {
	return d.D(wh) * math.Abs(wh.Z)
}

// SampleWh draws a half-vector from the GGX distribution using the inverse
// CDF of the D(wh)*cos(θh) density
func (d *TrowbridgeReitz) SampleWh(wi core.Vec3, u core.Vec2) core.Vec3 {
	a2 := d.Alpha * d.Alpha

	cosTheta := math.Sqrt(math.Max(0, (1-u.X)/(1+(a2-1)*u.X)))
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	phi := 2 * math.Pi * u.Y

	wh := core.NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)

	// Keep the half-vector in the same hemisphere as the fixed direction
	if wi.Z*wh.Z < 0 {
		wh = wh.Negate()
	}
	return wh
}
