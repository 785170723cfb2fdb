package material

import (
	"github.com/jmelas/go-pathsampler/pkg/core"
)

// AlphaTexture masks out parts of a surface. Opacity below the cutoff at a
// hit's UV coordinates turns the intersection into a miss, which is how
// leaf/fence style cutout geometry is modeled without extra triangles.
type AlphaTexture struct {
	Source ColorSource
	Cutoff float64
}

// NewAlphaTexture creates an alpha mask with the standard 0.5 cutoff
func NewAlphaTexture(source ColorSource) *AlphaTexture {
	return &AlphaTexture{Source: source, Cutoff: 0.5}
}

// Opaque reports whether the surface is solid at the given UV coordinates
func (a *AlphaTexture) Opaque(uv core.Vec2, point core.Vec3) bool {
	return a.Source.Evaluate(uv, point).Luminance() >= a.Cutoff
}

// BumpTexture perturbs shading normals from a height map. The gradient of the
// height field in UV space tilts the normal along the surface tangents.
type BumpTexture struct {
	Source ColorSource
	Scale  float64
}

// NewBumpTexture creates a bump map with the given strength
func NewBumpTexture(source ColorSource, scale float64) *BumpTexture {
	return &BumpTexture{Source: source, Scale: scale}
}

// Perturb tilts the shading normal by the height-field gradient at uv.
// du and dv are the world-space surface tangents for the UV parameterization.
func (b *BumpTexture) Perturb(normal core.Vec3, uv core.Vec2, point core.Vec3, du, dv core.Vec3) core.Vec3 {
	const delta = 1e-3

	height := func(u, v float64) float64 {
		return b.Source.Evaluate(core.NewVec2(u, v), point).Luminance()
	}

	h := height(uv.X, uv.Y)
	dhdu := (height(uv.X+delta, uv.Y) - h) / delta
	dhdv := (height(uv.X, uv.Y+delta) - h) / delta

	perturbed := normal.
		Add(du.Normalize().Multiply(-b.Scale * dhdu)).
		Add(dv.Normalize().Multiply(-b.Scale * dhdv))
	return perturbed.Normalize()
}
