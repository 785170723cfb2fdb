package pdf

import (
	"math"

	"github.com/jmelas/go-pathsampler/pkg/core"
)

// pMax is the number of individually tracked fiber scattering orders:
// index 0 is direct reflection (R), 1 is transmission (TT), 2 is one internal
// reflection (TRT), and index pMax aggregates all higher orders.
const pMax = 3

const sqrtPiOver8 = 0.626657069

// Hair is the directional density of light scattered by a cylindrical fiber,
// summed over pMax+1 scattering orders. Each order combines a longitudinal
// lobe (variance v[p], tilted by the cuticle-scale angle terms) with an
// azimuthal lobe (trimmed logistic of width s), weighted by the order's
// relative energy.
type Hair struct {
	uvw    core.ONB
	wo     core.Vec3 // Local outgoing direction, fixed at construction
	eta    float64   // Refractive index of the fiber interior
	h      float64   // Offset across the fiber width, in [-1, 1]
	gammaO float64   // Azimuthal angle of incidence, asin(h)
	s      float64   // Azimuthal logistic scale
	sigmaA core.Vec3 // Absorption coefficient per color channel

	v          [pMax + 1]float64 // Longitudinal variance per lobe
	sin2kAlpha [3]float64        // Cuticle cone terms for 2^k * alpha
	cos2kAlpha [3]float64
}

// NewHair creates a hair-fiber pdf. uvw is the fiber's local frame (W along
// the surface normal, U along the fiber axis), outgoing the world-space
// direction toward the viewer. betaM and betaN are the longitudinal and
// azimuthal roughnesses in [0, 1]; alpha is the cuticle scale tilt in
// degrees; sigmaA the absorption per channel.
func NewHair(uvw core.ONB, outgoing core.Vec3, eta, h, betaM, betaN, alpha float64, sigmaA core.Vec3) *Hair {
	hp := &Hair{
		uvw:    uvw,
		wo:     uvw.ToLocal(outgoing).Normalize(),
		eta:    eta,
		h:      clamp(h, -1, 1),
		sigmaA: sigmaA,
	}
	hp.gammaO = math.Asin(hp.h)

	// Map roughness to longitudinal variance per lobe
	hp.v[0] = sqr(0.726*betaM + 0.812*betaM*betaM + 3.7*math.Pow(betaM, 20))
	hp.v[1] = 0.25 * hp.v[0]
	hp.v[2] = 4 * hp.v[0]
	for p := 3; p <= pMax; p++ {
		hp.v[p] = hp.v[2]
	}

	// Azimuthal logistic scale from azimuthal roughness
	hp.s = sqrtPiOver8 * (0.265*betaN + 1.194*betaN*betaN + 5.372*math.Pow(betaN, 22))

	// Cache sin/cos of 2^k * alpha for the per-order cone rotations
	alphaRad := alpha * math.Pi / 180
	hp.sin2kAlpha[0] = math.Sin(alphaRad)
	hp.cos2kAlpha[0] = safeSqrt(1 - sqr(hp.sin2kAlpha[0]))
	for i := 1; i < 3; i++ {
		hp.sin2kAlpha[i] = 2 * hp.cos2kAlpha[i-1] * hp.sin2kAlpha[i-1]
		hp.cos2kAlpha[i] = sqr(hp.cos2kAlpha[i-1]) - sqr(hp.sin2kAlpha[i-1])
	}

	return hp
}

// Value sums the per-order longitudinal and azimuthal densities, each order
// weighted by its relative energy
func (hp *Hair) Value(direction core.Vec3) float64 {
	wi := hp.uvw.ToLocal(direction).Normalize()

	sinThetaO := hp.wo.X
	cosThetaO := safeSqrt(1 - sqr(sinThetaO))
	phiO := math.Atan2(hp.wo.Z, hp.wo.Y)

	sinThetaI := wi.X
	cosThetaI := safeSqrt(1 - sqr(sinThetaI))
	phiI := math.Atan2(wi.Z, wi.Y)

	// Azimuthal angle of the refracted ray inside the fiber
	etap := math.Sqrt(hp.eta*hp.eta-sqr(sinThetaO)) / cosThetaO
	sinGammaT := hp.h / etap
	gammaT := math.Asin(clamp(sinGammaT, -1, 1))

	apPdf := hp.computeApPdf(cosThetaO)
	phi := phiI - phiO

	pdf := 0.0
	for p := 0; p < pMax; p++ {
		sinThetaOp, cosThetaOp := hp.tiltedCone(p, sinThetaO, cosThetaO)
		pdf += mp(cosThetaI, cosThetaOp, sinThetaI, sinThetaOp, hp.v[p]) *
			apPdf[p] * np(phi, p, hp.s, hp.gammaO, gammaT)
	}
	// Aggregate lobe: uniform in azimuth
	pdf += mp(cosThetaI, cosThetaO, sinThetaI, sinThetaO, hp.v[pMax]) *
		apPdf[pMax] * (1 / (2 * math.Pi))

	return pdf
}

// Generate picks a scattering order from its energy distribution, samples
// that order's longitudinal and azimuthal lobes, and assembles the direction
func (hp *Hair) Generate(sampler core.Sampler) core.Vec3 {
	u0 := sampler.Get2D()
	u1 := sampler.Get2D()

	sinThetaO := hp.wo.X
	cosThetaO := safeSqrt(1 - sqr(sinThetaO))
	phiO := math.Atan2(hp.wo.Z, hp.wo.Y)

	// Pick a scattering order proportional to its relative energy
	apPdf := hp.computeApPdf(cosThetaO)
	p := 0
	uLobe := u0.X
	for ; p < pMax; p++ {
		if uLobe < apPdf[p] {
			break
		}
		uLobe -= apPdf[p]
	}

	sinThetaOp, cosThetaOp := hp.tiltedCone(p, sinThetaO, cosThetaO)

	// Sample the longitudinal lobe for this order
	uEps := math.Max(u1.X, 1e-5)
	cosTheta := 1 + hp.v[p]*math.Log(uEps+(1-uEps)*math.Exp(-2/hp.v[p]))
	sinTheta := safeSqrt(1 - sqr(cosTheta))
	cosPhi := math.Cos(2 * math.Pi * u1.Y)
	sinThetaI := -cosTheta*sinThetaOp + sinTheta*cosPhi*cosThetaOp
	cosThetaI := safeSqrt(1 - sqr(sinThetaI))

	// Sample the azimuthal lobe
	etap := math.Sqrt(hp.eta*hp.eta-sqr(sinThetaO)) / cosThetaO
	sinGammaT := hp.h / etap
	gammaT := math.Asin(clamp(sinGammaT, -1, 1))

	var dphi float64
	if p < pMax {
		dphi = phiFunc(p, hp.gammaO, gammaT) + sampleTrimmedLogistic(u0.Y, hp.s, -math.Pi, math.Pi)
	} else {
		dphi = 2 * math.Pi * u0.Y
	}

	phiI := phiO + dphi
	wi := core.NewVec3(sinThetaI, cosThetaI*math.Cos(phiI), cosThetaI*math.Sin(phiI))
	return hp.uvw.ToWorld(wi)
}

// tiltedCone rotates the outgoing angle by the cuticle scale tilt for the
// given scattering order. Orders past TRT are left untilted.
func (hp *Hair) tiltedCone(p int, sinThetaO, cosThetaO float64) (float64, float64) {
	var sinThetaOp, cosThetaOp float64
	switch p {
	case 0:
		sinThetaOp = sinThetaO*hp.cos2kAlpha[1] - cosThetaO*hp.sin2kAlpha[1]
		cosThetaOp = cosThetaO*hp.cos2kAlpha[1] + sinThetaO*hp.sin2kAlpha[1]
	case 1:
		sinThetaOp = sinThetaO*hp.cos2kAlpha[0] + cosThetaO*hp.sin2kAlpha[0]
		cosThetaOp = cosThetaO*hp.cos2kAlpha[0] - sinThetaO*hp.sin2kAlpha[0]
	case 2:
		sinThetaOp = sinThetaO*hp.cos2kAlpha[2] + cosThetaO*hp.sin2kAlpha[2]
		cosThetaOp = cosThetaO*hp.cos2kAlpha[2] - sinThetaO*hp.sin2kAlpha[2]
	default:
		sinThetaOp = sinThetaO
		cosThetaOp = cosThetaO
	}
	// The tilt can push cosThetaOp slightly negative near grazing angles
	return sinThetaOp, math.Abs(cosThetaOp)
}

// computeApPdf returns the relative energy of each scattering order for the
// given outgoing polar cosine. The weights sum to 1.
func (hp *Hair) computeApPdf(cosThetaO float64) [pMax + 1]float64 {
	sinThetaO := safeSqrt(1 - cosThetaO*cosThetaO)

	// Polar angle of the refracted ray
	sinThetaT := sinThetaO / hp.eta
	cosThetaT := safeSqrt(1 - sqr(sinThetaT))

	// Azimuthal angle of the refracted ray
	etap := math.Sqrt(hp.eta*hp.eta-sqr(sinThetaO)) / cosThetaO
	sinGammaT := hp.h / etap
	cosGammaT := safeSqrt(1 - sqr(sinGammaT))

	// Single-pass transmittance through the fiber interior
	transmittance := hp.sigmaA.Multiply(2 * cosGammaT / cosThetaT).NegExp()

	ap := hp.ap(cosThetaO, transmittance)

	sumY := 0.0
	for _, a := range ap {
		sumY += a.Luminance()
	}

	var apPdf [pMax + 1]float64
	for i := range ap {
		apPdf[i] = ap[i].Luminance() / sumY
	}
	return apPdf
}

// ap returns the attenuation of each scattering order: Fresnel reflection for
// R, then successive products of transmittance and internal Fresnel terms,
// with the last entry summing the remaining geometric series.
func (hp *Hair) ap(cosThetaO float64, transmittance core.Vec3) [pMax + 1]core.Vec3 {
	var ap [pMax + 1]core.Vec3

	cosGammaO := safeSqrt(1 - hp.h*hp.h)
	cosTheta := cosThetaO * cosGammaO
	f := frDielectric(cosTheta, 1, hp.eta)

	ap[0] = core.NewVec3(f, f, f)
	ap[1] = transmittance.Multiply(sqr(1 - f))
	for p := 2; p < pMax; p++ {
		ap[p] = ap[p-1].MultiplyVec(transmittance).Multiply(f)
	}

	// Remaining orders form a geometric series with ratio transmittance*f
	ap[pMax] = core.Vec3{
		X: ap[pMax-1].X * transmittance.X * f / (1 - transmittance.X*f),
		Y: ap[pMax-1].Y * transmittance.Y * f / (1 - transmittance.Y*f),
		Z: ap[pMax-1].Z * transmittance.Z * f / (1 - transmittance.Z*f),
	}
	return ap
}
