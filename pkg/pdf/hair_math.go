package pdf

import "math"

// Numerical helpers for the hair-fiber model: the longitudinal scattering
// function, the trimmed-logistic azimuthal lobe, and dielectric Fresnel.

func sqr(x float64) float64 { return x * x }

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// safeSqrt guards against small negative arguments from rounding
func safeSqrt(x float64) float64 {
	return math.Sqrt(math.Max(0, x))
}

// i0 is the modified Bessel function of the first kind, order zero,
// evaluated by power series
func i0(x float64) float64 {
	val := 0.0
	x2i := 1.0
	ifact := 1.0
	i4 := 1.0
	for i := 0; i < 10; i++ {
		if i > 1 {
			ifact *= float64(i)
		}
		val += x2i / (i4 * ifact * ifact)
		x2i *= x * x
		i4 *= 4
	}
	return val
}

// logI0 is log(i0(x)), switching to an asymptotic expansion for large x
// where i0 itself would overflow
func logI0(x float64) float64 {
	if x > 12 {
		return x + 0.5*(-math.Log(2*math.Pi)+math.Log(1/x)+1/(8*x))
	}
	return math.Log(i0(x))
}

// mp is the longitudinal scattering function: a normalized lobe around the
// reflected cone with variance v. The log-space form keeps small variances
// from underflowing.
func mp(cosThetaI, cosThetaO, sinThetaI, sinThetaO, v float64) float64 {
	a := cosThetaI * cosThetaO / v
	b := sinThetaI * sinThetaO / v
	if v <= 0.1 {
		return math.Exp(logI0(a) - b - 1/v + 0.6931 + math.Log(1/(2*v)))
	}
	return math.Exp(-b) * i0(a) / (math.Sinh(1/v) * 2 * v)
}

func logistic(x, s float64) float64 {
	x = math.Abs(x)
	e := math.Exp(-x / s)
	return e / (s * sqr(1+e))
}

func logisticCDF(x, s float64) float64 {
	return 1 / (1 + math.Exp(-x/s))
}

// trimmedLogistic is the logistic density renormalized to [a, b]
func trimmedLogistic(x, s, a, b float64) float64 {
	return logistic(x, s) / (logisticCDF(b, s) - logisticCDF(a, s))
}

// sampleTrimmedLogistic inverts the trimmed logistic CDF on [a, b]
func sampleTrimmedLogistic(u, s, a, b float64) float64 {
	k := logisticCDF(b, s) - logisticCDF(a, s)
	x := -s * math.Log(1/(u*k+logisticCDF(a, s))-1)
	return clamp(x, a, b)
}

// phiFunc is the net azimuthal deflection for scattering order p
func phiFunc(p int, gammaO, gammaT float64) float64 {
	return 2*float64(p)*gammaT - 2*gammaO + float64(p)*math.Pi
}

// np is the azimuthal density for order p: a trimmed logistic centered on
// the order's deflection angle, with phi wrapped into [-π, π]
func np(phi float64, p int, s, gammaO, gammaT float64) float64 {
	dphi := phi - phiFunc(p, gammaO, gammaT)
	for dphi > math.Pi {
		dphi -= 2 * math.Pi
	}
	for dphi < -math.Pi {
		dphi += 2 * math.Pi
	}
	return trimmedLogistic(dphi, s, -math.Pi, math.Pi)
}

// frDielectric is the Fresnel reflectance for unpolarized light at a
// dielectric boundary. Total internal reflection returns 1.
func frDielectric(cosThetaI, etaI, etaT float64) float64 {
	cosThetaI = clamp(cosThetaI, -1, 1)
	if cosThetaI < 0 {
		etaI, etaT = etaT, etaI
		cosThetaI = -cosThetaI
	}

	sinThetaI := safeSqrt(1 - cosThetaI*cosThetaI)
	sinThetaT := etaI / etaT * sinThetaI
	if sinThetaT >= 1 {
		return 1
	}
	cosThetaT := safeSqrt(1 - sinThetaT*sinThetaT)

	rParl := ((etaT * cosThetaI) - (etaI * cosThetaT)) /
		((etaT * cosThetaI) + (etaI * cosThetaT))
	rPerp := ((etaI * cosThetaI) - (etaT * cosThetaT)) /
		((etaI * cosThetaI) + (etaT * cosThetaT))
	return (rParl*rParl + rPerp*rPerp) / 2
}
