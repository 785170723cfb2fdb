package core

import "math"

// CosineSampleHemisphere generates a cosine-weighted direction in the local
// frame (+Z up) from two uniform numbers using the disk-to-hemisphere mapping
func CosineSampleHemisphere(sample Vec2) Vec3 {
	a := 2.0 * math.Pi * sample.X
	z := sample.Y
	r := math.Sqrt(z)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	zCoord := math.Sqrt(math.Max(0, 1.0-z))

	return NewVec3(x, y, zCoord)
}

// SampleCosineHemisphere generates a cosine-weighted random direction in the
// hemisphere around a world-space normal
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	return NewONB(normal).ToWorld(CosineSampleHemisphere(sample))
}

// UniformSampleSphere generates a uniform random direction on the unit sphere
func UniformSampleSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	return NewVec3(x, y, z)
}

// Reflect mirrors a direction about a unit axis: 2*dot(v,n)*n - v.
// Both v and the result point away from the reflection point, matching the
// half-vector convention used by microfacet sampling.
func Reflect(v, n Vec3) Vec3 {
	return n.Multiply(2 * v.Dot(n)).Subtract(v)
}
