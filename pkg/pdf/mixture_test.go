package pdf

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jmelas/go-pathsampler/pkg/core"
)

func TestMixture_ValueIsExactMean(t *testing.T) {
	p0 := NewCosine(core.NewVec3(0, 0, 1))
	p1 := NewCosine(core.NewVec3(1, 0, 0))
	mix := NewMixture(p0, p1)

	directions := []core.Vec3{
		core.NewVec3(0, 0, 1),
		core.NewVec3(1, 0, 0),
		core.NewVec3(1, 1, 1),
		core.NewVec3(-0.3, 0.7, 0.2),
		core.NewVec3(0, 0, -1),
	}

	for _, d := range directions {
		expected := 0.5*p0.Value(d) + 0.5*p1.Value(d)
		got := mix.Value(d)
		if math.Abs(got-expected) > 1e-15 {
			t.Errorf("Value(%v) = %v, want exact mean %v", d, got, expected)
		}
	}
}

// A mixture of two identical cosine pdfs must be indistinguishable from a
// single cosine pdf.
func TestMixture_IdenticalComponents(t *testing.T) {
	axis := core.NewVec3(0.2, -0.4, 0.9)
	single := NewCosine(axis)
	mix := NewMixture(NewCosine(axis), NewCosine(axis))

	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		d := core.UniformSampleSphere(core.NewVec2(random.Float64(), random.Float64()))
		if math.Abs(mix.Value(d)-single.Value(d)) > 1e-15 {
			t.Fatalf("Value(%v): mixture %v, single %v", d, mix.Value(d), single.Value(d))
		}
	}
}

// Generate must follow a 50/50 blend of the two underlying distributions
func TestMixture_GenerateBlend(t *testing.T) {
	up := NewCosine(core.NewVec3(0, 0, 1))
	down := NewCosine(core.NewVec3(0, 0, -1))
	mix := NewMixture(up, down)

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	const numSamples = 20000
	upCount := 0
	for i := 0; i < numSamples; i++ {
		if mix.Generate(sampler).Z > 0 {
			upCount++
		}
	}

	fraction := float64(upCount) / numSamples
	if math.Abs(fraction-0.5) > 0.015 {
		t.Errorf("upper-hemisphere fraction = %v, want 0.5", fraction)
	}
}

// The 50/50 blend must hold for every sampler kind: the component draw and
// the delegate's sample come from the same stream, and a correlation between
// them would skew the blend.
func TestMixture_SamplerKinds(t *testing.T) {
	up := NewCosine(core.NewVec3(0, 0, 1))
	down := NewCosine(core.NewVec3(0, 0, -1))
	mix := NewMixture(up, down)

	samplers := map[string]core.Sampler{
		"random": core.NewRandomSampler(rand.New(rand.NewSource(42))),
		"halton": core.NewHaltonSampler(1),
	}

	const numSamples = 20000
	for name, sampler := range samplers {
		t.Run(name, func(t *testing.T) {
			upCount := 0
			for i := 0; i < numSamples; i++ {
				if mix.Generate(sampler).Z > 0 {
					upCount++
				}
			}
			fraction := float64(upCount) / numSamples
			if math.Abs(fraction-0.5) > 0.02 {
				t.Errorf("upper-hemisphere fraction = %v, want 0.5", fraction)
			}
		})
	}
}

// The mixture of a sampling strategy with itself still satisfies the
// canonical unbiasedness law.
func TestMixture_Unbiasedness(t *testing.T) {
	axisW := core.NewVec3(0, 0, 1)
	mix := NewMixture(NewCosine(axisW), NewCosine(axisW))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	const numSamples = 100000
	sum := 0.0
	for i := 0; i < numSamples; i++ {
		d := mix.Generate(sampler)
		cosTheta := d.Normalize().Dot(axisW)
		sum += cosTheta * cosTheta / mix.Value(d)
	}
	estimate := sum / numSamples

	expected := 2 * math.Pi / 3
	if math.Abs(estimate-expected) > 0.02 {
		t.Errorf("estimate = %v, want %v", estimate, expected)
	}
}
