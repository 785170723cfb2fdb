package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSamplers_Range(t *testing.T) {
	samplers := map[string]Sampler{
		"random": NewRandomSampler(rand.New(rand.NewSource(42))),
		"halton": NewHaltonSampler(1),
	}

	for name, sampler := range samplers {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				v := sampler.Get1D()
				if v < 0 || v >= 1 {
					t.Fatalf("Get1D returned %v, want [0, 1)", v)
				}
				u := sampler.Get2D()
				if u.X < 0 || u.X >= 1 || u.Y < 0 || u.Y >= 1 {
					t.Fatalf("Get2D returned %v, want [0, 1)²", u)
				}
			}
		})
	}
}

func TestHaltonSampler_Deterministic(t *testing.T) {
	a := NewHaltonSampler(1)
	b := NewHaltonSampler(1)

	for i := 0; i < 100; i++ {
		ua, ub := a.Get2D(), b.Get2D()
		if ua != ub {
			t.Fatalf("sample %d differs: %v vs %v", i, ua, ub)
		}
	}
}

func TestHaltonSampler_KnownValues(t *testing.T) {
	// Successive draws walk the prime bases at index 1: the radical inverse
	// of 1 in base b is 1/b
	h := NewHaltonSampler(1)
	expected := []float64{1.0 / 2, 1.0 / 3, 1.0 / 5, 1.0 / 7, 1.0 / 11, 1.0 / 13}
	for i, want := range expected {
		got := h.Get1D()
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("Get1D sample %d: got %v, want %v", i, got, want)
		}
	}
	// The base cycle is exhausted: the next draw is index 2 in base 2
	if got := h.Get1D(); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("Get1D after wrap: got %v, want 0.25", got)
	}

	h = NewHaltonSampler(1)
	expected2D := []Vec2{
		{X: 1.0 / 2, Y: 1.0 / 3},
		{X: 1.0 / 5, Y: 1.0 / 7},
		{X: 1.0 / 11, Y: 1.0 / 13},
		{X: 0.25, Y: 2.0 / 3}, // Index 2, bases 2 and 3
	}
	for i, want := range expected2D {
		got := h.Get2D()
		if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 {
			t.Errorf("Get2D sample %d: got %v, want %v", i, got, want)
		}
	}
}

// A 1D branch draw followed by a 2D sample must be jointly uniform: every
// pdf that picks a strategy with Get1D and then samples with Get2D relies on
// the selector not biasing the sample that follows it.
func TestSamplers_SelectorAndSampleIndependent(t *testing.T) {
	samplers := map[string]Sampler{
		"random": NewRandomSampler(rand.New(rand.NewSource(42))),
		"halton": NewHaltonSampler(1),
	}

	const numSamples = 100000
	for name, sampler := range samplers {
		t.Run(name, func(t *testing.T) {
			lowLow := 0
			selectorLow := 0
			for i := 0; i < numSamples; i++ {
				a := sampler.Get1D() < 0.5
				u := sampler.Get2D()
				if a {
					selectorLow++
					if u.X < 0.5 {
						lowLow++
					}
				}
			}

			if f := float64(selectorLow) / numSamples; math.Abs(f-0.5) > 0.02 {
				t.Errorf("selector-low fraction = %v, want 0.5", f)
			}
			// Joint quadrant mass: P(selector < 0.5 and u.X < 0.5) = 0.25
			if f := float64(lowLow) / numSamples; math.Abs(f-0.25) > 0.02 {
				t.Errorf("joint low/low fraction = %v, want 0.25", f)
			}
		})
	}
}

// Both sampler kinds must be interchangeable: cosine-weighted hemisphere
// sampling driven by either one should produce the same mean cosine (2/3
// for a cos-weighted distribution).
func TestSamplers_Interchangeable(t *testing.T) {
	normal := NewVec3(0, 0, 1)
	samplers := map[string]Sampler{
		"random": NewRandomSampler(rand.New(rand.NewSource(7))),
		"halton": NewHaltonSampler(1),
	}

	const numSamples = 50000
	for name, sampler := range samplers {
		t.Run(name, func(t *testing.T) {
			sumCos := 0.0
			for i := 0; i < numSamples; i++ {
				d := SampleCosineHemisphere(normal, sampler.Get2D())
				cosTheta := d.Dot(normal)
				if cosTheta < 0 {
					t.Fatalf("sample %v below hemisphere", d)
				}
				sumCos += cosTheta
			}
			mean := sumCos / numSamples
			if math.Abs(mean-2.0/3.0) > 0.01 {
				t.Errorf("mean cosine = %v, want 2/3", mean)
			}
		})
	}
}
