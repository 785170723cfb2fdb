package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestCosineSampleHemisphere_LocalFrame(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 10000; i++ {
		d := CosineSampleHemisphere(NewVec2(random.Float64(), random.Float64()))

		if d.Z < 0 {
			t.Fatalf("sample %v below the local hemisphere", d)
		}
		if math.Abs(d.Length()-1.0) > 1e-9 {
			t.Fatalf("sample %v not unit length", d)
		}
	}
}

func TestUniformSampleSphere_Distribution(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	const numSamples = 50000
	sum := Vec3{}
	for i := 0; i < numSamples; i++ {
		d := UniformSampleSphere(NewVec2(random.Float64(), random.Float64()))
		if math.Abs(d.Length()-1.0) > 1e-9 {
			t.Fatalf("sample %v not unit length", d)
		}
		sum = sum.Add(d)
	}

	// Uniform directions average out to the zero vector
	mean := sum.Multiply(1.0 / numSamples)
	if mean.Length() > 0.02 {
		t.Errorf("mean direction %v too far from origin for uniform sampling", mean)
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		n        Vec3
		expected Vec3
	}{
		{
			name:     "45 degree reflection",
			v:        NewVec3(1, 0, 1).Normalize(),
			n:        NewVec3(0, 0, 1),
			expected: NewVec3(-1, 0, 1).Normalize(),
		},
		{
			name:     "normal incidence",
			v:        NewVec3(0, 0, 1),
			n:        NewVec3(0, 0, 1),
			expected: NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflect(tt.v, tt.n)
			if got.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Reflect(%v, %v) = %v, want %v", tt.v, tt.n, got, tt.expected)
			}
		})
	}
}
