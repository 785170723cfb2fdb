package material

import (
	"math"
	"testing"

	"github.com/jmelas/go-pathsampler/pkg/core"
)

func TestAlphaTexture_Opaque(t *testing.T) {
	tests := []struct {
		name   string
		color  core.Vec3
		opaque bool
	}{
		{name: "white is opaque", color: core.NewVec3(1, 1, 1), opaque: true},
		{name: "black is transparent", color: core.NewVec3(0, 0, 0), opaque: false},
		{name: "mid gray is opaque", color: core.NewVec3(0.5, 0.5, 0.5), opaque: true},
		{name: "dark gray is transparent", color: core.NewVec3(0.2, 0.2, 0.2), opaque: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask := NewAlphaTexture(NewSolidColor(tt.color))
			got := mask.Opaque(core.NewVec2(0.5, 0.5), core.Vec3{})
			if got != tt.opaque {
				t.Errorf("Opaque(%v) = %v, want %v", tt.color, got, tt.opaque)
			}
		})
	}
}

func TestImageTexture_NearestNeighbor(t *testing.T) {
	// 2x2 checkerboard: top row red/green, bottom row blue/white
	pixels := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1),
	}
	tex := NewImageTexture(2, 2, pixels)

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{name: "top-left", uv: core.NewVec2(0.25, 0.75), expected: core.NewVec3(1, 0, 0)},
		{name: "top-right", uv: core.NewVec2(0.75, 0.75), expected: core.NewVec3(0, 1, 0)},
		{name: "bottom-left", uv: core.NewVec2(0.25, 0.25), expected: core.NewVec3(0, 0, 1)},
		{name: "bottom-right", uv: core.NewVec2(0.75, 0.25), expected: core.NewVec3(1, 1, 1)},
		{name: "wraps past 1", uv: core.NewVec2(1.25, 1.75), expected: core.NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tex.Evaluate(tt.uv, core.Vec3{})
			if got != tt.expected {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.uv, got, tt.expected)
			}
		})
	}
}

func TestBumpTexture_FlatSourceLeavesNormal(t *testing.T) {
	bump := NewBumpTexture(NewSolidColor(core.NewVec3(0.5, 0.5, 0.5)), 1.0)
	normal := core.NewVec3(0, 0, 1)

	perturbed := bump.Perturb(normal, core.NewVec2(0.3, 0.7), core.Vec3{},
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))

	if perturbed.Subtract(normal).Length() > 1e-9 {
		t.Errorf("flat height field perturbed normal to %v", perturbed)
	}
	if math.Abs(perturbed.Length()-1.0) > 1e-9 {
		t.Errorf("perturbed normal %v not unit length", perturbed)
	}
}
