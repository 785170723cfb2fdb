package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmelas/go-pathsampler/pkg/core"
)

// writeTestPNG writes a 2x1 image: red on the left, blue on the right
func writeTestPNG(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{B: 255, A: 255})

	path := filepath.Join(t.TempDir(), "test.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestLoadImage(t *testing.T) {
	path := writeTestPNG(t)

	data, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	if data.Width != 2 || data.Height != 1 {
		t.Fatalf("loaded %dx%d, want 2x1", data.Width, data.Height)
	}

	const tolerance = 0.01
	checkPixel := func(i int, want core.Vec3) {
		got := data.Pixels[i]
		if got.Subtract(want).Length() > tolerance {
			t.Errorf("pixel %d = %v, want %v", i, got, want)
		}
	}
	checkPixel(0, core.NewVec3(1, 0, 0))
	checkPixel(1, core.NewVec3(0, 0, 1))
}

func TestLoadImage_MissingFile(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadImage_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write junk file: %v", err)
	}
	if _, err := LoadImage(path); err == nil {
		t.Error("expected decode error for junk data")
	}
}

func TestLoadAlphaTexture(t *testing.T) {
	path := writeTestPNG(t)

	mask, err := LoadAlphaTexture(path)
	if err != nil {
		t.Fatalf("LoadAlphaTexture failed: %v", err)
	}

	// Red texel: luminance 0.299 < 0.5 cutoff; checking the lookup works
	if mask.Opaque(core.NewVec2(0.25, 0.5), core.Vec3{}) {
		t.Error("red texel (luminance 0.299) reported opaque")
	}
}
