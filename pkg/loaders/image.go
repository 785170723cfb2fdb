package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "github.com/ftrvxmtrx/tga"    // TGA decoder
	_ "golang.org/x/image/tiff"     // TIFF decoder
	_ "golang.org/x/image/webp"     // WebP decoder

	"github.com/jmelas/go-pathsampler/pkg/core"
	"github.com/jmelas/go-pathsampler/pkg/material"
)

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage loads a PNG, JPEG, TGA, WebP or TIFF image and converts it to a
// Vec3 color array (format auto-detected from the file header)
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	// Convert to Vec3 array
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// Texture converts the loaded image into a material texture
func (d *ImageData) Texture() *material.ImageTexture {
	return material.NewImageTexture(d.Width, d.Height, d.Pixels)
}

// LoadAlphaTexture loads an image file as an alpha cutout mask
func LoadAlphaTexture(filename string) (*material.AlphaTexture, error) {
	data, err := LoadImage(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load alpha texture: %w", err)
	}
	return material.NewAlphaTexture(data.Texture()), nil
}

// LoadBumpTexture loads an image file as a bump map with the given strength
func LoadBumpTexture(filename string, scale float64) (*material.BumpTexture, error) {
	data, err := LoadImage(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load bump texture: %w", err)
	}
	return material.NewBumpTexture(data.Texture(), scale), nil
}
