// Package photo enhances stamp photographs server-side: contrast and
// gamma adjustments, a 3x3 sharpening pass and naive background removal
// for near-white scanner backgrounds.
package photo

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	_ "image/jpeg"
)

// Options selects which enhancement steps run.
type Options struct {
	AutoEnhance      bool
	LightingCorrect  bool
	Sharpen          bool
	RemoveBackground bool
}

const (
	contrastFactor = 1.1
	gamma          = 1.2
	// Pixels with all channels above this count as background.
	backgroundThreshold = 200
)

// Decode reads a PNG or JPEG image.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if format != "png" && format != "jpeg" {
		return nil, fmt.Errorf("unsupported image format %q", format)
	}
	return img, nil
}

// EncodePNG writes the image as PNG. Output is always PNG so background
// removal keeps its transparency.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// Enhance runs the selected steps in a fixed order and returns a new
// image. The input is never modified.
func Enhance(src image.Image, opts Options) *image.NRGBA {
	bounds := src.Bounds()
	img := image.NewNRGBA(bounds)
	draw.Draw(img, bounds, src, bounds.Min, draw.Src)

	if opts.AutoEnhance {
		adjustContrast(img)
	}
	if opts.LightingCorrect {
		correctGamma(img)
	}
	if opts.Sharpen {
		img = sharpen(img)
	}
	if opts.RemoveBackground {
		removeBackground(img)
	}
	return img
}

func clamp(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func adjustContrast(img *image.NRGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			v := float64(img.Pix[i+c])
			img.Pix[i+c] = clamp((v-128)*contrastFactor + 128)
		}
	}
}

func correctGamma(img *image.NRGBA) {
	var lut [256]uint8
	for v := range lut {
		lut[v] = clamp(math.Pow(float64(v)/255, 1/gamma) * 255)
	}
	for i := 0; i < len(img.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			img.Pix[i+c] = lut[img.Pix[i+c]]
		}
	}
}

// 3x3 sharpening kernel. Border pixels are left untouched.
var sharpenKernel = [9]float64{0, -1, 0, -1, 5, -1, 0, -1, 0}

func sharpen(img *image.NRGBA) *image.NRGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := image.NewNRGBA(bounds)
	copy(out.Pix, img.Pix)

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			for c := 0; c < 3; c++ {
				var sum float64
				for ky := -1; ky <= 1; ky++ {
					for kx := -1; kx <= 1; kx++ {
						idx := ((y+ky)*w + (x + kx)) * 4
						sum += float64(img.Pix[idx+c]) * sharpenKernel[(ky+1)*3+(kx+1)]
					}
				}
				out.Pix[(y*w+x)*4+c] = clamp(sum)
			}
		}
	}
	return out
}

func removeBackground(img *image.NRGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		r, g, b := img.Pix[i], img.Pix[i+1], img.Pix[i+2]
		if r > backgroundThreshold && g > backgroundThreshold && b > backgroundThreshold {
			img.Pix[i+3] = 0
		}
	}
}
