package photo

import (
	"bytes"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func TestEnhance_ContrastPushesAwayFromMidGray(t *testing.T) {
	dark := solid(4, 4, color.NRGBA{R: 60, G: 60, B: 60, A: 255})
	out := Enhance(dark, Options{AutoEnhance: true})
	// (60-128)*1.1+128 = 53.2
	assert.Equal(t, uint8(53), out.Pix[0])

	bright := solid(4, 4, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	out = Enhance(bright, Options{AutoEnhance: true})
	// (200-128)*1.1+128 = 207.2
	assert.Equal(t, uint8(207), out.Pix[0])
}

func TestEnhance_GammaBrightensShadows(t *testing.T) {
	img := solid(4, 4, color.NRGBA{R: 60, G: 60, B: 60, A: 255})
	out := Enhance(img, Options{LightingCorrect: true})
	assert.Greater(t, out.Pix[0], uint8(60))
}

func TestEnhance_SharpenKeepsFlatAreasFlat(t *testing.T) {
	img := solid(8, 8, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	out := Enhance(img, Options{Sharpen: true})
	// Kernel sums to 1, so uniform regions are unchanged.
	assert.Equal(t, uint8(100), out.Pix[(3*8+3)*4])
}

func TestEnhance_SharpenBoostsEdges(t *testing.T) {
	img := solid(8, 8, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	// One bright pixel in the middle.
	idx := (4*8 + 4) * 4
	img.Pix[idx] = 200

	out := Enhance(img, Options{Sharpen: true})
	assert.Greater(t, out.Pix[idx], uint8(200))
}

func TestEnhance_RemoveBackgroundClearsNearWhite(t *testing.T) {
	img := solid(4, 4, color.NRGBA{R: 245, G: 245, B: 245, A: 255})
	// One foreground pixel.
	img.Pix[0] = 50
	img.Pix[1] = 50
	img.Pix[2] = 50

	out := Enhance(img, Options{RemoveBackground: true})
	assert.Equal(t, uint8(255), out.Pix[3], "foreground keeps alpha")
	assert.Equal(t, uint8(0), out.Pix[7], "background goes transparent")
}

func TestEnhance_DoesNotMutateInput(t *testing.T) {
	img := solid(4, 4, color.NRGBA{R: 60, G: 60, B: 60, A: 255})
	Enhance(img, Options{AutoEnhance: true, Sharpen: true, RemoveBackground: true})
	assert.Equal(t, uint8(60), img.Pix[0])
}

func TestHTTPHandler_Enhance(t *testing.T) {
	t.Run("png round trip", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodePNG(&buf, solid(4, 4, color.NRGBA{R: 100, G: 100, B: 100, A: 255})))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/photos/enhance?sharpen=true", &buf)
		NewHTTPHandler().Enhance(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

		img, err := Decode(w.Body)
		require.NoError(t, err)
		assert.Equal(t, 4, img.Bounds().Dx())
	})

	t.Run("rejects non-image body", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/photos/enhance", strings.NewReader("not an image"))
		NewHTTPHandler().Enhance(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
