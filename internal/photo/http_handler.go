package photo

import (
	"net/http"
	"strconv"

	"collectapi/internal/httpx"
)

type HTTPHandler struct{}

func NewHTTPHandler() *HTTPHandler {
	return &HTTPHandler{}
}

func boolParam(r *http.Request, name string, fallback bool) bool {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// Enhance handles POST /photos/enhance. The body is a PNG or JPEG
// image; the response is always PNG.
func (h *HTTPHandler) Enhance(w http.ResponseWriter, r *http.Request) {
	img, err := Decode(r.Body)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Body must be a PNG or JPEG image", nil)
		return
	}

	opts := Options{
		AutoEnhance:      boolParam(r, "autoEnhance", true),
		LightingCorrect:  boolParam(r, "lighting", false),
		Sharpen:          boolParam(r, "sharpen", false),
		RemoveBackground: boolParam(r, "removeBackground", false),
	}

	enhanced := Enhance(img, opts)

	w.Header().Set("Content-Type", "image/png")
	if err := EncodePNG(w, enhanced); err != nil {
		httpx.LogError(r, "photo encode failed", err)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to encode image", nil)
	}
}
