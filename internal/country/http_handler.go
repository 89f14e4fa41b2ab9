package country

import (
	"net"
	"net/http"
	"strings"

	"collectapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Detect handles GET /countries/detect
func (h *HTTPHandler) Detect(w http.ResponseWriter, r *http.Request) {
	result := h.service.Detect(r.Context(), clientIP(r), r.Header.Get("Accept-Language"))
	httpx.JSONSuccess(w, r, result, nil)
}

// GetByCode handles GET /countries/{code}
func (h *HTTPHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(r.PathValue("code"))
	if !Known(code) {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Country not found", nil)
		return
	}
	httpx.JSONSuccess(w, r, InfoByCode(code), nil)
}
