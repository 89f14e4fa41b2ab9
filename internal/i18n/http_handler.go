package i18n

import (
	"net/http"

	"collectapi/internal/httpx"
)

type HTTPHandler struct{}

func NewHTTPHandler() *HTTPHandler {
	return &HTTPHandler{}
}

// ListLanguages handles GET /i18n/languages
func (h *HTTPHandler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, map[string]any{"languages": Languages}, nil)
}

// GetTable handles GET /i18n/{locale}
func (h *HTTPHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	locale := r.PathValue("locale")
	table, ok := Table(locale)
	if !ok {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "No translations for locale", nil)
		return
	}
	httpx.JSONSuccess(w, r, table, nil)
}
