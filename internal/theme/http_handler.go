package theme

import (
	"encoding/json"
	"net/http"

	"collectapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Generate handles POST /themes/generate
func (h *HTTPHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == 0 {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return
	}

	var p Prompt
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(&p); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	t, err := h.service.Generate(r.Context(), userID, p)
	if err != nil {
		httpx.LogError(r, "theme generation failed", err, "user_id", userID)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to generate theme", nil)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"theme": t}, nil)
}
