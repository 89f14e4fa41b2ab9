package nft

import (
	"encoding/json"
	"errors"
	"net/http"

	"collectapi/internal/httpx"
	"collectapi/internal/stamp"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Mint handles POST /nft/mint
func (h *HTTPHandler) Mint(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == 0 {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return
	}

	var req MintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(&req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	n, err := h.service.MintStamp(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, stamp.ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Stamp not found", nil)
			return
		}
		httpx.LogError(r, "nft mint failed", err, "stamp_id", req.StampID, "user_id", userID)
		httpx.JSONError(w, r, http.StatusInternalServerError, "MINT_FAILED", "Failed to mint NFT", nil)
		return
	}
	httpx.JSONSuccessCreated(w, r, map[string]any{"nft": n})
}

// ListMine handles GET /nft
func (h *HTTPHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == 0 {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return
	}

	nfts, err := h.service.ListByOwner(r.Context(), userID)
	if err != nil {
		httpx.LogError(r, "nft list failed", err, "user_id", userID)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if nfts == nil {
		nfts = []StampNFT{}
	}
	httpx.JSONSuccess(w, r, map[string]any{"nfts": nfts}, nil)
}
