package payment

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

type createIntentReq struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"omitempty,len=3"`
	OrderID  string  `json:"orderId"`
}

// CreateIntent handles POST /payments/create-intent
func (h *HTTPHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == 0 {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return
	}

	var req createIntentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(&req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	intent, err := h.service.CreateIntent(userID, req.Amount, req.Currency, req.OrderID)
	if err != nil {
		httpx.LogError(r, "payment intent failed", err, "user_id", userID, "order_id", req.OrderID)
		httpx.JSONError(w, r, http.StatusInternalServerError, "PAYMENT_FAILED", "Failed to create payment intent", nil)
		return
	}
	httpx.JSONSuccess(w, r, intent, nil)
}
