package collection

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"collectapi/internal/httpx"
	"collectapi/internal/query"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type ListResponse struct {
	Items      []Item           `json:"items"`
	Pagination query.Pagination `json:"pagination"`
}

// List handles GET /collection
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == 0 {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return
	}

	page, limit := query.ParsePage(r.URL.Query())
	items, total, err := h.service.List(r.Context(), userID, limit, (page-1)*limit)
	if err != nil {
		httpx.LogError(r, "collection list failed", err, "user_id", userID, "filters", r.URL.RawQuery)
		httpx.JSONErrorWithData(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error",
			ListResponse{Items: []Item{}, Pagination: query.Zeroed(page, limit)}, nil)
		return
	}
	if items == nil {
		items = []Item{}
	}

	httpx.JSONSuccess(w, r, ListResponse{
		Items:      items,
		Pagination: query.Paginate(page, limit, total),
	}, nil)
}

type itemReq struct {
	CoinID        int      `json:"coinId" validate:"required,gt=0"`
	Quantity      int      `json:"quantity" validate:"omitempty,gt=0"`
	Condition     *string  `json:"condition"`
	PurchasePrice *float64 `json:"purchasePrice" validate:"omitempty,gte=0"`
	PurchaseDate  *string  `json:"purchaseDate"`
	Notes         *string  `json:"notes"`
}

func (req *itemReq) toItem() (Item, []httpx.ErrorDetail) {
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		return Item{}, details
	}

	item := Item{
		CoinID:        req.CoinID,
		Quantity:      req.Quantity,
		Condition:     req.Condition,
		PurchasePrice: req.PurchasePrice,
		Notes:         req.Notes,
	}
	if req.PurchaseDate != nil {
		d, err := time.Parse("2006-01-02", *req.PurchaseDate)
		if err != nil {
			return Item{}, []httpx.ErrorDetail{{Field: "purchaseDate", Message: "purchaseDate must be YYYY-MM-DD"}}
		}
		item.PurchaseDate = &d
	}
	return item, nil
}

// Add handles POST /collection
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == 0 {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return
	}

	var req itemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	item, details := req.toItem()
	if len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}
	item.UserID = userID

	if err := h.service.Add(r.Context(), &item); err != nil {
		httpx.LogError(r, "collection add failed", err, "user_id", userID, "coin_id", item.CoinID)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreated(w, r, item)
}

// Update handles PUT /collection/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == 0 {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid item id", nil)
		return
	}

	var req itemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	item, details := req.toItem()
	if len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}
	item.ID = id
	item.UserID = userID
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	if err := h.service.Update(r.Context(), &item); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Collection item not found", nil)
			return
		}
		httpx.LogError(r, "collection update failed", err, "user_id", userID, "id", id)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, item, nil)
}

// Remove handles DELETE /collection/{id}
func (h *HTTPHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == 0 {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid item id", nil)
		return
	}

	if err := h.service.Remove(r.Context(), userID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Collection item not found", nil)
			return
		}
		httpx.LogError(r, "collection remove failed", err, "user_id", userID, "id", id)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}
