package marketplace

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"collectapi/internal/coin"
	"collectapi/internal/httpx"
	"collectapi/internal/query"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type SearchResponse struct {
	Items      []Listing        `json:"items"`
	Pagination query.Pagination `json:"pagination"`
}

// Search handles GET /marketplace
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	params := Query{
		Search:    values.Get("search"),
		Country:   values.Get("country"),
		Category:  values.Get("category"),
		Rarity:    values.Get("rarity"),
		Condition: values.Get("condition"),
	}

	if params.Rarity != "" && !coin.ValidRarity(params.Rarity) {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
			{Field: "rarity", Message: "rarity is not a known rarity level"},
		})
		return
	}

	if v, err := strconv.ParseFloat(values.Get("priceMin"), 64); err == nil {
		params.PriceMin = &v
	}
	if v, err := strconv.ParseFloat(values.Get("priceMax"), 64); err == nil {
		params.PriceMax = &v
	}

	page, limit := query.ParsePage(values)
	params.Limit = limit
	params.Offset = (page - 1) * limit

	listings, total, err := h.service.Search(r.Context(), params)
	if err != nil {
		httpx.LogError(r, "listing search failed", err, "filters", r.URL.RawQuery)
		httpx.JSONErrorWithData(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error",
			SearchResponse{Items: []Listing{}, Pagination: query.Zeroed(page, limit)}, nil)
		return
	}
	if listings == nil {
		listings = []Listing{}
	}

	httpx.JSONSuccess(w, r, SearchResponse{
		Items:      listings,
		Pagination: query.Paginate(page, limit, total),
	}, nil)
}

// GetByID handles GET /marketplace/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid listing id", nil)
		return
	}

	l, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Listing not found", nil)
			return
		}
		httpx.LogError(r, "listing lookup failed", err, "id", id)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, l, nil)
}

type createReq struct {
	CoinID      int      `json:"coinId" validate:"required,gt=0"`
	Condition   *string  `json:"condition" validate:"omitempty,max=50"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Quantity    int      `json:"quantity" validate:"omitempty,gte=1"`
	Currency    string   `json:"currency" validate:"omitempty,len=3"`
	Description *string  `json:"description"`
	Images      []string `json:"images" validate:"omitempty,max=20,dive,max=500"`
}

// Create handles POST /marketplace
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	sellerID := httpx.UserIDFrom(r)
	if sellerID == 0 {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return
	}

	var req createReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(&req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	l := Listing{
		CoinID:      req.CoinID,
		SellerID:    sellerID,
		Condition:   req.Condition,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Currency:    req.Currency,
		Description: req.Description,
		Images:      req.Images,
	}
	if err := h.service.Create(r.Context(), &l); err != nil {
		httpx.LogError(r, "listing create failed", err, "coin_id", l.CoinID, "seller_id", sellerID)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreated(w, r, l)
}

type updateStatusReq struct {
	Status string `json:"status" validate:"required,oneof=active sold cancelled"`
}

// UpdateStatus handles PATCH /marketplace/{id}/status
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	sellerID := httpx.UserIDFrom(r)
	if sellerID == 0 {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid listing id", nil)
		return
	}

	var req updateStatusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(&req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), id, sellerID, req.Status); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Listing not found", nil)
		case errors.Is(err, ErrForbidden):
			httpx.JSONError(w, r, http.StatusForbidden, "FORBIDDEN", "Only the seller can update this listing", nil)
		default:
			httpx.LogError(r, "listing status update failed", err, "id", id)
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"id": id, "status": req.Status}, nil)
}
