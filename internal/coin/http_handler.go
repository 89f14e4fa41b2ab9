package coin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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
	Items      []Coin           `json:"items"`
	Pagination query.Pagination `json:"pagination"`
}

// List handles GET /coins
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	params := Query{
		Search:   values.Get("search"),
		Country:  values.Get("country"),
		Category: values.Get("category"),
		Rarity:   values.Get("rarity"),
	}

	if params.Rarity != "" && !ValidRarity(params.Rarity) {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
			{Field: "rarity", Message: "rarity is not a known rarity level"},
		})
		return
	}

	// Malformed bounds are skipped, same as absent ones.
	if v, err := strconv.Atoi(values.Get("yearFrom")); err == nil {
		params.YearFrom = &v
	}
	if v, err := strconv.Atoi(values.Get("yearTo")); err == nil {
		params.YearTo = &v
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

	coins, total, err := h.service.List(r.Context(), params)
	if err != nil {
		httpx.LogError(r, "coin list failed", err, "filters", r.URL.RawQuery)
		httpx.JSONErrorWithData(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error",
			ListResponse{Items: []Coin{}, Pagination: query.Zeroed(page, limit)}, nil)
		return
	}
	if coins == nil {
		coins = []Coin{}
	}

	httpx.JSONSuccess(w, r, ListResponse{
		Items:      coins,
		Pagination: query.Paginate(page, limit, total),
	}, nil)
}

// GetByID handles GET /coins/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid coin id", nil)
		return
	}

	c, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Coin not found", nil)
			return
		}
		httpx.LogError(r, "coin lookup failed", err, "id", id)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, c, nil)
}

type upsertReq struct {
	CatalogNumber  *string  `json:"catalogNumber"`
	Name           string   `json:"name" validate:"required,max=255"`
	Description    *string  `json:"description"`
	Country        string   `json:"country" validate:"required"`
	Category       string   `json:"category" validate:"required"`
	Year           int      `json:"year" validate:"required"`
	Denomination   *string  `json:"denomination"`
	Composition    *string  `json:"composition"`
	Weight         *float64 `json:"weight"`
	Diameter       *float64 `json:"diameter"`
	Thickness      *float64 `json:"thickness"`
	Edge           *string  `json:"edge"`
	Mintage        *int64   `json:"mintage"`
	MintMark       *string  `json:"mintMark"`
	Designer       *string  `json:"designer"`
	Series         *string  `json:"series"`
	Rarity         string   `json:"rarity" validate:"required,oneof=common uncommon scarce rare very_rare extremely_rare"`
	ObverseImage   *string  `json:"obverseImage"`
	ReverseImage   *string  `json:"reverseImage"`
	EstimatedValue *float64 `json:"estimatedValue"`
}

func (req *upsertReq) toCoin() (Coin, []httpx.ErrorDetail) {
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		return Coin{}, details
	}
	return Coin{
		CatalogNumber:  req.CatalogNumber,
		Name:           req.Name,
		Description:    req.Description,
		Country:        req.Country,
		Category:       req.Category,
		Year:           req.Year,
		Denomination:   req.Denomination,
		Composition:    req.Composition,
		Weight:         req.Weight,
		Diameter:       req.Diameter,
		Thickness:      req.Thickness,
		Edge:           req.Edge,
		Mintage:        req.Mintage,
		MintMark:       req.MintMark,
		Designer:       req.Designer,
		Series:         req.Series,
		Rarity:         req.Rarity,
		ObverseImage:   req.ObverseImage,
		ReverseImage:   req.ReverseImage,
		EstimatedValue: req.EstimatedValue,
	}, nil
}

// Create handles POST /coins
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req upsertReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	c, details := req.toCoin()
	if len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	if err := h.service.Create(r.Context(), &c); err != nil {
		httpx.LogError(r, "coin create failed", err, "name", c.Name)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreated(w, r, c)
}

// Update handles PUT /coins/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid coin id", nil)
		return
	}

	var req upsertReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	c, details := req.toCoin()
	if len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}
	c.ID = id

	if err := h.service.Update(r.Context(), &c); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Coin not found", nil)
			return
		}
		httpx.LogError(r, "coin update failed", err, "id", id)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, c, nil)
}

// Delete handles DELETE /coins/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid coin id", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Coin not found", nil)
			return
		}
		httpx.LogError(r, "coin delete failed", err, "id", id)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// ListCategories handles GET /coins/categories
func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		httpx.LogError(r, "coin categories failed", err)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	httpx.JSONSuccess(w, r, map[string]any{"categories": categories}, nil)
}
