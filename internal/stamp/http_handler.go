package stamp

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

// ListResponse is the payload for list endpoints: one page of items plus
// the pagination metadata describing the whole filtered set.
type ListResponse struct {
	Items      []Stamp          `json:"items"`
	Pagination query.Pagination `json:"pagination"`
}

// List handles GET /stamps
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	params := Query{
		Search: values.Get("search"),
		Rarity: values.Get("rarity"),
	}

	if params.Rarity != "" && !ValidRarity(params.Rarity) {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
			{Field: "rarity", Message: "rarity must be one of: common, uncommon, rare, very_rare"},
		})
		return
	}

	// Malformed numeric bounds are skipped rather than rejected, matching
	// how absent bounds behave.
	if v, err := strconv.Atoi(values.Get("category")); err == nil {
		params.Category = &v
	}
	if v, err := strconv.Atoi(values.Get("yearFrom")); err == nil {
		params.YearFrom = &v
	}
	if v, err := strconv.Atoi(values.Get("yearTo")); err == nil {
		params.YearTo = &v
	}

	page, limit := query.ParsePage(values)
	params.Limit = limit
	params.Offset = (page - 1) * limit

	stamps, total, err := h.service.List(r.Context(), params)
	if err != nil {
		httpx.LogError(r, "stamp list failed", err, "filters", r.URL.RawQuery)
		httpx.JSONErrorWithData(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error",
			ListResponse{Items: []Stamp{}, Pagination: query.Zeroed(page, limit)}, nil)
		return
	}
	if stamps == nil {
		stamps = []Stamp{}
	}

	httpx.JSONSuccess(w, r, ListResponse{
		Items:      stamps,
		Pagination: query.Paginate(page, limit, total),
	}, nil)
}

// GetByID handles GET /stamps/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid stamp id", nil)
		return
	}

	st, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Stamp not found", nil)
			return
		}
		httpx.LogError(r, "stamp lookup failed", err, "id", id)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, st, nil)
}

type upsertReq struct {
	SACCNumber  *string  `json:"saccNumber"`
	Title       string   `json:"title" validate:"required,max=255"`
	Description *string  `json:"description"`
	IssueDate   *string  `json:"issueDate"`
	FaceValue   *float64 `json:"faceValue"`
	CategoryID  *int     `json:"categoryId"`
	SeriesName  *string  `json:"seriesName"`
	Designer    *string  `json:"designer"`
	Printer     *string  `json:"printer"`
	Perforation *string  `json:"perforation"`
	Watermark   *string  `json:"watermark"`
	ImageURL    *string  `json:"imageUrl"`
	RarityLevel string   `json:"rarityLevel" validate:"required,oneof=common uncommon rare very_rare"`
}

func (req *upsertReq) toStamp() (Stamp, []httpx.ErrorDetail) {
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		return Stamp{}, details
	}
	st := Stamp{
		SACCNumber:  req.SACCNumber,
		Title:       req.Title,
		Description: req.Description,
		FaceValue:   req.FaceValue,
		CategoryID:  req.CategoryID,
		SeriesName:  req.SeriesName,
		Designer:    req.Designer,
		Printer:     req.Printer,
		Perforation: req.Perforation,
		Watermark:   req.Watermark,
		ImageURL:    req.ImageURL,
		RarityLevel: req.RarityLevel,
	}
	if req.IssueDate != nil {
		t, err := parseDate(*req.IssueDate)
		if err != nil {
			return Stamp{}, []httpx.ErrorDetail{{Field: "issueDate", Message: "issueDate must be YYYY-MM-DD"}}
		}
		st.IssueDate = &t
	}
	return st, nil
}

// Create handles POST /stamps
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req upsertReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	st, details := req.toStamp()
	if len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	if err := h.service.Create(r.Context(), &st); err != nil {
		httpx.LogError(r, "stamp create failed", err, "title", st.Title)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreated(w, r, st)
}

// Update handles PUT /stamps/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid stamp id", nil)
		return
	}

	var req upsertReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	st, details := req.toStamp()
	if len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}
	st.ID = id

	if err := h.service.Update(r.Context(), &st); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Stamp not found", nil)
			return
		}
		httpx.LogError(r, "stamp update failed", err, "id", id)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, st, nil)
}

// Delete handles DELETE /stamps/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid stamp id", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Stamp not found", nil)
			return
		}
		httpx.LogError(r, "stamp delete failed", err, "id", id)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// ListCategories handles GET /stamps/categories
func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		httpx.LogError(r, "stamp categories failed", err)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if categories == nil {
		categories = []Category{}
	}
	httpx.JSONSuccess(w, r, map[string]any{"categories": categories}, nil)
}
