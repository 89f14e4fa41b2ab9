package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"collectapi/internal/httpx"
)

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Search(ctx context.Context, q Query) ([]Listing, int, error) {
	args := m.Called(ctx, q)
	listings, _ := args.Get(0).([]Listing)
	return listings, args.Int(1), args.Error(2)
}

func (m *mockRepo) GetByID(ctx context.Context, id int) (Listing, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Listing), args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, l *Listing) error {
	return m.Called(ctx, l).Error(0)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id, sellerID int, status string) error {
	return m.Called(ctx, id, sellerID, status).Error(0)
}

var testListing = Listing{
	ID:        1,
	CoinID:    7,
	SellerID:  2,
	Price:     1500,
	Currency:  "ZAR",
	Status:    StatusActive,
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

func asUser(r *http.Request, userID int) *http.Request {
	return r.WithContext(httpx.ContextWithUser(r.Context(), userID, "seller@example.com"))
}

func TestHTTPHandler_Search(t *testing.T) {
	t.Run("success with pagination", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Search", mock.Anything, mock.Anything).Return([]Listing{testListing}, 45, nil)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/marketplace?page=2", nil)
		handler.Search(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		pagination := body["data"].(map[string]any)["pagination"].(map[string]any)
		assert.Equal(t, float64(3), pagination["totalPages"])
	})

	t.Run("filters forwarded to repository", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Search", mock.Anything, mock.MatchedBy(func(q Query) bool {
			return q.Search == "Krugerrand" &&
				q.PriceMin != nil && *q.PriceMin == 100 &&
				q.PriceMax != nil && *q.PriceMax == 2000
		})).Return([]Listing{testListing}, 1, nil)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/marketplace?search=Krugerrand&priceMin=100&priceMax=2000", nil)
		handler.Search(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("condition filter forwarded to repository", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Search", mock.Anything, mock.MatchedBy(func(q Query) bool {
			return q.Condition == "used"
		})).Return([]Listing{testListing}, 1, nil)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/marketplace?condition=used", nil)
		handler.Search(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("repository failure degrades to empty page", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Search", mock.Anything, mock.Anything).Return(nil, 0, errors.New("down"))
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/marketplace", nil)
		handler.Search(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		data := body["data"].(map[string]any)
		assert.Empty(t, data["items"])
	})
}

func TestHTTPHandler_Create(t *testing.T) {
	t.Run("success defaults status and currency", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(l *Listing) bool {
			return l.SellerID == 2 && l.Status == StatusActive && l.Currency == "ZAR"
		})).Return(nil)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := asUser(httptest.NewRequest(http.MethodPost, "/marketplace", jsonBody(t, map[string]any{
			"coinId": 7,
			"price":  1500,
		})), 2)
		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("condition, quantity and images persisted", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(l *Listing) bool {
			return l.Condition != nil && *l.Condition == "proof" &&
				l.Quantity == 3 &&
				len(l.Images) == 2 && l.Images[0] == "https://img.example.com/obv.jpg"
		})).Return(nil)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := asUser(httptest.NewRequest(http.MethodPost, "/marketplace", jsonBody(t, map[string]any{
			"coinId":    7,
			"price":     1500,
			"condition": "proof",
			"quantity":  3,
			"images":    []string{"https://img.example.com/obv.jpg", "https://img.example.com/rev.jpg"},
		})), 2)
		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("quantity defaults to one", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(l *Listing) bool {
			return l.Quantity == 1 && l.Images != nil
		})).Return(nil)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := asUser(httptest.NewRequest(http.MethodPost, "/marketplace", jsonBody(t, map[string]any{
			"coinId": 7,
			"price":  1500,
		})), 2)
		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		repo := new(mockRepo)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/marketplace", jsonBody(t, map[string]any{
			"coinId": 7,
			"price":  1500,
		}))
		handler.Create(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("non-positive price rejected", func(t *testing.T) {
		repo := new(mockRepo)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := asUser(httptest.NewRequest(http.MethodPost, "/marketplace", jsonBody(t, map[string]any{
			"coinId": 7,
			"price":  -5,
		})), 2)
		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_UpdateStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("UpdateStatus", mock.Anything, 1, 2, StatusSold).Return(nil)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := asUser(httptest.NewRequest(http.MethodPatch, "/marketplace/1/status", jsonBody(t, map[string]any{
			"status": "sold",
		})), 2)
		r.SetPathValue("id", "1")
		handler.UpdateStatus(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("other seller's listing is forbidden", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("UpdateStatus", mock.Anything, 1, 9, StatusCancelled).Return(ErrForbidden)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := asUser(httptest.NewRequest(http.MethodPatch, "/marketplace/1/status", jsonBody(t, map[string]any{
			"status": "cancelled",
		})), 9)
		r.SetPathValue("id", "1")
		handler.UpdateStatus(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		repo := new(mockRepo)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := asUser(httptest.NewRequest(http.MethodPatch, "/marketplace/1/status", jsonBody(t, map[string]any{
			"status": "paused",
		})), 2)
		r.SetPathValue("id", "1")
		handler.UpdateStatus(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBuildFilter_PinsActiveStatus(t *testing.T) {
	b := buildFilter(Query{})
	assert.Equal(t, "WHERE l.status = $1", b.WhereClause())
	assert.Equal(t, []any{StatusActive}, b.Args())
}

func TestBuildFilter_CombinesCoinAndPriceFilters(t *testing.T) {
	priceMax := 2000.0
	b := buildFilter(Query{Search: "rand", Rarity: "rare", PriceMax: &priceMax})

	want := "WHERE l.status = $1" +
		" AND (c.name ILIKE $2 OR c.description ILIKE $2 OR c.catalog_number ILIKE $2)" +
		" AND c.rarity = $3" +
		" AND l.price <= $4"
	assert.Equal(t, want, b.WhereClause())
}

func TestBuildFilter_ConditionMatchesListingColumn(t *testing.T) {
	b := buildFilter(Query{Condition: "used"})

	assert.Equal(t, "WHERE l.status = $1 AND l.condition = $2", b.WhereClause())
	assert.Equal(t, []any{StatusActive, "used"}, b.Args())
}
