package collection

import (
	"bytes"
	"context"
	"encoding/json"
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

func (m *mockRepo) List(ctx context.Context, userID, limit, offset int) ([]Item, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	items, _ := args.Get(0).([]Item)
	return items, args.Int(1), args.Error(2)
}

func (m *mockRepo) Add(ctx context.Context, item *Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockRepo) Update(ctx context.Context, item *Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockRepo) Remove(ctx context.Context, userID, id int) error {
	return m.Called(ctx, userID, id).Error(0)
}

func asUser(r *http.Request, userID int) *http.Request {
	return r.WithContext(httpx.ContextWithUser(r.Context(), userID, "owner@example.com"))
}

var testItem = Item{
	ID:        1,
	UserID:    2,
	CoinID:    7,
	Quantity:  1,
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

func TestHTTPHandler_List(t *testing.T) {
	t.Run("scoped to the authenticated user", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("List", mock.Anything, 2, 20, 0).Return([]Item{testItem}, 1, nil)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := asUser(httptest.NewRequest(http.MethodGet, "/collection", nil), 2)
		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		repo := new(mockRepo)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/collection", nil)
		handler.List(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHTTPHandler_Add(t *testing.T) {
	t.Run("success with quantity default", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Add", mock.Anything, mock.MatchedBy(func(item *Item) bool {
			return item.UserID == 2 && item.CoinID == 7 && item.Quantity == 1
		})).Return(nil)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := asUser(httptest.NewRequest(http.MethodPost, "/collection", jsonBody(t, map[string]any{
			"coinId": 7,
		})), 2)
		handler.Add(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("bad purchase date", func(t *testing.T) {
		repo := new(mockRepo)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := asUser(httptest.NewRequest(http.MethodPost, "/collection", jsonBody(t, map[string]any{
			"coinId":       7,
			"purchaseDate": "last week",
		})), 2)
		handler.Add(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

func TestHTTPHandler_Remove(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Remove", mock.Anything, 2, 1).Return(nil)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := asUser(httptest.NewRequest(http.MethodDelete, "/collection/1", nil), 2)
		r.SetPathValue("id", "1")
		handler.Remove(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("someone else's item looks missing", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Remove", mock.Anything, 9, 1).Return(ErrNotFound)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := asUser(httptest.NewRequest(http.MethodDelete, "/collection/1", nil), 9)
		r.SetPathValue("id", "1")
		handler.Remove(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
