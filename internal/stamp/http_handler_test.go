package stamp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

func (m *mockRepo) List(ctx context.Context, q Query) ([]Stamp, int, error) {
	args := m.Called(ctx, q)
	stamps, _ := args.Get(0).([]Stamp)
	return stamps, args.Int(1), args.Error(2)
}

func (m *mockRepo) GetByID(ctx context.Context, id int) (Stamp, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Stamp), args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, s *Stamp) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockRepo) Update(ctx context.Context, s *Stamp) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepo) ListCategories(ctx context.Context) ([]Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]Category)
	return categories, args.Error(1)
}

var testStamp = Stamp{
	ID:          1,
	Title:       "Nelson Mandela Inauguration",
	RarityLevel: "rare",
	CreatedAt:   time.Now(),
	UpdatedAt:   time.Now(),
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHTTPHandler_List(t *testing.T) {
	t.Run("success with pagination", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("List", mock.Anything, mock.Anything).Return([]Stamp{testStamp}, 45, nil)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/stamps?page=2&limit=20", nil)
		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		data := body["data"].(map[string]any)
		pagination := data["pagination"].(map[string]any)
		assert.Equal(t, float64(2), pagination["page"])
		assert.Equal(t, float64(20), pagination["limit"])
		assert.Equal(t, float64(45), pagination["total"])
		assert.Equal(t, float64(3), pagination["totalPages"])
	})

	t.Run("filters forwarded to repository", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("List", mock.Anything, mock.MatchedBy(func(q Query) bool {
			return q.Search == "Mandela" &&
				q.YearFrom != nil && *q.YearFrom == 1994 &&
				q.YearTo != nil && *q.YearTo == 1994 &&
				q.Limit == 20 && q.Offset == 0
		})).Return([]Stamp{testStamp}, 1, nil)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/stamps?search=Mandela&yearFrom=1994&yearTo=1994", nil)
		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("malformed year bound is skipped", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("List", mock.Anything, mock.MatchedBy(func(q Query) bool {
			return q.YearFrom == nil && q.YearTo == nil
		})).Return([]Stamp{}, 0, nil)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/stamps?yearFrom=abc", nil)
		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("invalid rarity rejected", func(t *testing.T) {
		repo := new(mockRepo)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/stamps?rarity=legendary", nil)
		handler.List(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "List")
	})

	t.Run("empty catalog", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("List", mock.Anything, mock.Anything).Return([]Stamp{}, 0, nil)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/stamps", nil)
		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		data := body["data"].(map[string]any)
		assert.Empty(t, data["items"])
		pagination := data["pagination"].(map[string]any)
		assert.Equal(t, float64(0), pagination["total"])
		assert.Equal(t, float64(0), pagination["totalPages"])
	})

	t.Run("repository failure degrades gracefully", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("List", mock.Anything, mock.Anything).Return(nil, 0, context.DeadlineExceeded)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/stamps", nil)
		handler.List(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeBody(t, w)
		data := body["data"].(map[string]any)
		assert.Empty(t, data["items"])
		pagination := data["pagination"].(map[string]any)
		assert.Equal(t, float64(0), pagination["total"])
		assert.Equal(t, float64(0), pagination["totalPages"])
	})

	t.Run("repository failure is logged with the filter set", func(t *testing.T) {
		var logBuf bytes.Buffer
		prev := slog.Default()
		slog.SetDefault(slog.New(slog.NewTextHandler(&logBuf, nil)))
		defer slog.SetDefault(prev)

		repo := new(mockRepo)
		repo.On("List", mock.Anything, mock.Anything).Return(nil, 0, context.DeadlineExceeded)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/stamps?search=Mandela&yearFrom=1994", nil)
		handler.List(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		logged := logBuf.String()
		assert.Contains(t, logged, "stamp list failed")
		assert.Contains(t, logged, context.DeadlineExceeded.Error())
		assert.Contains(t, logged, "search=Mandela&yearFrom=1994")
	})
}

func TestHTTPHandler_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetByID", mock.Anything, 1).Return(testStamp, nil)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/stamps/1", nil)
		r.SetPathValue("id", "1")
		handler.GetByID(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetByID", mock.Anything, 999).Return(Stamp{}, ErrNotFound)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/stamps/999", nil)
		r.SetPathValue("id", "999")
		handler.GetByID(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		repo := new(mockRepo)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/stamps/abc", nil)
		r.SetPathValue("id", "abc")
		handler.GetByID(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/stamps",
			jsonBody(t, map[string]any{"title": "Big Five Series", "rarityLevel": "common"}))
		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing title", func(t *testing.T) {
		repo := new(mockRepo)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/stamps",
			jsonBody(t, map[string]any{"rarityLevel": "common"}))
		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("bad rarity", func(t *testing.T) {
		repo := new(mockRepo)
		handler := NewHTTPHandler(NewService(repo))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/stamps",
			jsonBody(t, map[string]any{"title": "X", "rarityLevel": "mythic"}))
		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_ListCategories(t *testing.T) {
	repo := new(mockRepo)
	repo.On("ListCategories", mock.Anything).Return([]Category{{ID: 1, Name: "Commemorative"}}, nil)
	handler := NewHTTPHandler(NewService(repo))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/stamps/categories", nil)
	handler.ListCategories(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}
