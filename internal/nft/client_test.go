package nft

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Mint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/nft/mint", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "0xabc", payload["recipient"])
		assert.Equal(t, "stamp-collection", payload["collection"])
		assert.Equal(t, 5.0, payload["royalty_percentage"])

		json.NewEncoder(w).Encode(MintResult{
			TokenID:         "42",
			ContractAddress: "0xcontract",
			TransactionHash: "0xtx",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 100, 0)
	result, err := c.Mint(context.Background(), "0xabc", Metadata{Name: "Mandela 1994"}, 5)
	require.NoError(t, err)
	assert.Equal(t, "42", result.TokenID)
	assert.Equal(t, "0xcontract", result.ContractAddress)
}

func TestClient_MintRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(MintResult{TokenID: "42"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 100, 2)
	result, err := c.Mint(context.Background(), "0xabc", Metadata{}, 0)
	require.NoError(t, err)
	assert.Equal(t, "42", result.TokenID)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_MintDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad-key", 100, 3)
	_, err := c.Mint(context.Background(), "0xabc", Metadata{}, 0)
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
