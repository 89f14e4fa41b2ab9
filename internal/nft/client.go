package nft

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client talks to a Plurality-style minting API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	maxRetries int
}

func NewClient(baseURL, apiKey string, rps int, maxRetries int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:    baseURL,
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		maxRetries: maxRetries,
	}
}

type mintPayload struct {
	Recipient         string   `json:"recipient"`
	Metadata          Metadata `json:"metadata"`
	RoyaltyPercentage float64  `json:"royalty_percentage"`
	Collection        string   `json:"collection"`
}

// MintResult matches the mint API response.
type MintResult struct {
	TokenID         string `json:"tokenId"`
	ContractAddress string `json:"contractAddress"`
	TransactionHash string `json:"transactionHash"`
}

// Mint submits a mint request for the stamp collection.
func (c *Client) Mint(ctx context.Context, recipient string, metadata Metadata, royaltyPct float64) (*MintResult, error) {
	payload := mintPayload{
		Recipient:         recipient,
		Metadata:          metadata,
		RoyaltyPercentage: royaltyPct,
		Collection:        "stamp-collection",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	var res MintResult
	if err := c.post(ctx, c.baseURL+"/v1/nft/mint", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) post(ctx context.Context, url string, body []byte, target any) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 1s, 2s, 4s...
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
			resp.Body.Close()
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
				continue
			}
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		err = json.NewDecoder(resp.Body).Decode(target)
		resp.Body.Close()
		return err
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}
