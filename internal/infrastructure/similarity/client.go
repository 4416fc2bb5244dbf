// Package similarity is the best-effort HTTP client for the semantic
// product-similarity service. Its failures never propagate: a failed
// lookup is indistinguishable from an empty one.
package similarity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/finmetrics/credit-gateway/internal/core/domain"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type Options struct {
	Timeout time.Duration
	Logger  *slog.Logger
}

func New(baseURL string, options Options) *Client {
	timeout := options.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FindSimilar returns products matching the descriptive query. Every
// failure mode (network, status, parse, timeout) degrades to an empty
// slice with a warning; the caller never sees an error.
func (c *Client) FindSimilar(ctx context.Context, query string) []domain.RecommendedProduct {
	if strings.TrimSpace(query) == "" {
		return []domain.RecommendedProduct{}
	}

	products, err := c.search(ctx, query)
	if err != nil {
		c.logger.Warn("similar products lookup failed", "error", err)
		return []domain.RecommendedProduct{}
	}
	return products
}

func (c *Client) search(ctx context.Context, query string) ([]domain.RecommendedProduct, error) {
	body, err := json.Marshal(map[string]string{"description": query})
	if err != nil {
		return nil, fmt.Errorf("marshal similarity request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/similar_products", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create similarity request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("similarity request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		msg := strings.TrimSpace(string(respBody))
		if msg == "" {
			return nil, fmt.Errorf("similarity status: %s", resp.Status)
		}
		return nil, fmt.Errorf("similarity status: %s: %s", resp.Status, msg)
	}

	var payload struct {
		Results []domain.RecommendedProduct `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode similarity response: %w", err)
	}
	if payload.Results == nil {
		return []domain.RecommendedProduct{}, nil
	}
	return payload.Results, nil
}
