package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"finledger/internal/models"
)

// HTTPClient implements Client over the service's JSON/HTTP surface.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) FetchProfile(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, "/api/user/me", token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) FetchHistory(ctx context.Context, token string) ([]models.Record, error) {
	var records []models.Record
	if err := c.getJSON(ctx, "/api/user/history", token, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *HTTPClient) FetchExpensesByEmail(ctx context.Context, token, email string) ([]models.Record, error) {
	q := url.Values{}
	q.Set("email", email)

	var records []models.Record
	if err := c.getJSON(ctx, "/api/expenses/byEmail?"+q.Encode(), token, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Close is a no-op for the plain HTTP transport; it exists to satisfy Client.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// getJSON performs an authenticated GET and decodes the response body into v.
func (c *HTTPClient) getJSON(ctx context.Context, path, token string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s %s", ErrUnauthorized, path, resp.Status)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: %s %s", ErrFetchFailed, path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", ErrFetchFailed, path, err)
	}
	return nil
}
