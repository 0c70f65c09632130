package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "outing-board-backend/internal/errors"
)

// apiError is the error body returned by the board API
type apiError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// boardClient talks to the /api/v1 surface of the board server
type boardClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func newBoardClient(baseURL, token string, timeout time.Duration) *boardClient {
	return &boardClient{
		baseURL: strings.TrimRight(baseURL, "/") + "/api/v1",
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// do sends body as JSON and decodes a 2xx response into out when out is non-nil
func (c *boardClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		return statusError(path, resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError maps a non-2xx response onto the typed errors the board uses
func statusError(path string, status int, body []byte) error {
	message := fmt.Sprintf("unexpected status %d", status)
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		message = apiErr.Error
	}

	var typed error
	switch status {
	case http.StatusUnauthorized:
		typed = apperrors.NewAuthenticationError(message)
	case http.StatusForbidden:
		typed = apperrors.NewAuthorizationError(message)
	case http.StatusNotFound:
		typed = apperrors.NewNotFoundError(strings.TrimPrefix(path, "/"))
	default:
		return fmt.Errorf("%s (HTTP %d)", message, status)
	}
	return fmt.Errorf("%w (HTTP %d)", typed, status)
}
