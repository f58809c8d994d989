package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/i474232898/home-dashboard/internal/poller"
)

// Client calls the dashboard's own proxy endpoints.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client rooted at baseURL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// getJSON fetches path into out. A 503 yields poller.ErrDisabled; a body
// carrying an "error" field yields an error with that message.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusServiceUnavailable {
		return fmt.Errorf("%s: %w", path, poller.ErrDisabled)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if msg, ok := errorField(body); ok {
		return errors.New(msg)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: decode response (status %d): %w", path, resp.StatusCode, err)
	}
	return nil
}

// errorField reports the "error" member of a JSON object body, if any.
func errorField(body []byte) (string, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return "", false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return "", false
	}
	raw, ok := obj["error"]
	if !ok {
		return "", false
	}
	var msg string
	if err := json.Unmarshal(raw, &msg); err != nil {
		msg = string(raw)
	}
	return msg, true
}
