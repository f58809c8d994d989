package providers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/i474232898/home-dashboard/internal/common"
)

// maxErrorBody bounds how much of a non-2xx body is kept for server-side logs.
const maxErrorBody = 64 << 10

var (
	errNoHTTPClient = errors.New("http client not configured")
)

// doRequest executes a single GET and returns the body of a 2xx answer.
// Non-2xx answers become *common.UpstreamStatusError. No retry.
func doRequest(
	ctx context.Context,
	client *http.Client,
	provider string,
	buildRequest func() (*http.Request, error),
) ([]byte, error) {
	if client == nil {
		return nil, errNoHTTPClient
	}

	req, err := buildRequest()
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &common.UpstreamStatusError{
			Provider:   provider,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s response read failed: %w", provider, err)
	}
	return body, nil
}
