package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/i474232898/home-dashboard/internal/common"
)

// DefaultTransitURL is the TfL unified API root.
const DefaultTransitURL = "https://api.tfl.gov.uk"

// TransitProvider implements the transit.Provider interface for the TfL
// "line status by mode" endpoint.
type TransitProvider struct {
	name    string
	apiKey  string
	baseURL string
	modes   []string
	client  *http.Client
}

func NewTransitProvider(client *http.Client, baseURL, apiKey string, modes []string) *TransitProvider {
	if baseURL == "" {
		baseURL = DefaultTransitURL
	}
	if len(modes) == 0 {
		modes = []string{"tube"}
	}
	return &TransitProvider{
		name:    "transit provider",
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		modes:   modes,
		client:  client,
	}
}

func (p *TransitProvider) Configured() bool {
	return p.apiKey != ""
}

// LineStatuses returns the raw array of line objects for the configured modes.
func (p *TransitProvider) LineStatuses(ctx context.Context) ([]byte, error) {
	if !p.Configured() {
		return nil, fmt.Errorf("transit: %w", common.ErrMissingCredential)
	}

	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s/Line/Mode/%s/Status", p.baseURL, strings.Join(p.modes, ","))
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		// key goes in a header, never the query string
		req.Header.Set("app_key", p.apiKey)
		return req, nil
	}

	return doRequest(ctx, p.client, p.name, buildRequest)
}
