package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/i474232898/home-dashboard/internal/common"
	"github.com/i474232898/home-dashboard/internal/weather"
)

// DefaultOpenWeatherURL is the OpenWeatherMap 2.5 API root.
const DefaultOpenWeatherURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
type OpenWeatherProvider struct {
	name     string
	apiKey   string
	baseURL  string
	units    string
	location weather.Coordinates
	client   *http.Client
}

func NewOpenWeatherProvider(client *http.Client, baseURL, apiKey, units string, loc weather.Coordinates) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherURL
	}
	if units == "" {
		units = "metric"
	}
	return &OpenWeatherProvider{
		name:     "weather provider",
		apiKey:   apiKey,
		baseURL:  baseURL,
		units:    units,
		location: loc,
		client:   client,
	}
}

func (p *OpenWeatherProvider) Configured() bool {
	return p.apiKey != ""
}

// Current fetches the current-conditions payload.
func (p *OpenWeatherProvider) Current(ctx context.Context) ([]byte, error) {
	return p.get(ctx, "weather")
}

// Forecast fetches the 5-day/3-hour forecast payload.
func (p *OpenWeatherProvider) Forecast(ctx context.Context) ([]byte, error) {
	return p.get(ctx, "forecast")
}

func (p *OpenWeatherProvider) get(ctx context.Context, endpoint string) ([]byte, error) {
	if !p.Configured() {
		return nil, fmt.Errorf("openweather: %w", common.ErrMissingCredential)
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("lat", strconv.FormatFloat(p.location.Lat, 'f', -1, 64))
		values.Set("lon", strconv.FormatFloat(p.location.Lon, 'f', -1, 64))
		// OpenWeatherMap only accepts the key as a query parameter.
		values.Set("appid", p.apiKey)
		values.Set("units", p.units)

		u := fmt.Sprintf("%s/%s?%s", p.baseURL, endpoint, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	return doRequest(ctx, p.client, p.name, buildRequest)
}
