package weather

import "context"

// Provider abstracts the weather data source (OpenWeatherMap).
// Both calls return the raw 2xx body or an error.
type Provider interface {
	Configured() bool
	Current(ctx context.Context) ([]byte, error)
	Forecast(ctx context.Context) ([]byte, error)
}
