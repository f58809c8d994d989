package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/i474232898/home-dashboard/internal/poller"
	"github.com/i474232898/home-dashboard/internal/weather"
)

const (
	msgWeatherLoading     = "Loading weather..."
	msgWeatherUnavailable = "Unable to load weather"
)

// WeatherPanel is the normalized weather block.
type WeatherPanel struct {
	Current  weather.CurrentWeather `json:"current"`
	Forecast []weather.ForecastDay  `json:"forecast"`
}

// WeatherView polls /api/weather and normalizes the pass-through payload.
type WeatherView struct {
	view[WeatherPanel]
}

func NewWeatherView(c *Client, interval time.Duration, loc *time.Location) *WeatherView {
	fetch := func(ctx context.Context) (WeatherPanel, error) {
		var payload struct {
			Current  weather.CurrentConditions `json:"current"`
			Forecast weather.ForecastPayload   `json:"forecast"`
		}
		if err := c.getJSON(ctx, "/api/weather", &payload); err != nil {
			return WeatherPanel{}, err
		}
		current, err := weather.NormalizeCurrent(payload.Current)
		if err != nil {
			return WeatherPanel{}, err
		}
		return WeatherPanel{
			Current:  current,
			Forecast: weather.NoonForecast(payload.Forecast.List, loc),
		}, nil
	}
	return &WeatherView{view: newView("weather", fetch, interval)}
}

// Panel returns the data to draw, if any. Stale data is kept while erroring.
func (v *WeatherView) Panel() *WeatherPanel {
	return v.State().Data
}

// Placeholder is the text shown instead of, or under, the panel.
// Unlike the other views the weather block never renders silently.
func (v *WeatherView) Placeholder() string {
	st := v.State()
	switch st.Phase {
	case poller.Loading:
		return msgWeatherLoading
	case poller.Disabled:
		return msgWeatherUnavailable
	case poller.Error:
		if st.Data == nil {
			return fmt.Sprintf("%s: %s", msgWeatherUnavailable, st.ErrorMessage)
		}
		return fmt.Sprintf("Error: %s", st.ErrorMessage)
	default:
		return ""
	}
}
