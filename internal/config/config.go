package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/i474232898/home-dashboard/internal/providers"
	"github.com/i474232898/home-dashboard/internal/scheduler"
	"github.com/i474232898/home-dashboard/internal/weather"
)

const (
	defaultLat = 51.5074
	defaultLon = -0.1278
)

var validate = validator.New()

type AppConfig struct {
	// Credentials; an empty value disables the matching endpoint.
	TransitAPIKey string
	WeatherAPIKey string

	TransitBaseURL string   `validate:"required,url"`
	TransitModes   []string `validate:"required,min=1,dive,required"`
	WeatherBaseURL string   `validate:"required,url"`
	WeatherUnits   string   `validate:"oneof=standard metric imperial"`

	// Location is the one coordinate pair every weather query uses.
	Location weather.Coordinates
	Timezone *time.Location `validate:"required"`

	// Production hides error detail from responses.
	Production bool

	PollInterval time.Duration `validate:"gt=0"`
	// HTTPTimeout of 0 leaves the transport default in place.
	HTTPTimeout time.Duration `validate:"gte=0"`

	Port            string `validate:"required,numeric"`
	DashboardAPIURL string `validate:"required,url"`
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.TransitAPIKey = os.Getenv("TFL_API_KEY")
	cfg.WeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")

	cfg.TransitBaseURL = getenvDefault("TRANSIT_BASE_URL", providers.DefaultTransitURL)
	cfg.TransitModes = splitList(getenvDefault("TRANSIT_MODES", "tube"))
	cfg.WeatherBaseURL = getenvDefault("OPENWEATHER_BASE_URL", providers.DefaultOpenWeatherURL)
	cfg.WeatherUnits = getenvDefault("WEATHER_UNITS", "metric")

	loc, err := loadLocation()
	if err != nil {
		return nil, err
	}
	cfg.Location = loc

	tz, err := time.LoadLocation(getenvDefault("DASHBOARD_TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid DASHBOARD_TIMEZONE: %w", err)
	}
	cfg.Timezone = tz

	cfg.Production = strings.EqualFold(getenvDefault("APP_ENV", "development"), "production")

	cfg.PollInterval, err = time.ParseDuration(getenvDefault("POLL_INTERVAL", scheduler.DefaultInterval.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid POLL_INTERVAL: %w", err)
	}
	cfg.HTTPTimeout, err = time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.DashboardAPIURL = getenvDefault("DASHBOARD_API_URL", "http://127.0.0.1:"+cfg.Port)

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadLocation reads WEATHER_LAT/WEATHER_LON, falling back to LATITUDE/LONGITUDE
// and then to central London, so every code path shares one pair.
func loadLocation() (weather.Coordinates, error) {
	latStr := firstEnv("WEATHER_LAT", "LATITUDE")
	lonStr := firstEnv("WEATHER_LON", "LONGITUDE")
	if (latStr == "") != (lonStr == "") {
		return weather.Coordinates{}, fmt.Errorf("latitude and longitude must be set together")
	}

	loc := weather.Coordinates{Lat: defaultLat, Lon: defaultLon}
	if latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return weather.Coordinates{}, fmt.Errorf("invalid latitude: %w", err)
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return weather.Coordinates{}, fmt.Errorf("invalid longitude: %w", err)
		}
		loc = weather.Coordinates{Lat: lat, Lon: lon}
	}
	return loc, nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
