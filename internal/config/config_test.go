package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"TFL_API_KEY", "OPENWEATHER_API_KEY", "TRANSIT_BASE_URL", "TRANSIT_MODES",
		"OPENWEATHER_BASE_URL", "WEATHER_UNITS", "WEATHER_LAT", "WEATHER_LON",
		"LATITUDE", "LONGITUDE", "DASHBOARD_TIMEZONE", "APP_ENV", "POLL_INTERVAL",
		"HTTP_TIMEOUT", "PORT", "DASHBOARD_API_URL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Location.Lat != defaultLat || cfg.Location.Lon != defaultLon {
		t.Fatalf("expected London default, got %+v", cfg.Location)
	}
	if cfg.PollInterval != 5*time.Minute {
		t.Fatalf("expected 5m poll interval, got %s", cfg.PollInterval)
	}
	if cfg.HTTPTimeout != 0 {
		t.Fatalf("expected transport default timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.Production {
		t.Fatal("expected development mode by default")
	}
	if len(cfg.TransitModes) != 1 || cfg.TransitModes[0] != "tube" {
		t.Fatalf("unexpected modes %v", cfg.TransitModes)
	}
	if cfg.DashboardAPIURL != "http://127.0.0.1:8080" {
		t.Fatalf("unexpected dashboard url %s", cfg.DashboardAPIURL)
	}
	if cfg.TransitAPIKey != "" || cfg.WeatherAPIKey != "" {
		t.Fatal("credentials must be empty when unset")
	}
}

func TestLoadCoordinatesShareOnePair(t *testing.T) {
	clearEnv(t)
	t.Setenv("LATITUDE", "48.8566")
	t.Setenv("LONGITUDE", "2.3522")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Location.Lat != 48.8566 || cfg.Location.Lon != 2.3522 {
		t.Fatalf("expected fallback pair, got %+v", cfg.Location)
	}

	t.Setenv("WEATHER_LAT", "40.7128")
	t.Setenv("WEATHER_LON", "-74.006")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Location.Lat != 40.7128 || cfg.Location.Lon != -74.006 {
		t.Fatalf("expected WEATHER_* pair to win, got %+v", cfg.Location)
	}
}

func TestLoadRejectsHalfCoordinates(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEATHER_LAT", "40.7")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when only latitude is set")
	}
}

func TestLoadValidation(t *testing.T) {
	cases := map[string][2]string{
		"latitude out of range": {"WEATHER_LAT", "123"},
		"bad interval":          {"POLL_INTERVAL", "soon"},
		"zero interval":         {"POLL_INTERVAL", "0s"},
		"bad units":             {"WEATHER_UNITS", "kelvinish"},
		"bad timezone":          {"DASHBOARD_TIMEZONE", "Mars/Olympus"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			if kv[0] == "WEATHER_LAT" {
				t.Setenv("WEATHER_LON", "0")
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", kv[0], kv[1])
			}
		})
	}
}

func TestLoadProductionAndModes(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("TRANSIT_MODES", "tube, dlr ,,elizabeth-line")
	t.Setenv("TFL_API_KEY", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Production {
		t.Fatal("expected production mode")
	}
	if len(cfg.TransitModes) != 3 || cfg.TransitModes[1] != "dlr" {
		t.Fatalf("unexpected modes %v", cfg.TransitModes)
	}
	if cfg.TransitAPIKey != "secret" {
		t.Fatal("expected transit key")
	}
}
