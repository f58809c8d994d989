package main

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	httpapi "github.com/i474232898/home-dashboard/internal/api/http"
	"github.com/i474232898/home-dashboard/internal/config"
	"github.com/i474232898/home-dashboard/internal/dashboard"
	"github.com/i474232898/home-dashboard/internal/providers"
	"github.com/i474232898/home-dashboard/internal/transit"
	"github.com/i474232898/home-dashboard/internal/weather"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		log.Infof("no .env file found or error loading it: %v", err)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.TransitAPIKey == "" {
		log.Warn("TFL_API_KEY not set, /api/tube will report 503")
	}
	if cfg.WeatherAPIKey == "" {
		log.Warn("OPENWEATHER_API_KEY not set, weather endpoints will fail")
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	transitProvider := providers.NewTransitProvider(httpClient, cfg.TransitBaseURL, cfg.TransitAPIKey, cfg.TransitModes)
	weatherProvider := providers.NewOpenWeatherProvider(httpClient, cfg.WeatherBaseURL, cfg.WeatherAPIKey, cfg.WeatherUnits, cfg.Location)

	// Dashboard views poll this server's own API.
	dash := dashboard.New(dashboard.NewClient(cfg.DashboardAPIURL, httpClient), cfg.PollInterval, cfg.Timezone)

	app := httpapi.NewApp(cfg.Production)
	httpapi.RegisterRoutes(app, httpapi.Services{
		Transit:   transit.NewService(transitProvider),
		Weather:   weather.NewService(weatherProvider, cfg.Timezone),
		Dashboard: dash,
	})

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		log.Fatalf("failed to listen on port %s: %v", cfg.Port, err)
	}

	go func() {
		if err := app.Listener(ln); err != nil {
			log.Errorf("fiber server stopped: %v", err)
		}
	}()
	log.WithFields(log.Fields{
		"port":     cfg.Port,
		"interval": cfg.PollInterval.String(),
		"lat":      cfg.Location.Lat,
		"lon":      cfg.Location.Lon,
	}).Info("home dashboard listening")

	// The listener is bound, so the first poll can reach the API.
	if err := dash.Start(); err != nil {
		log.Fatalf("failed to start dashboard: %v", err)
	}

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	dash.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("error during shutdown: %v", err)
	}
}
