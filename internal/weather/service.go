package weather

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/i474232898/home-dashboard/internal/common"
)

const (
	msgWeatherFailed  = "Failed to fetch weather data"
	msgWeatherInvalid = "Invalid data received from weather provider"
	msgRainNotReady   = "OpenWeather API key not configured"
	msgRainFailed     = "Failed to fetch rain probability data"
)

// Service backs the weather and rain-probability proxy endpoints.
type Service struct {
	provider Provider
	location *time.Location
}

// NewService creates a new Service. Hour labels are rendered in loc.
func NewService(provider Provider, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		provider: provider,
		location: loc,
	}
}

// Snapshot fetches current conditions and the forecast in parallel and
// returns both raw payloads. Either call failing fails the whole snapshot.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	var (
		g               errgroup.Group
		current, fcBody []byte
	)

	g.Go(func() error {
		body, err := s.provider.Current(ctx)
		current = body
		return err
	})
	g.Go(func() error {
		body, err := s.provider.Forecast(ctx)
		fcBody = body
		return err
	})

	if err := g.Wait(); err != nil {
		log.WithFields(log.Fields{"error": err}).Error("weather: provider call failed")

		var statusErr *common.UpstreamStatusError
		if errors.As(err, &statusErr) {
			return Snapshot{}, common.NewError(common.KindUpstream, msgWeatherInvalid, err)
		}
		return Snapshot{}, common.NewError(common.KindTransportOrParse, msgWeatherFailed, err)
	}

	var cur CurrentConditions
	if err := json.Unmarshal(current, &cur); err != nil {
		return Snapshot{}, s.parseFailure(err)
	}
	var fc ForecastPayload
	if err := json.Unmarshal(fcBody, &fc); err != nil {
		return Snapshot{}, s.parseFailure(err)
	}

	if err := validate.Struct(cur); err != nil {
		return Snapshot{}, s.invalid(err)
	}
	if err := validate.Struct(fc); err != nil {
		return Snapshot{}, s.invalid(err)
	}

	return Snapshot{
		Current:  json.RawMessage(current),
		Forecast: json.RawMessage(fcBody),
	}, nil
}

// RainOutlook serves the rain-probability chart for the next 24 hours.
func (s *Service) RainOutlook(ctx context.Context) ([]RainPoint, error) {
	if !s.provider.Configured() {
		return nil, common.NewError(common.KindConfigurationMissing, msgRainNotReady, common.ErrMissingCredential)
	}

	body, err := s.provider.Forecast(ctx)
	if err != nil {
		log.WithFields(log.Fields{"error": err}).Error("rain: forecast call failed")

		var statusErr *common.UpstreamStatusError
		if errors.As(err, &statusErr) {
			return nil, common.NewError(common.KindUpstream, statusErr.Error(), err)
		}
		return nil, common.NewError(common.KindTransportOrParse, msgRainFailed, err)
	}

	var fc ForecastPayload
	if err := json.Unmarshal(body, &fc); err != nil {
		return nil, common.NewError(common.KindTransportOrParse, msgRainFailed, err)
	}
	if err := validate.Struct(fc); err != nil {
		log.WithFields(log.Fields{"error": err}).Error("rain: unexpected forecast format")
		return nil, common.NewError(common.KindValidation, "invalid API response format", err)
	}

	points, err := RainOutlook(fc.List, s.location)
	if err != nil {
		log.WithFields(log.Fields{"error": err}).Error("rain: forecast normalization failed")
		return nil, err
	}
	return points, nil
}

func (s *Service) parseFailure(err error) error {
	log.WithFields(log.Fields{"error": err}).Error("weather: undecodable provider payload")
	return common.NewError(common.KindTransportOrParse, msgWeatherFailed, err)
}

func (s *Service) invalid(err error) error {
	log.WithFields(log.Fields{"error": err}).Error("weather: provider payload failed validation")
	return common.NewError(common.KindValidation, msgWeatherInvalid, err)
}
