package transit

import (
	"context"
	"encoding/json"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/i474232898/home-dashboard/internal/common"
)

const (
	msgNotConfigured     = "Transit API not configured"
	msgMisconfigured     = "Transit API not configured correctly"
	msgTransitFetchError = "Failed to fetch transit status"
)

// Service backs the transit proxy endpoint.
type Service struct {
	provider Provider
}

// NewService creates a new Service.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// LineStatuses returns the provider's line array unmodified.
func (s *Service) LineStatuses(ctx context.Context) (json.RawMessage, error) {
	if !s.provider.Configured() {
		return nil, common.NewError(common.KindConfigurationMissing, msgNotConfigured, common.ErrMissingCredential)
	}

	body, err := s.provider.LineStatuses(ctx)
	if err != nil {
		var statusErr *common.UpstreamStatusError
		switch {
		case errors.As(err, &statusErr) && statusErr.RateLimited():
			log.WithFields(log.Fields{"status": statusErr.StatusCode}).Warn("transit: upstream rate limited")
			return nil, common.NewError(common.KindUpstreamRateLimited, msgMisconfigured, err)
		case errors.As(err, &statusErr):
			log.WithFields(log.Fields{
				"status": statusErr.StatusCode,
				"body":   statusErr.Body,
			}).Error("transit: upstream error")
			return nil, common.NewError(common.KindUpstream, statusErr.Error(), err).WithDetail()
		default:
			log.WithFields(log.Fields{"error": err}).Error("transit: request failed")
			return nil, common.NewError(common.KindTransportOrParse, msgTransitFetchError, err).WithDetail()
		}
	}

	var lines json.RawMessage
	if err := json.Unmarshal(body, &lines); err != nil {
		log.WithFields(log.Fields{"error": err}).Error("transit: undecodable payload")
		return nil, common.NewError(common.KindTransportOrParse, msgTransitFetchError, err).WithDetail()
	}
	return lines, nil
}
