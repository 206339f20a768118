package service

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/rakhadjo/internhub/pkg/config"
)

// HealthService performs the single best-effort startup ping against the
// configured local health endpoint. The outcome is logged and discarded; it
// never influences any other behavior.
type HealthService struct {
	client *http.Client
	url    string
	logger *zap.Logger
}

// NewHealthService builds the pinger with the configured timeout.
func NewHealthService(cfg config.HealthConfig, logger *zap.Logger) *HealthService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthService{
		client: &http.Client{Timeout: timeout},
		url:    cfg.URL,
		logger: logger,
	}
}

// Ping issues one GET against the health endpoint and reports reachability.
// Failures are swallowed: no retry, no surfaced error.
func (s *HealthService) Ping(ctx context.Context) bool {
	if s.url == "" {
		return false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		s.logger.Debug("health ping skipped", zap.Error(err))
		return false
	}
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Debug("health endpoint unreachable", zap.Error(err))
		return false
	}
	defer resp.Body.Close()
	s.logger.Debug("health endpoint responded", zap.Int("status", resp.StatusCode))
	return resp.StatusCode < http.StatusInternalServerError
}
