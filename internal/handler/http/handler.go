package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-feedback/internal/logger"
	"github.com/MKhiriev/go-feedback/internal/metrics"
	"github.com/MKhiriev/go-feedback/internal/service"
	"github.com/MKhiriev/go-feedback/internal/session"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	sessions *session.Sessions
	pinger   Pinger
	metrics  *metrics.Metrics

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Sessions, pinger Pinger, m *metrics.Metrics, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		sessions:       sessions,
		pinger:         pinger,
		metrics:        m,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
