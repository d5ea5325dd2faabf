package handler

import (
	"github.com/MKhiriev/go-feedback/internal/config"
	"github.com/MKhiriev/go-feedback/internal/handler/http"
	"github.com/MKhiriev/go-feedback/internal/logger"
	"github.com/MKhiriev/go-feedback/internal/metrics"
	"github.com/MKhiriev/go-feedback/internal/service"
	"github.com/MKhiriev/go-feedback/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions *session.Sessions, pinger http.Pinger, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, sessions, pinger, m, cfg.RequestTimeout, logger),
	}, nil
}
