package http

import (
	"time"

	"github.com/MKhiriev/go-faved-comments/internal/config"
	"github.com/MKhiriev/go-faved-comments/internal/logger"
	"github.com/MKhiriev/go-faved-comments/internal/metrics"
	"github.com/MKhiriev/go-faved-comments/internal/service"
	"github.com/MKhiriev/go-faved-comments/internal/session"
)

const defaultStreamKeepAlive = 15 * time.Second

// SessionManager receives login and logout events from the UI shell.
type SessionManager interface {
	Set(credential session.Credential)
	Clear()
}

type Handler struct {
	services *service.Services
	sessions SessionManager
	metrics  *metrics.Metrics

	requestTimeout  time.Duration
	streamKeepAlive time.Duration

	logger *logger.Logger
}

// NewHandler returns the local API handler. m may be nil, in which case
// /metrics is not served.
func NewHandler(services *service.Services, sessions SessionManager, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = config.DefaultServerTimeout
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		sessions:        sessions,
		metrics:         m,
		requestTimeout:  requestTimeout,
		streamKeepAlive: defaultStreamKeepAlive,
		logger:          logger,
	}
}
