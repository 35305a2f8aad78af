package http

import (
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/metrics"
	"github.com/MKhiriev/go-task-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// authLimiter throttles /auth requests per client IP. Nil disables it.
	authLimiter *rateLimiter

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	var authLimiter *rateLimiter
	if cfg.AuthRateLimit > 0 {
		authLimiter = newRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
	}

	return &Handler{
		services:       services,
		metrics:        m,
		authLimiter:    authLimiter,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
