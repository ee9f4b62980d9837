package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/proxy-desk-bot/internal/logger"
	"github.com/MKhiriev/proxy-desk-bot/models"
)

// Pinger reports whether the credential database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	db        Pinger
	buildInfo models.AppBuildInfo
	metrics   http.Handler

	logger *logger.Logger
}

// NewHandler creates the ops handler. A nil metrics handler leaves
// /metrics unrouted.
func NewHandler(db Pinger, buildInfo models.AppBuildInfo, metrics http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Msg("ops http handler created")
	return &Handler{
		db:        db,
		buildInfo: buildInfo,
		metrics:   metrics,
		logger:    logger,
	}
}
