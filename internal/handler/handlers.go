package handler

import (
	"github.com/MKhiriev/proxy-desk-bot/internal/config"
	"github.com/MKhiriev/proxy-desk-bot/internal/handler/http"
	"github.com/MKhiriev/proxy-desk-bot/internal/handler/telegram"
	"github.com/MKhiriev/proxy-desk-bot/internal/logger"
	"github.com/MKhiriev/proxy-desk-bot/internal/metrics"
	"github.com/MKhiriev/proxy-desk-bot/internal/service"
	"github.com/MKhiriev/proxy-desk-bot/internal/workers"
	"github.com/MKhiriev/proxy-desk-bot/models"
)

type Handlers struct {
	Telegram *telegram.Handler
	HTTP     *http.Handler
}

// NewHandlers creates the Telegram handler and, when an ops address is
// configured, the ops HTTP handler.
func NewHandlers(
	bot telegram.BotAPI,
	services *service.Services,
	pool *workers.KeyedPool,
	db http.Pinger,
	buildInfo models.AppBuildInfo,
	m *metrics.Metrics,
	cfg config.Server,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if bot == nil || services == nil || pool == nil {
		return nil, errNoHandlersAreCreated
	}

	handlers := &Handlers{
		Telegram: telegram.NewHandler(bot, services.Dispatcher, pool, logger, telegram.WithSkipObserver(m)),
	}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(db, buildInfo, m.Handler(), logger)
	}

	return handlers, nil
}
