package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/proxy-desk-bot/internal/adapter"
	"github.com/MKhiriev/proxy-desk-bot/internal/config"
	"github.com/MKhiriev/proxy-desk-bot/internal/crypto"
	"github.com/MKhiriev/proxy-desk-bot/internal/handler"
	"github.com/MKhiriev/proxy-desk-bot/internal/handler/telegram"
	"github.com/MKhiriev/proxy-desk-bot/internal/logger"
	"github.com/MKhiriev/proxy-desk-bot/internal/metrics"
	"github.com/MKhiriev/proxy-desk-bot/internal/server"
	"github.com/MKhiriev/proxy-desk-bot/internal/service"
	"github.com/MKhiriev/proxy-desk-bot/internal/store"
	"github.com/MKhiriev/proxy-desk-bot/internal/workers"
	"github.com/MKhiriev/proxy-desk-bot/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("proxy-desk-bot")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Int("queue_size", cfg.Bot.QueueSize).
		Dur("prompt_ttl", cfg.Bot.PromptTTL).
		Str("provider", cfg.Provider.BaseURL).
		Str("auth_mode", cfg.Provider.AuthMode).
		Str("ops_address", cfg.Server.HTTPAddress).
		Msg("received configs")

	cipher, err := crypto.NewCipher(cfg.App.CipherSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating credential cipher")
	}

	db, err := store.NewConnectDB(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}
	repositories := store.NewRepositories(db, log)

	m := metrics.New()
	m.SetBuildInfo(buildInfo.BuildVersion(), buildInfo.BuildCommit())

	registry, err := adapter.LoadRegistry(cfg.Provider.OperationsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading provider operations")
	}

	clients, err := adapter.NewClientFactory(cfg.Provider, registry, log, adapter.WithObserver(m))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating provider client")
	}

	services := service.NewServices(repositories, cipher, clients, *cfg, log, service.NewObservedDispatcher(m))

	bot, err := telegram.NewBotAPI(cfg.Bot)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating telegram client")
	}

	pool := workers.NewKeyedPool(cfg.Bot.QueueSize, log)

	handlers, err := handler.NewHandlers(bot, services, pool, db, buildInfo, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var ops http.Handler
	if handlers.HTTP != nil {
		ops = handlers.HTTP.Init()
	}

	srv, err := server.NewServer([]workers.Worker{pool, handlers.Telegram}, ops, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
