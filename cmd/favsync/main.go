package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-faved-comments/internal/adapter"
	"github.com/MKhiriev/go-faved-comments/internal/config"
	"github.com/MKhiriev/go-faved-comments/internal/handler/http"
	"github.com/MKhiriev/go-faved-comments/internal/logger"
	"github.com/MKhiriev/go-faved-comments/internal/metrics"
	"github.com/MKhiriev/go-faved-comments/internal/server"
	"github.com/MKhiriev/go-faved-comments/internal/service"
	"github.com/MKhiriev/go-faved-comments/internal/session"
	"github.com/MKhiriev/go-faved-comments/internal/store"
	"github.com/MKhiriev/go-faved-comments/internal/workers"
	"github.com/MKhiriev/go-faved-comments/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("favsync").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLoggerWithOptions("favsync", logger.Options{
		Level:    cfg.App.LogLevel,
		FilePath: cfg.App.LogFile,
	})
	log.Debug().Str("remote", cfg.Adapter.HTTPAddress).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	m := metrics.New()
	sessions := session.NewHolder(session.Credential(cfg.Session.Token))

	favoritesAdapter, err := adapter.NewHTTPFavoritesAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating favorites adapter")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, favoritesAdapter, sessions, *cfg, build, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := http.NewHandler(services, sessions, m, cfg.Server, log)
	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewFavoritesWorkers(services, cfg.Workers.RefreshInterval, log)
	all := workers.NewWorkers(log, background, workers.WorkerFunc(srv.RunServer))

	if err = all.Run(ctx); err != nil {
		log.Error().Err(err).Msg("favsync stopped with error")
		return
	}
	log.Info().Msg("favsync stopped")
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
