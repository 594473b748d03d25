package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-cyr-records/internal/adapter"
	"github.com/MKhiriev/go-cyr-records/internal/client"
	"github.com/MKhiriev/go-cyr-records/internal/config"
	"github.com/MKhiriev/go-cyr-records/internal/logger"
	"github.com/MKhiriev/go-cyr-records/internal/service"
	"github.com/MKhiriev/go-cyr-records/internal/session"
	"github.com/MKhiriev/go-cyr-records/internal/store"
	"github.com/MKhiriev/go-cyr-records/internal/telemetry"
	"github.com/MKhiriev/go-cyr-records/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		client.RenderError(os.Stderr, err)
		return 2
	}

	log := logger.NewClientLogger("records-client", cfg.App.LogFile)
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		client.RenderError(os.Stderr, err)
		return 2
	}

	shutdownTracing, err := telemetry.Setup(ctx, "records-client", cfg.App.OtelEndpoint)
	if err != nil {
		log.Warn().Err(err).Msg("tracing disabled")
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn().Err(err).Msg("flush traces")
		}
	}()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("create local storage")
		client.RenderError(os.Stderr, err)
		return 1
	}
	defer storages.Close()

	sess, err := session.NewPersistent(ctx, storages.SessionRepository, log)
	if err != nil {
		log.Error().Err(err).Msg("restore session")
		client.RenderError(os.Stderr, err)
		return 1
	}

	recordStore, err := adapter.NewHTTPRecordStore(cfg.Adapter, sess, log)
	if err != nil {
		log.Error().Err(err).Msg("create record store adapter")
		client.RenderError(os.Stderr, err)
		return 1
	}

	services := service.NewServices(recordStore, sess, storages.FlashRepository, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	app := client.NewApp(services, cfg.App.AuthCollection, buildInfo, os.Stdout, log)
	if err = app.Run(ctx, cfg.Command); err != nil {
		client.RenderError(os.Stderr, err)
		return 1
	}
	return 0
}
