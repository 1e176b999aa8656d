package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vidly/internal/config"
	"github.com/MKhiriev/vidly/internal/handler"
	myHTTP "github.com/MKhiriev/vidly/internal/handler/http"
	"github.com/MKhiriev/vidly/internal/limiter"
	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/internal/server"
	"github.com/MKhiriev/vidly/internal/service"
	"github.com/MKhiriev/vidly/internal/store"
	"github.com/MKhiriev/vidly/internal/workers"
	"github.com/MKhiriev/vidly/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("vidly-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Bool("limiter_enabled", cfg.Limiter.Enabled).
		Str("overdue_schedule", cfg.Workers.OverdueSchedule).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	httpOpts := []myHTTP.Option{myHTTP.WithRequestTimeout(cfg.Server.RequestTimeout)}
	var background []workers.Worker

	if cfg.Limiter.Enabled {
		requestLimiter := limiter.NewIPRateLimiter(cfg.Limiter.RPS, cfg.Limiter.Burst)
		httpOpts = append(httpOpts, myHTTP.WithRequestLimiter(requestLimiter))
		background = append(background, requestLimiter)
	}

	if cfg.Limiter.LoginLimit > 0 {
		loginLimiter, closeLimiter, err := newLoginLimiter(ctx, cfg.Limiter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating login limiter")
		}
		defer closeLimiter()
		httpOpts = append(httpOpts, myHTTP.WithLoginLimiter(loginLimiter))
	}

	overdueWorker, err := workers.NewOverdueWorker(services.RentalService, cfg.Workers.OverdueSchedule, cfg.Workers.OverdueAfter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating overdue worker")
	}
	background = append(background, overdueWorker)

	handlers, err := handler.NewHandlers(services, cfg.Server, log, httpOpts...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(background...), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server run error")
	}
}

// newLoginLimiter keeps login windows in Redis when an address is
// configured, in memory otherwise.
func newLoginLimiter(ctx context.Context, cfg config.Limiter, log *logger.Logger) (limiter.LoginLimiter, func(), error) {
	if cfg.RedisAddress == "" {
		log.Info().Int("limit", cfg.LoginLimit).Dur("window", cfg.LoginWindow).Msg("in-memory login limiter enabled")
		return limiter.NewMemoryLoginLimiter(cfg.LoginLimit, cfg.LoginWindow), func() {}, nil
	}

	client, err := limiter.NewRedisClient(ctx, cfg.RedisAddress, cfg.RedisPassword)
	if err != nil {
		return nil, nil, err
	}

	log.Info().Str("redis_address", cfg.RedisAddress).Int("limit", cfg.LoginLimit).Msg("redis login limiter enabled")
	return limiter.NewRedisLoginLimiter(client, cfg.LoginLimit, cfg.LoginWindow), func() { client.Close() }, nil
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
