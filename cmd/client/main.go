package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/vidly/internal/adapter"
	"github.com/MKhiriev/vidly/internal/config"
	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("vidly-client", os.Stderr)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli := newCLI(serverAdapter, os.Stdout, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err = cli.run(ctx, cfg.Args); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
