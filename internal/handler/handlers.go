// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/vidly/internal/config"
	"github.com/MKhiriev/vidly/internal/handler/grpc"
	"github.com/MKhiriev/vidly/internal/handler/http"
	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a transport handler for every configured address.
// httpOpts are applied to the HTTP handler only.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger, httpOpts ...http.Option) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger, httpOpts...)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
