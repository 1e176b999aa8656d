// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/vidly/internal/config"
	myGRPC "github.com/MKhiriev/vidly/internal/handler/grpc"
	"github.com/MKhiriev/vidly/internal/logger"

	"google.golang.org/grpc"
)

const healthCheckInterval = 10 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		server:  server,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

// RunServer serves until Shutdown is called. The health status is refreshed
// while ctx is alive.
func (g *grpcServer) RunServer(ctx context.Context) error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC server listen on %s: %w", g.address, err)
	}

	return g.serve(ctx, lis)
}

func (g *grpcServer) serve(ctx context.Context, lis net.Listener) error {
	go g.handler.MonitorHealth(ctx, healthCheckInterval)

	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// Shutdown waits for in-flight RPCs until ctx is done, then closes the
// remaining connections.
func (g *grpcServer) Shutdown(ctx context.Context) {
	g.logger.Info().Msg("GRPC server Shutdown")

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.server.Stop()
	}
}
