// Package grpc exposes the standard grpc.health.v1 service of the vidly
// server. Serving status follows the database health reported by the
// application info service.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "vidly"

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and the health server whose
// status it keeps up to date. A handler instance is created once at startup
// and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Both statuses start as NOT_SERVING until
// the first check succeeds.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// CheckHealth pings the database through the application info service and
// publishes the resulting status.
func (h *Handler) CheckHealth(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.services.AppInfoService.Health(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("gRPC health check failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(status)
	return status
}

// MonitorHealth runs CheckHealth every interval until ctx is done. On exit
// every status is switched to NOT_SERVING so that watchers notice the
// shutdown.
func (h *Handler) MonitorHealth(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.CheckHealth(ctx)
	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			h.CheckHealth(ctx)
		}
	}
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
