// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/vidly/internal/limiter"
	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/internal/service"
)

type Handler struct {
	services *service.Services

	requestLimiter limiter.RequestLimiter
	loginLimiter   limiter.LoginLimiter
	requestTimeout time.Duration

	logger *logger.Logger
}

// Option configures optional parts of the Handler.
type Option func(*Handler)

// WithRequestLimiter throttles every route per client IP.
func WithRequestLimiter(l limiter.RequestLimiter) Option {
	return func(h *Handler) {
		h.requestLimiter = l
	}
}

// WithLoginLimiter throttles POST /api/auth per client IP.
func WithLoginLimiter(l limiter.LoginLimiter) Option {
	return func(h *Handler) {
		h.loginLimiter = l
	}
}

// WithRequestTimeout cancels the request context after d.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = d
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
