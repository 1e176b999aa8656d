// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vidly/internal/config"
	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/internal/store"
)

type appInfoService struct {
	appVersion    string
	healthChecker store.HealthChecker

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, healthChecker store.HealthChecker, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:    cfg.Version,
		healthChecker: healthChecker,
		logger:        logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health pings the database.
func (s *appInfoService) Health(ctx context.Context) error {
	if err := s.healthChecker.Ping(ctx); err != nil {
		s.logger.FromContext(ctx).Err(err).Msg("health check failed")
		return fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}

	return nil
}
