// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/vidly/internal/config"
	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/internal/store"
)

type Services struct {
	GenreService    GenreService
	CustomerService CustomerService
	MovieService    MovieService
	RentalService   RentalService
	ReturnService   ReturnService
	UserService     UserService
	AuthService     AuthService
	AppInfoService  AppInfoService
}

// NewServices builds every service on top of storages. Services that accept
// client input are wrapped with their validation service.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages.HealthChecker, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthService(storages.UserRepository, cfg.App, logger)

	return &Services{
		GenreService: NewGenreValidationService().
			Wrap(NewGenreService(storages.GenreRepository, logger)),
		CustomerService: NewCustomerValidationService().
			Wrap(NewCustomerService(storages.CustomerRepository, logger)),
		MovieService: NewMovieValidationService().
			Wrap(NewMovieService(storages.MovieRepository, storages.GenreRepository, logger)),
		RentalService: NewRentalValidationService().
			Wrap(NewRentalService(storages, logger)),
		ReturnService: NewReturnValidationService().
			Wrap(NewReturnService(storages.RentalRepository, storages.MovieRepository, logger)),
		UserService: NewUserValidationService().
			Wrap(NewUserService(storages.UserRepository, authService, cfg.App, logger)),
		AuthService:    NewAuthValidationService().Wrap(authService),
		AppInfoService: appInfoService,
	}, nil
}
