// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/internal/store"
	"github.com/MKhiriev/vidly/internal/utils"
	"github.com/MKhiriev/vidly/models"
)

type rentalService struct {
	rentalRepository   store.RentalRepository
	customerRepository store.CustomerRepository
	movieRepository    store.MovieRepository
	ids                *utils.UUIDGenerator
	now                func() time.Time

	logger *logger.Logger
}

func NewRentalService(storages *store.Storages, logger *logger.Logger) RentalService {
	return &rentalService{
		rentalRepository:   storages.RentalRepository,
		customerRepository: storages.CustomerRepository,
		movieRepository:    storages.MovieRepository,
		ids:                utils.NewUUIDGenerator(),
		now:                time.Now,
		logger:             logger,
	}
}

func (s *rentalService) List(ctx context.Context) ([]models.Rental, error) {
	rentals, err := s.rentalRepository.List(ctx)
	if err != nil {
		return nil, storeError(err, ErrRentalNotFound)
	}

	return rentals, nil
}

func (s *rentalService) Get(ctx context.Context, id string) (models.Rental, error) {
	rental, err := s.rentalRepository.GetByID(ctx, id)
	if err != nil {
		return models.Rental{}, storeError(err, ErrRentalNotFound)
	}

	return rental, nil
}

// Create checks out a movie for a customer. Both are copied into the rental
// as snapshots and the movie stock is decremented in the same transaction.
func (s *rentalService) Create(ctx context.Context, request models.RentalRequest) (models.Rental, error) {
	log := s.logger.FromContext(ctx)

	customer, err := s.customerRepository.GetByID(ctx, request.CustomerID)
	if err != nil {
		return models.Rental{}, storeError(err, ErrInvalidCustomer)
	}

	movie, err := s.movieRepository.GetByID(ctx, request.MovieID)
	if err != nil {
		return models.Rental{}, storeError(err, ErrInvalidMovie)
	}

	if movie.NumberInStock == 0 {
		return models.Rental{}, ErrMovieNotInStock
	}

	rental := models.Rental{
		ID:       s.ids.Generate(),
		Customer: customer.Snapshot(),
		Movie:    movie.Snapshot(),
		DateOut:  s.now().UTC(),
	}

	created, err := s.rentalRepository.Create(ctx, rental)
	if errors.Is(err, store.ErrMovieOutOfStock) {
		return models.Rental{}, ErrMovieNotInStock
	}
	if err != nil {
		return models.Rental{}, storeError(err, ErrInvalidMovie)
	}

	log.Info().
		Str("rental_id", created.ID).
		Str("customer_id", customer.ID).
		Str("movie_id", movie.ID).
		Msg("rental created")

	return created, nil
}

func (s *rentalService) ListOverdue(ctx context.Context, olderThan time.Duration) ([]models.OverdueRental, error) {
	now := s.now().UTC()

	rentals, err := s.rentalRepository.ListOverdue(ctx, now.Add(-olderThan))
	if err != nil {
		return nil, storeError(err, ErrRentalNotFound)
	}

	overdue := make([]models.OverdueRental, 0, len(rentals))
	for _, rental := range rentals {
		days := numberOfDays(rental.DateOut, now)
		overdue = append(overdue, models.OverdueRental{
			Rental:     rental,
			DaysOut:    days,
			AccruedFee: rentalFee(days, rental.Movie.DailyRentalRate),
		})
	}

	return overdue, nil
}
