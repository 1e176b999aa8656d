// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/internal/store"
	"github.com/MKhiriev/vidly/models"
)

// returnService settles rentals against the rental and movie repositories.
// It holds no state between calls.
type returnService struct {
	rentalRepository store.RentalRepository
	movieRepository  store.MovieRepository

	// now is the settlement clock.
	now func() time.Time

	logger *logger.Logger
}

func NewReturnService(rentalRepository store.RentalRepository, movieRepository store.MovieRepository, logger *logger.Logger) ReturnService {
	return &returnService{
		rentalRepository: rentalRepository,
		movieRepository:  movieRepository,
		now:              time.Now,
		logger:           logger,
	}
}

// SettleReturn closes the rental of request.CustomerID and request.MovieID.
//
// The rental and the movie stock are written one after another without a
// shared transaction. The rental write only matches an open rental, so two
// concurrent returns of the same pair settle it once.
//
// Returns the closed rental or:
//   - ErrRentalNotFound if the pair was never rented.
//   - ErrRentalAlreadyProcessed if the rental is already closed.
//   - ErrStoreFailure if a repository call fails.
func (s *returnService) SettleReturn(ctx context.Context, request models.ReturnRequest) (models.Rental, error) {
	log := s.logger.FromContext(ctx)

	rental, err := s.rentalRepository.FindByCustomerAndMovie(ctx, request.CustomerID, request.MovieID)
	if err != nil {
		return models.Rental{}, storeError(err, ErrRentalNotFound)
	}

	if !rental.IsOpen() {
		log.Debug().
			Str("rental_id", rental.ID).
			Time("date_returned", *rental.DateReturned).
			Msg("rental is already returned")
		return models.Rental{}, ErrRentalAlreadyProcessed
	}

	dateReturned := s.now().UTC()
	fee := rentalFee(numberOfDays(rental.DateOut, dateReturned), rental.Movie.DailyRentalRate)
	rental.DateReturned = &dateReturned
	rental.RentalFee = &fee

	if err = s.rentalRepository.SaveReturn(ctx, rental); err != nil {
		if errors.Is(err, store.ErrRentalAlreadyReturned) {
			return models.Rental{}, ErrRentalAlreadyProcessed
		}
		return models.Rental{}, storeError(err, ErrRentalNotFound)
	}

	if err = s.movieRepository.IncrementStock(ctx, rental.Movie.ID, 1); err != nil {
		log.Err(err).
			Str("rental_id", rental.ID).
			Str("movie_id", rental.Movie.ID).
			Msg("rental is returned but movie stock was not replenished")
		return models.Rental{}, fmt.Errorf("%w: stock of movie %s: %v", ErrStoreFailure, rental.Movie.ID, err)
	}

	log.Info().
		Str("rental_id", rental.ID).
		Float64("rental_fee", fee).
		Msg("rental returned")

	return rental, nil
}
