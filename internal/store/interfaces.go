// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements PostgreSQL persistence for genres, customers,
// movies, rentals and users.
//
// Repositories are consumed through the interfaces below so that services
// can be tested with mocks and never hold a global database handle.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/vidly/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

type GenreRepository interface {
	List(ctx context.Context) ([]models.Genre, error)
	GetByID(ctx context.Context, id string) (models.Genre, error)
	Create(ctx context.Context, genre models.Genre) (models.Genre, error)
	Update(ctx context.Context, genre models.Genre) (models.Genre, error)
	Delete(ctx context.Context, id string) (models.Genre, error)
}

type CustomerRepository interface {
	List(ctx context.Context) ([]models.Customer, error)
	GetByID(ctx context.Context, id string) (models.Customer, error)
	Create(ctx context.Context, customer models.Customer) (models.Customer, error)
	Update(ctx context.Context, customer models.Customer) (models.Customer, error)
	Delete(ctx context.Context, id string) (models.Customer, error)
}

type MovieRepository interface {
	List(ctx context.Context) ([]models.Movie, error)
	GetByID(ctx context.Context, id string) (models.Movie, error)
	Create(ctx context.Context, movie models.Movie) (models.Movie, error)
	Update(ctx context.Context, movie models.Movie) (models.Movie, error)
	Delete(ctx context.Context, id string) (models.Movie, error)

	// IncrementStock adds delta to the stock of the movie.
	IncrementStock(ctx context.Context, movieID string, delta int) error
}

type RentalRepository interface {
	List(ctx context.Context) ([]models.Rental, error)
	GetByID(ctx context.Context, id string) (models.Rental, error)

	// Create inserts the rental and takes one copy of the movie out of stock
	// in a single transaction.
	Create(ctx context.Context, rental models.Rental) (models.Rental, error)

	// FindByCustomerAndMovie returns the most recent rental of the pair,
	// preferring an open one.
	FindByCustomerAndMovie(ctx context.Context, customerID, movieID string) (models.Rental, error)

	// SaveReturn stores dateReturned and rentalFee of a rental that is still
	// open and returns ErrRentalAlreadyReturned otherwise.
	SaveReturn(ctx context.Context, rental models.Rental) error

	// ListOverdue returns open rentals checked out before the given time.
	ListOverdue(ctx context.Context, dateOutBefore time.Time) ([]models.Rental, error)
}

type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
}

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
