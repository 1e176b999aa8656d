// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/vidly/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type GenreService interface {
	List(ctx context.Context) ([]models.Genre, error)
	Get(ctx context.Context, id string) (models.Genre, error)
	Create(ctx context.Context, genre models.Genre) (models.Genre, error)
	Update(ctx context.Context, genre models.Genre) (models.Genre, error)
	Delete(ctx context.Context, id string) (models.Genre, error)
}

type CustomerService interface {
	List(ctx context.Context) ([]models.Customer, error)
	Get(ctx context.Context, id string) (models.Customer, error)
	Create(ctx context.Context, customer models.Customer) (models.Customer, error)
	Update(ctx context.Context, customer models.Customer) (models.Customer, error)
	Delete(ctx context.Context, id string) (models.Customer, error)
}

type MovieService interface {
	List(ctx context.Context) ([]models.Movie, error)
	Get(ctx context.Context, id string) (models.Movie, error)
	Create(ctx context.Context, input models.MovieInput) (models.Movie, error)
	Update(ctx context.Context, id string, input models.MovieInput) (models.Movie, error)
	Delete(ctx context.Context, id string) (models.Movie, error)
}

type RentalService interface {
	List(ctx context.Context) ([]models.Rental, error)
	Get(ctx context.Context, id string) (models.Rental, error)
	Create(ctx context.Context, request models.RentalRequest) (models.Rental, error)

	// ListOverdue reports open rentals checked out more than olderThan ago
	// together with the fee accrued so far.
	ListOverdue(ctx context.Context, olderThan time.Duration) ([]models.OverdueRental, error)
}

// ReturnService settles rentals.
type ReturnService interface {
	// SettleReturn closes the open rental of the (customer, movie) pair,
	// computes its fee and puts the movie back in stock.
	SettleReturn(ctx context.Context, request models.ReturnRequest) (models.Rental, error)
}

type UserService interface {
	// Register stores a new user and issues a token for it.
	Register(ctx context.Context, user models.User) (models.User, models.Token, error)
	Me(ctx context.Context, userID string) (models.User, error)
}

type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) error
}
