// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for the vidly REST API.
//
// The primary abstraction is [ServerAdapter], which decouples the command-line
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// response messages by mapHTTPError so that callers can use [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrReturnAlreadyProcessed] for a repeated
// return).
package adapter

import (
	"context"

	"github.com/MKhiriev/vidly/models"
)

// ServerAdapter defines communication with the vidly server. Implementations
// are responsible for serialisation, the auth token header and mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the token attached to all subsequent authenticated
	// requests.
	SetToken(token string)

	// Token returns the stored token, or an empty string if none has been set.
	Token() string

	// Register creates a user account. On success the issued token is stored
	// via SetToken.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login exchanges credentials for a token, stores it via SetToken and
	// returns it.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	// ListGenres returns all genres sorted by name.
	ListGenres(ctx context.Context) ([]models.Genre, error)

	// ListMovies returns all movies sorted by title.
	ListMovies(ctx context.Context) ([]models.Movie, error)

	// CreateRental checks a movie out for a customer.
	CreateRental(ctx context.Context, request models.RentalRequest) (models.Rental, error)

	// ReturnRental settles the open rental of the (customer, movie) pair and
	// returns it with dateReturned and rentalFee set.
	ReturnRental(ctx context.Context, request models.ReturnRequest) (models.Rental, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
