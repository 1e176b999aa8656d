// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/vidly/internal/store"
)

var (
	// ErrValidationFailed is matched by every [ValidationError].
	ErrValidationFailed = errors.New("validation failed")

	ErrGenreNotFound    = errors.New("genre not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrMovieNotFound    = errors.New("movie not found")
	ErrUserNotFound     = errors.New("user not found")

	// ErrRentalNotFound is returned when no rental matches an ID or a
	// (customer, movie) pair.
	ErrRentalNotFound = errors.New("rental not found")

	// ErrRentalAlreadyProcessed is returned when a closed rental is settled
	// again.
	ErrRentalAlreadyProcessed = errors.New("rental already processed")

	ErrInvalidGenre    = errors.New("invalid genre")
	ErrInvalidCustomer = errors.New("invalid customer")
	ErrInvalidMovie    = errors.New("invalid movie")
	ErrMovieNotInStock = errors.New("movie not in stock")

	ErrUserAlreadyRegistered = errors.New("user already registered")
	ErrInvalidCredentials    = errors.New("invalid email or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrStoreFailure wraps unexpected persistence errors.
	ErrStoreFailure = errors.New("store failure")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ValidationError carries the first failed field check of a request.
// It matches both [ErrValidationFailed] and the underlying validator error.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidationFailed, e.Err}
}

func validationFailed(err error) error {
	return &ValidationError{Err: err}
}

// storeError translates a repository error. A missing record becomes
// notFound; anything else is reported as [ErrStoreFailure].
func storeError(err, notFound error) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFound
	}
	return fmt.Errorf("%w: %w", ErrStoreFailure, err)
}
