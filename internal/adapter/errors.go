// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Status errors, one per HTTP status the API answers with.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// Message errors, recognised from the plain-text body of an error response.
// They are joined with the status error.
var (
	ErrInvalidToken           = errors.New("invalid token")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrUserAlreadyRegistered  = errors.New("user already registered")
	ErrRentalNotFound         = errors.New("rental not found")
	ErrReturnAlreadyProcessed = errors.New("return already processed")
	ErrInvalidCustomer        = errors.New("invalid customer")
	ErrInvalidMovie           = errors.New("invalid movie")
	ErrMovieNotInStock        = errors.New("movie not in stock")
)
