// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidGenreName      = errors.New(`"name" length must be between 3 and 30 characters`)
	ErrInvalidCustomerName   = errors.New(`"name" length must be between 5 and 50 characters`)
	ErrInvalidPhone          = errors.New(`"phone" length must be between 5 and 50 characters`)
	ErrInvalidTitle          = errors.New(`"title" length must be between 5 and 255 characters`)
	ErrInvalidGenreID        = errors.New(`"genreId" must be a valid id`)
	ErrInvalidNumberInStock  = errors.New(`"numberInStock" must be a number between 0 and 255`)
	ErrInvalidDailyRate      = errors.New(`"dailyRentalRate" must be a number between 0 and 255`)
	ErrInvalidCustomerID     = errors.New(`"customerId" must be a valid id`)
	ErrInvalidMovieID        = errors.New(`"movieId" must be a valid id`)
	ErrInvalidUserName       = errors.New(`"name" length must be between 5 and 50 characters`)
	ErrInvalidEmail          = errors.New(`"email" must be a valid email between 5 and 255 characters`)
	ErrInvalidPassword       = errors.New(`"password" length must be between 5 and 255 characters`)
	ErrRequiredCustomerID    = errors.New(`"customerId" is required`)
	ErrRequiredMovieID       = errors.New(`"movieId" is required`)
	ErrRequiredNumberInStock = errors.New(`"numberInStock" is required`)
	ErrRequiredDailyRate     = errors.New(`"dailyRentalRate" is required`)
)
