// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/vidly/models"
	"github.com/google/uuid"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName            = "name"
	FieldPhone           = "phone"
	FieldTitle           = "title"
	FieldGenreID         = "genreId"
	FieldNumberInStock   = "numberInStock"
	FieldDailyRentalRate = "dailyRentalRate"
	FieldCustomerID      = "customerId"
	FieldMovieID         = "movieId"
	FieldEmail           = "email"
	FieldPassword        = "password"
)

// Inclusive bounds of the entity fields.
const (
	genreNameMin, genreNameMax       = 3, 30
	customerNameMin, customerNameMax = 5, 50
	phoneMin, phoneMax               = 5, 50
	titleMin, titleMax               = 5, 255
	stockMin, stockMax               = 0, 255
	rateMin, rateMax                 = 0, 255
	userNameMin, userNameMax         = 5, 50
	emailMin, emailMax               = 5, 255
	passwordMin, passwordMax         = 5, 255
)

// EntityValidator implements Validator for the request models of the API:
// Genre, Customer, MovieInput, RentalRequest, User and Credentials.
// Both value and pointer forms are accepted.
type EntityValidator struct {
}

// NewEntityValidator returns the validator used by the services.
func NewEntityValidator() Validator {
	return &EntityValidator{}
}

// Validate dispatches on the dynamic type of obj. Optional fields restrict
// validation to the named subset; by default every field is checked.
func (v *EntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Genre:
		return v.validateGenre(value, fields...)
	case *models.Genre:
		return v.validateGenre(*value, fields...)
	case models.Customer:
		return v.validateCustomer(value, fields...)
	case *models.Customer:
		return v.validateCustomer(*value, fields...)
	case models.MovieInput:
		return v.validateMovie(value, fields...)
	case *models.MovieInput:
		return v.validateMovie(*value, fields...)
	case models.RentalRequest:
		return v.validateRentalRequest(value, fields...)
	case *models.RentalRequest:
		return v.validateRentalRequest(*value, fields...)
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *EntityValidator) validateGenre(genre models.Genre, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !lengthBetween(genre.Name, genreNameMin, genreNameMax) {
				return ErrInvalidGenreName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntityValidator) validateCustomer(customer models.Customer, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPhone}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !lengthBetween(customer.Name, customerNameMin, customerNameMax) {
				return ErrInvalidCustomerName
			}
		case FieldPhone:
			if !lengthBetween(customer.Phone, phoneMin, phoneMax) {
				return ErrInvalidPhone
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntityValidator) validateMovie(movie models.MovieInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldGenreID, FieldNumberInStock, FieldDailyRentalRate}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if !lengthBetween(strings.TrimSpace(movie.Title), titleMin, titleMax) {
				return ErrInvalidTitle
			}
		case FieldGenreID:
			if !isID(movie.GenreID) {
				return ErrInvalidGenreID
			}
		case FieldNumberInStock:
			if movie.NumberInStock == nil {
				return ErrRequiredNumberInStock
			}
			if *movie.NumberInStock < stockMin || *movie.NumberInStock > stockMax {
				return ErrInvalidNumberInStock
			}
		case FieldDailyRentalRate:
			if movie.DailyRentalRate == nil {
				return ErrRequiredDailyRate
			}
			if *movie.DailyRentalRate < rateMin || *movie.DailyRentalRate > rateMax {
				return ErrInvalidDailyRate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateRentalRequest also serves returns: models.ReturnRequest is an
// alias of models.RentalRequest.
func (v *EntityValidator) validateRentalRequest(request models.RentalRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCustomerID, FieldMovieID}
	}

	for _, f := range fields {
		switch f {
		case FieldCustomerID:
			if request.CustomerID == "" {
				return ErrRequiredCustomerID
			}
			if !isID(request.CustomerID) {
				return ErrInvalidCustomerID
			}
		case FieldMovieID:
			if request.MovieID == "" {
				return ErrRequiredMovieID
			}
			if !isID(request.MovieID) {
				return ErrInvalidMovieID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntityValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !lengthBetween(user.Name, userNameMin, userNameMax) {
				return ErrInvalidUserName
			}
		case FieldEmail:
			if !isEmail(user.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if !lengthBetween(user.Password, passwordMin, passwordMax) {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntityValidator) validateCredentials(credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(credentials.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if !lengthBetween(credentials.Password, passwordMin, passwordMax) {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func lengthBetween(s string, lo, hi int) bool {
	n := utf8.RuneCountInString(s)
	return n >= lo && n <= hi
}

func isID(s string) bool {
	return uuid.Validate(s) == nil
}

// isEmail accepts a bare address only: "Jane <jane@vidly.io>" is rejected.
func isEmail(s string) bool {
	if !lengthBetween(s, emailMin, emailMax) {
		return false
	}

	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
