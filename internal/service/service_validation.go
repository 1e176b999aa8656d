// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/vidly/internal/utils"
	"github.com/MKhiriev/vidly/internal/validators"
	"github.com/MKhiriev/vidly/models"
)

// The validation services check request bodies and path IDs before the inner
// service is called. A malformed path ID is reported as the entity's
// not-found error, a bad body as a [ValidationError].

type GenreValidationService struct {
	GenreService
	validator validators.Validator
}

func NewGenreValidationService() Wrapper[GenreService] {
	return &GenreValidationService{validator: validators.NewEntityValidator()}
}

func (v *GenreValidationService) Get(ctx context.Context, id string) (models.Genre, error) {
	if !utils.IsValidUUID(id) {
		return models.Genre{}, ErrGenreNotFound
	}
	return v.GenreService.Get(ctx, id)
}

func (v *GenreValidationService) Create(ctx context.Context, genre models.Genre) (models.Genre, error) {
	if err := v.validator.Validate(ctx, genre); err != nil {
		return models.Genre{}, validationFailed(err)
	}
	return v.GenreService.Create(ctx, genre)
}

func (v *GenreValidationService) Update(ctx context.Context, genre models.Genre) (models.Genre, error) {
	if !utils.IsValidUUID(genre.ID) {
		return models.Genre{}, ErrGenreNotFound
	}
	if err := v.validator.Validate(ctx, genre); err != nil {
		return models.Genre{}, validationFailed(err)
	}
	return v.GenreService.Update(ctx, genre)
}

func (v *GenreValidationService) Delete(ctx context.Context, id string) (models.Genre, error) {
	if !utils.IsValidUUID(id) {
		return models.Genre{}, ErrGenreNotFound
	}
	return v.GenreService.Delete(ctx, id)
}

func (v *GenreValidationService) Wrap(inner GenreService) GenreService {
	v.GenreService = inner
	return v
}

type CustomerValidationService struct {
	CustomerService
	validator validators.Validator
}

func NewCustomerValidationService() Wrapper[CustomerService] {
	return &CustomerValidationService{validator: validators.NewEntityValidator()}
}

func (v *CustomerValidationService) Get(ctx context.Context, id string) (models.Customer, error) {
	if !utils.IsValidUUID(id) {
		return models.Customer{}, ErrCustomerNotFound
	}
	return v.CustomerService.Get(ctx, id)
}

func (v *CustomerValidationService) Create(ctx context.Context, customer models.Customer) (models.Customer, error) {
	if err := v.validator.Validate(ctx, customer); err != nil {
		return models.Customer{}, validationFailed(err)
	}
	return v.CustomerService.Create(ctx, customer)
}

func (v *CustomerValidationService) Update(ctx context.Context, customer models.Customer) (models.Customer, error) {
	if !utils.IsValidUUID(customer.ID) {
		return models.Customer{}, ErrCustomerNotFound
	}
	if err := v.validator.Validate(ctx, customer); err != nil {
		return models.Customer{}, validationFailed(err)
	}
	return v.CustomerService.Update(ctx, customer)
}

func (v *CustomerValidationService) Delete(ctx context.Context, id string) (models.Customer, error) {
	if !utils.IsValidUUID(id) {
		return models.Customer{}, ErrCustomerNotFound
	}
	return v.CustomerService.Delete(ctx, id)
}

func (v *CustomerValidationService) Wrap(inner CustomerService) CustomerService {
	v.CustomerService = inner
	return v
}

type MovieValidationService struct {
	MovieService
	validator validators.Validator
}

func NewMovieValidationService() Wrapper[MovieService] {
	return &MovieValidationService{validator: validators.NewEntityValidator()}
}

func (v *MovieValidationService) Get(ctx context.Context, id string) (models.Movie, error) {
	if !utils.IsValidUUID(id) {
		return models.Movie{}, ErrMovieNotFound
	}
	return v.MovieService.Get(ctx, id)
}

func (v *MovieValidationService) Create(ctx context.Context, input models.MovieInput) (models.Movie, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Movie{}, validationFailed(err)
	}
	return v.MovieService.Create(ctx, input)
}

func (v *MovieValidationService) Update(ctx context.Context, id string, input models.MovieInput) (models.Movie, error) {
	if !utils.IsValidUUID(id) {
		return models.Movie{}, ErrMovieNotFound
	}
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Movie{}, validationFailed(err)
	}
	return v.MovieService.Update(ctx, id, input)
}

func (v *MovieValidationService) Delete(ctx context.Context, id string) (models.Movie, error) {
	if !utils.IsValidUUID(id) {
		return models.Movie{}, ErrMovieNotFound
	}
	return v.MovieService.Delete(ctx, id)
}

func (v *MovieValidationService) Wrap(inner MovieService) MovieService {
	v.MovieService = inner
	return v
}

type RentalValidationService struct {
	RentalService
	validator validators.Validator
}

func NewRentalValidationService() Wrapper[RentalService] {
	return &RentalValidationService{validator: validators.NewEntityValidator()}
}

func (v *RentalValidationService) Get(ctx context.Context, id string) (models.Rental, error) {
	if !utils.IsValidUUID(id) {
		return models.Rental{}, ErrRentalNotFound
	}
	return v.RentalService.Get(ctx, id)
}

func (v *RentalValidationService) Create(ctx context.Context, request models.RentalRequest) (models.Rental, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Rental{}, validationFailed(err)
	}
	return v.RentalService.Create(ctx, request)
}

func (v *RentalValidationService) Wrap(inner RentalService) RentalService {
	v.RentalService = inner
	return v
}

// ReturnValidationService rejects returns with a missing or malformed
// customerId or movieId before any repository is touched.
type ReturnValidationService struct {
	inner     ReturnService
	validator validators.Validator
}

func NewReturnValidationService() Wrapper[ReturnService] {
	return &ReturnValidationService{validator: validators.NewEntityValidator()}
}

func (v *ReturnValidationService) SettleReturn(ctx context.Context, request models.ReturnRequest) (models.Rental, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Rental{}, validationFailed(err)
	}
	return v.inner.SettleReturn(ctx, request)
}

func (v *ReturnValidationService) Wrap(inner ReturnService) ReturnService {
	v.inner = inner
	return v
}

type UserValidationService struct {
	UserService
	validator validators.Validator
}

func NewUserValidationService() Wrapper[UserService] {
	return &UserValidationService{validator: validators.NewEntityValidator()}
}

func (v *UserValidationService) Register(ctx context.Context, user models.User) (models.User, models.Token, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, models.Token{}, validationFailed(err)
	}
	return v.UserService.Register(ctx, user)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.UserService = inner
	return v
}

type AuthValidationService struct {
	AuthService
	validator validators.Validator
}

func NewAuthValidationService() Wrapper[AuthService] {
	return &AuthValidationService{validator: validators.NewEntityValidator()}
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.Token{}, validationFailed(err)
	}
	return v.AuthService.Login(ctx, credentials)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.AuthService = inner
	return v
}
