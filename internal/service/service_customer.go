// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/internal/store"
	"github.com/MKhiriev/vidly/internal/utils"
	"github.com/MKhiriev/vidly/models"
)

type customerService struct {
	customerRepository store.CustomerRepository
	ids             *utils.UUIDGenerator

	logger *logger.Logger
}

func NewCustomerService(customerRepository store.CustomerRepository, logger *logger.Logger) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		ids:             utils.NewUUIDGenerator(),
		logger:          logger,
	}
}

// List returns all customers sorted by name.
func (s *customerService) List(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.customerRepository.List(ctx)
	if err != nil {
		return nil, storeError(err, ErrCustomerNotFound)
	}

	return customers, nil
}

func (s *customerService) Get(ctx context.Context, id string) (models.Customer, error) {
	customer, err := s.customerRepository.GetByID(ctx, id)
	if err != nil {
		return models.Customer{}, storeError(err, ErrCustomerNotFound)
	}

	return customer, nil
}

func (s *customerService) Create(ctx context.Context, customer models.Customer) (models.Customer, error) {
	customer.ID = s.ids.Generate()

	created, err := s.customerRepository.Create(ctx, customer)
	if err != nil {
		return models.Customer{}, storeError(err, ErrCustomerNotFound)
	}

	s.logger.FromContext(ctx).Info().Str("customer_id", created.ID).Msg("customer created")
	return created, nil
}

func (s *customerService) Update(ctx context.Context, customer models.Customer) (models.Customer, error) {
	updated, err := s.customerRepository.Update(ctx, customer)
	if err != nil {
		return models.Customer{}, storeError(err, ErrCustomerNotFound)
	}

	return updated, nil
}

func (s *customerService) Delete(ctx context.Context, id string) (models.Customer, error) {
	deleted, err := s.customerRepository.Delete(ctx, id)
	if err != nil {
		return models.Customer{}, storeError(err, ErrCustomerNotFound)
	}

	s.logger.FromContext(ctx).Info().Str("customer_id", id).Msg("customer deleted")
	return deleted, nil
}
