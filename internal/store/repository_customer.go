// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/models"
)

type customerRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *customerRepository) List(ctx context.Context) ([]models.Customer, error) {
	log := r.logger.FromContext(ctx)

	query, args, err := buildListCustomersQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.List").Msg("failed to query customers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	customers, err := scanAll(rows, scanCustomer)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.List").Msg("failed to scan customers")
		return nil, err
	}

	return customers, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (models.Customer, error) {
	query, args, err := buildGetCustomerQuery(id)
	if err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Customer{}, r.failed(ctx, "GetByID", id, err)
	}

	return customer, nil
}

func (r *customerRepository) Create(ctx context.Context, customer models.Customer) (models.Customer, error) {
	query, args, err := buildInsertCustomerQuery(customer)
	if err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanCustomer(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Customer{}, r.failed(ctx, "Create", customer.ID, err)
	}

	return created, nil
}

func (r *customerRepository) Update(ctx context.Context, customer models.Customer) (models.Customer, error) {
	query, args, err := buildUpdateCustomerQuery(customer)
	if err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanCustomer(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Customer{}, r.failed(ctx, "Update", customer.ID, err)
	}

	return updated, nil
}

func (r *customerRepository) Delete(ctx context.Context, id string) (models.Customer, error) {
	query, args, err := buildDeleteCustomerQuery(id)
	if err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleted, err := scanCustomer(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Customer{}, r.failed(ctx, "Delete", id, err)
	}

	return deleted, nil
}

func (r *customerRepository) failed(ctx context.Context, op, id string, err error) error {
	err = rowError(err)
	if !errors.Is(err, ErrNotFound) {
		r.logger.FromContext(ctx).Err(err).
			Str("func", "*customerRepository."+op).
			Str("customer_id", id).
			Msg("customer query failed")
	}
	return err
}
