// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/models"
)

// rentalRepository is the PostgreSQL-backed implementation of
// [RentalRepository]. Customer and movie data are stored as snapshot columns
// of the rentals table.
type rentalRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewRentalRepository(db *DB, logger *logger.Logger) RentalRepository {
	logger.Debug().Msg("creating rental repository")
	return &rentalRepository{
		db:     db,
		logger: logger,
	}
}

// List returns all rentals, most recent dateOut first.
func (r *rentalRepository) List(ctx context.Context) ([]models.Rental, error) {
	query, args, err := buildListRentalsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.query(ctx, "List", query, args)
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (models.Rental, error) {
	query, args, err := buildGetRentalQuery(id)
	if err != nil {
		return models.Rental{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rental, err := scanRental(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Rental{}, r.failed(ctx, "GetByID", err)
	}

	return rental, nil
}

// FindByCustomerAndMovie returns the rental of the (customer, movie) pair.
// An open rental wins over closed ones; among equals the latest dateOut wins.
func (r *rentalRepository) FindByCustomerAndMovie(ctx context.Context, customerID, movieID string) (models.Rental, error) {
	query, args, err := buildFindRentalQuery(customerID, movieID)
	if err != nil {
		return models.Rental{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rental, err := scanRental(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Rental{}, r.failed(ctx, "FindByCustomerAndMovie", err)
	}

	return rental, nil
}

// Create inserts rental and decrements the stock of its movie in one
// transaction. [ErrMovieOutOfStock] is returned when no copy is available.
func (r *rentalRepository) Create(ctx context.Context, rental models.Rental) (models.Rental, error) {
	log := r.logger.FromContext(ctx)

	stockQuery, stockArgs, err := buildTakeFromStockQuery(rental.Movie.ID)
	if err != nil {
		return models.Rental{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	insertQuery, insertArgs, err := buildInsertRentalQuery(rental)
	if err != nil {
		return models.Rental{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Rental
	err = r.db.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, stockQuery, stockArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrMovieOutOfStock
		}

		created, err = scanRental(tx.QueryRowContext(ctx, insertQuery, insertArgs...))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*rentalRepository.Create").
			Str("customer_id", rental.Customer.ID).
			Str("movie_id", rental.Movie.ID).
			Msg("failed to create rental")
		return models.Rental{}, err
	}

	log.Debug().
		Str("func", "*rentalRepository.Create").
		Str("rental_id", created.ID).
		Msg("rental created")

	return created, nil
}

// SaveReturn writes dateReturned and rentalFee. The update is conditional on
// the rental still being open; when it matches nothing the rental was settled
// concurrently and [ErrRentalAlreadyReturned] is returned.
func (r *rentalRepository) SaveReturn(ctx context.Context, rental models.Rental) error {
	log := r.logger.FromContext(ctx)

	query, args, err := buildSaveReturnQuery(rental)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*rentalRepository.SaveReturn").
			Str("rental_id", rental.ID).
			Msg("failed to save rental return")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "*rentalRepository.SaveReturn").
			Str("rental_id", rental.ID).
			Msg("rental was returned by a concurrent request")
		return ErrRentalAlreadyReturned
	}

	return nil
}

// ListOverdue returns open rentals whose dateOut is before dateOutBefore,
// oldest first.
func (r *rentalRepository) ListOverdue(ctx context.Context, dateOutBefore time.Time) ([]models.Rental, error) {
	query, args, err := buildListOverdueQuery(dateOutBefore)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.query(ctx, "ListOverdue", query, args)
}

func (r *rentalRepository) query(ctx context.Context, op, query string, args []any) ([]models.Rental, error) {
	log := r.logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*rentalRepository."+op).Msg("failed to query rentals")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rentals, err := scanAll(rows, scanRental)
	if err != nil {
		log.Err(err).Str("func", "*rentalRepository."+op).Msg("failed to scan rentals")
		return nil, err
	}

	return rentals, nil
}

func (r *rentalRepository) failed(ctx context.Context, op string, err error) error {
	err = rowError(err)
	if !errors.Is(err, ErrNotFound) {
		r.logger.FromContext(ctx).Err(err).
			Str("func", "*rentalRepository."+op).
			Msg("rental query failed")
	}
	return err
}
