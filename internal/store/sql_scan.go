// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/vidly/models"
	"github.com/jackc/pgerrcode"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanGenre(row rowScanner) (models.Genre, error) {
	var genre models.Genre
	err := row.Scan(&genre.ID, &genre.Name)
	return genre, err
}

func scanCustomer(row rowScanner) (models.Customer, error) {
	var customer models.Customer
	err := row.Scan(&customer.ID, &customer.Name, &customer.Phone, &customer.IsGold)
	return customer, err
}

func scanMovie(row rowScanner) (models.Movie, error) {
	var movie models.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre.ID,
		&movie.Genre.Name,
		&movie.NumberInStock,
		&movie.DailyRentalRate,
	)
	return movie, err
}

func scanRental(row rowScanner) (models.Rental, error) {
	var rental models.Rental
	err := row.Scan(
		&rental.ID,
		&rental.Customer.ID,
		&rental.Customer.Name,
		&rental.Customer.Phone,
		&rental.Customer.IsGold,
		&rental.Movie.ID,
		&rental.Movie.Title,
		&rental.Movie.DailyRentalRate,
		&rental.DateOut,
		&rental.DateReturned,
		&rental.RentalFee,
	)
	return rental, err
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt)
	return user, err
}

// rowError translates the error of a single-row query. A missing row and an
// id that postgres cannot parse as UUID both mean the record does not exist.
func rowError(err error) error {
	if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.InvalidTextRepresentation {
		return ErrNotFound
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// scanAll drains rows with scan and closes them.
func scanAll[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()

	results := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}
