// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	"github.com/MKhiriev/vidly/models"
	sq "github.com/Masterminds/squirrel"
)

// psql renders PostgreSQL ($n) placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	genreColumns    = []string{"id", "name"}
	customerColumns = []string{"id", "name", "phone", "is_gold"}
	movieColumns    = []string{"id", "title", "genre_id", "genre_name", "number_in_stock", "daily_rental_rate"}
	rentalColumns   = []string{
		"id",
		"customer_id", "customer_name", "customer_phone", "customer_is_gold",
		"movie_id", "movie_title", "movie_daily_rental_rate",
		"date_out", "date_returned", "rental_fee",
	}
	userColumns = []string{"id", "name", "email", "password_hash", "is_admin", "created_at"}
)

// ── genres ────────────────────────────────────────────────────────────────────

func buildListGenresQuery() (string, []any, error) {
	return psql.Select(genreColumns...).
		From(models.Genre{}.TableName()).
		OrderBy("name").
		ToSql()
}

func buildGetGenreQuery(id string) (string, []any, error) {
	return psql.Select(genreColumns...).
		From(models.Genre{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertGenreQuery(genre models.Genre) (string, []any, error) {
	return psql.Insert(models.Genre{}.TableName()).
		Columns(genreColumns...).
		Values(genre.ID, genre.Name).
		Suffix(returning(genreColumns)).
		ToSql()
}

func buildUpdateGenreQuery(genre models.Genre) (string, []any, error) {
	return psql.Update(models.Genre{}.TableName()).
		Set("name", genre.Name).
		Where(sq.Eq{"id": genre.ID}).
		Suffix(returning(genreColumns)).
		ToSql()
}

func buildDeleteGenreQuery(id string) (string, []any, error) {
	return psql.Delete(models.Genre{}.TableName()).
		Where(sq.Eq{"id": id}).
		Suffix(returning(genreColumns)).
		ToSql()
}

// ── customers ─────────────────────────────────────────────────────────────────

func buildListCustomersQuery() (string, []any, error) {
	return psql.Select(customerColumns...).
		From(models.Customer{}.TableName()).
		OrderBy("name").
		ToSql()
}

func buildGetCustomerQuery(id string) (string, []any, error) {
	return psql.Select(customerColumns...).
		From(models.Customer{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertCustomerQuery(customer models.Customer) (string, []any, error) {
	return psql.Insert(models.Customer{}.TableName()).
		Columns(customerColumns...).
		Values(customer.ID, customer.Name, customer.Phone, customer.IsGold).
		Suffix(returning(customerColumns)).
		ToSql()
}

func buildUpdateCustomerQuery(customer models.Customer) (string, []any, error) {
	return psql.Update(models.Customer{}.TableName()).
		Set("name", customer.Name).
		Set("phone", customer.Phone).
		Set("is_gold", customer.IsGold).
		Where(sq.Eq{"id": customer.ID}).
		Suffix(returning(customerColumns)).
		ToSql()
}

func buildDeleteCustomerQuery(id string) (string, []any, error) {
	return psql.Delete(models.Customer{}.TableName()).
		Where(sq.Eq{"id": id}).
		Suffix(returning(customerColumns)).
		ToSql()
}

// ── movies ────────────────────────────────────────────────────────────────────

func buildListMoviesQuery() (string, []any, error) {
	return psql.Select(movieColumns...).
		From(models.Movie{}.TableName()).
		OrderBy("title").
		ToSql()
}

func buildGetMovieQuery(id string) (string, []any, error) {
	return psql.Select(movieColumns...).
		From(models.Movie{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertMovieQuery(movie models.Movie) (string, []any, error) {
	return psql.Insert(models.Movie{}.TableName()).
		Columns(movieColumns...).
		Values(movie.ID, movie.Title, movie.Genre.ID, movie.Genre.Name, movie.NumberInStock, movie.DailyRentalRate).
		Suffix(returning(movieColumns)).
		ToSql()
}

func buildUpdateMovieQuery(movie models.Movie) (string, []any, error) {
	return psql.Update(models.Movie{}.TableName()).
		Set("title", movie.Title).
		Set("genre_id", movie.Genre.ID).
		Set("genre_name", movie.Genre.Name).
		Set("number_in_stock", movie.NumberInStock).
		Set("daily_rental_rate", movie.DailyRentalRate).
		Where(sq.Eq{"id": movie.ID}).
		Suffix(returning(movieColumns)).
		ToSql()
}

func buildDeleteMovieQuery(id string) (string, []any, error) {
	return psql.Delete(models.Movie{}.TableName()).
		Where(sq.Eq{"id": id}).
		Suffix(returning(movieColumns)).
		ToSql()
}

func buildIncrementStockQuery(movieID string, delta int) (string, []any, error) {
	return psql.Update(models.Movie{}.TableName()).
		Set("number_in_stock", sq.Expr("number_in_stock + ?", delta)).
		Where(sq.Eq{"id": movieID}).
		ToSql()
}

// buildTakeFromStockQuery decrements the stock only while it is positive, so
// zero affected rows means the movie is missing or out of stock.
func buildTakeFromStockQuery(movieID string) (string, []any, error) {
	return psql.Update(models.Movie{}.TableName()).
		Set("number_in_stock", sq.Expr("number_in_stock - 1")).
		Where(sq.Eq{"id": movieID}).
		Where(sq.Gt{"number_in_stock": 0}).
		ToSql()
}

// ── rentals ───────────────────────────────────────────────────────────────────

func buildListRentalsQuery() (string, []any, error) {
	return psql.Select(rentalColumns...).
		From(models.Rental{}.TableName()).
		OrderBy("date_out DESC").
		ToSql()
}

func buildGetRentalQuery(id string) (string, []any, error) {
	return psql.Select(rentalColumns...).
		From(models.Rental{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildFindRentalQuery orders open rentals first, then the most recent.
func buildFindRentalQuery(customerID, movieID string) (string, []any, error) {
	return psql.Select(rentalColumns...).
		From(models.Rental{}.TableName()).
		Where(sq.Eq{"customer_id": customerID}).
		Where(sq.Eq{"movie_id": movieID}).
		OrderBy("date_returned IS NOT NULL", "date_out DESC").
		Limit(1).
		ToSql()
}

func buildInsertRentalQuery(rental models.Rental) (string, []any, error) {
	return psql.Insert(models.Rental{}.TableName()).
		Columns(
			"id",
			"customer_id", "customer_name", "customer_phone", "customer_is_gold",
			"movie_id", "movie_title", "movie_daily_rental_rate",
			"date_out",
		).
		Values(
			rental.ID,
			rental.Customer.ID, rental.Customer.Name, rental.Customer.Phone, rental.Customer.IsGold,
			rental.Movie.ID, rental.Movie.Title, rental.Movie.DailyRentalRate,
			rental.DateOut,
		).
		Suffix(returning(rentalColumns)).
		ToSql()
}

// buildSaveReturnQuery only matches a rental that is still open.
func buildSaveReturnQuery(rental models.Rental) (string, []any, error) {
	return psql.Update(models.Rental{}.TableName()).
		Set("date_returned", rental.DateReturned).
		Set("rental_fee", rental.RentalFee).
		Where(sq.Eq{"id": rental.ID}).
		Where(sq.Eq{"date_returned": nil}).
		ToSql()
}

func buildListOverdueQuery(dateOutBefore time.Time) (string, []any, error) {
	return psql.Select(rentalColumns...).
		From(models.Rental{}.TableName()).
		Where(sq.Eq{"date_returned": nil}).
		Where(sq.Lt{"date_out": dateOutBefore}).
		OrderBy("date_out").
		ToSql()
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(models.User{}.TableName()).
		Columns("id", "name", "email", "password_hash", "is_admin").
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.IsAdmin).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserByEmailQuery(email string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildGetUserQuery(id string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}
