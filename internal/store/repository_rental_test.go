package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDateOut = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func openRentalRow(id string) []driver.Value {
	return []driver.Value{id, "c1", "John Smith", "12345", false, "m1", "Terminator", 2.0, testDateOut, nil, nil}
}

func newRental() models.Rental {
	return models.Rental{
		ID:       "r1",
		Customer: models.CustomerSnapshot{ID: "c1", Name: "John Smith", Phone: "12345"},
		Movie:    models.MovieSnapshot{ID: "m1", Title: "Terminator", DailyRentalRate: 2},
		DateOut:  testDateOut,
	}
}

// ── FindByCustomerAndMovie ────────────────────────────────────────────────────

func TestRentalRepository_FindByCustomerAndMovie_Open(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRentalRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM rentals WHERE customer_id = \\$1 AND movie_id = \\$2 ORDER BY").
		WithArgs("c1", "m1").
		WillReturnRows(sqlmock.NewRows(rentalColumns).AddRow(openRentalRow("r1")...))

	rental, err := repo.FindByCustomerAndMovie(context.Background(), "c1", "m1")
	require.NoError(t, err)

	assert.Equal(t, "r1", rental.ID)
	assert.True(t, rental.IsOpen())
	assert.Nil(t, rental.RentalFee)
	assert.Equal(t, 2.0, rental.Movie.DailyRentalRate)
	assert.Equal(t, testDateOut, rental.DateOut)
}

func TestRentalRepository_FindByCustomerAndMovie_Closed(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRentalRepository(db, logger.Nop())

	returned := testDateOut.Add(48 * time.Hour)
	row := openRentalRow("r1")
	row[9], row[10] = returned, 4.0

	mock.ExpectQuery("SELECT (.+) FROM rentals").
		WithArgs("c1", "m1").
		WillReturnRows(sqlmock.NewRows(rentalColumns).AddRow(row...))

	rental, err := repo.FindByCustomerAndMovie(context.Background(), "c1", "m1")
	require.NoError(t, err)

	require.NotNil(t, rental.DateReturned)
	require.NotNil(t, rental.RentalFee)
	assert.False(t, rental.IsOpen())
	assert.Equal(t, 4.0, *rental.RentalFee)
}

func TestRentalRepository_FindByCustomerAndMovie_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRentalRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM rentals").
		WithArgs("c1", "m1").
		WillReturnRows(sqlmock.NewRows(rentalColumns))

	_, err := repo.FindByCustomerAndMovie(context.Background(), "c1", "m1")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── SaveReturn ────────────────────────────────────────────────────────────────

func TestRentalRepository_SaveReturn(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRentalRepository(db, logger.Nop())

	rental := newRental()
	returned := testDateOut.Add(7 * 24 * time.Hour)
	fee := 14.0
	rental.DateReturned, rental.RentalFee = &returned, &fee

	mock.ExpectExec("UPDATE rentals SET date_returned = \\$1, rental_fee = \\$2 WHERE id = \\$3 AND date_returned IS NULL").
		WithArgs(returned, fee, "r1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveReturn(context.Background(), rental))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_SaveReturn_AlreadyReturned(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRentalRepository(db, logger.Nop())

	rental := newRental()
	returned := time.Now()
	fee := 0.0
	rental.DateReturned, rental.RentalFee = &returned, &fee

	mock.ExpectExec("UPDATE rentals").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveReturn(context.Background(), rental)
	assert.ErrorIs(t, err, ErrRentalAlreadyReturned)
}

func TestRentalRepository_SaveReturn_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRentalRepository(db, logger.Nop())

	mock.ExpectExec("UPDATE rentals").WillReturnError(errors.New("connection lost"))

	err := repo.SaveReturn(context.Background(), newRental())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── Create ────────────────────────────────────────────────────────────────────

func TestRentalRepository_Create(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRentalRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE movies SET number_in_stock = number_in_stock - 1").
		WithArgs("m1", 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO rentals").
		WillReturnRows(sqlmock.NewRows(rentalColumns).AddRow(openRentalRow("r1")...))
	mock.ExpectCommit()

	created, err := repo.Create(context.Background(), newRental())
	require.NoError(t, err)
	assert.Equal(t, "r1", created.ID)
	assert.Equal(t, "Terminator", created.Movie.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_Create_OutOfStockRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRentalRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE movies").
		WithArgs("m1", 0).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), newRental())
	assert.ErrorIs(t, err, ErrMovieOutOfStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_Create_InsertErrorRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRentalRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE movies").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO rentals").WillReturnError(pgError(pgerrcode.CheckViolation))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), newRental())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_Create_RetriesSerializationFailure(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRentalRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE movies").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE movies").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO rentals").
		WillReturnRows(sqlmock.NewRows(rentalColumns).AddRow(openRentalRow("r1")...))
	mock.ExpectCommit()

	_, err := repo.Create(context.Background(), newRental())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_Create_BeginError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRentalRepository(db, logger.Nop())

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	_, err := repo.Create(context.Background(), newRental())
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

// ── List / ListOverdue ────────────────────────────────────────────────────────

func TestRentalRepository_List(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRentalRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM rentals ORDER BY date_out DESC").
		WillReturnRows(sqlmock.NewRows(rentalColumns).
			AddRow(openRentalRow("r2")...).
			AddRow(openRentalRow("r1")...))

	rentals, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rentals, 2)
	assert.Equal(t, "r2", rentals[0].ID)
}

func TestRentalRepository_ListOverdue(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRentalRepository(db, logger.Nop())

	before := testDateOut.Add(24 * time.Hour)
	mock.ExpectQuery("SELECT (.+) FROM rentals WHERE date_returned IS NULL AND date_out < \\$1").
		WithArgs(before).
		WillReturnRows(sqlmock.NewRows(rentalColumns).AddRow(openRentalRow("r1")...))

	rentals, err := repo.ListOverdue(context.Background(), before)
	require.NoError(t, err)
	require.Len(t, rentals, 1)
	assert.True(t, rentals[0].IsOpen())
}

func TestRentalRepository_ListRowError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRentalRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM rentals").
		WillReturnRows(sqlmock.NewRows(rentalColumns).
			AddRow(openRentalRow("r1")...).
			RowError(0, errors.New("broken row")))

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}
