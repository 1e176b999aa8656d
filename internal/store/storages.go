// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vidly/internal/config"
	"github.com/MKhiriev/vidly/internal/logger"
)

// Storages aggregates every repository of the application together with
// the database handle they share.
type Storages struct {
	GenreRepository    GenreRepository
	CustomerRepository CustomerRepository
	MovieRepository    MovieRepository
	RentalRepository   RentalRepository
	UserRepository     UserRepository
	HealthChecker      HealthChecker

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to apply migrations")
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories on top of an open connection.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		GenreRepository:    NewGenreRepository(db, log),
		CustomerRepository: NewCustomerRepository(db, log),
		MovieRepository:    NewMovieRepository(db, log),
		RentalRepository:   NewRentalRepository(db, log),
		UserRepository:     NewUserRepository(db, log),
		HealthChecker:      db,
		db:                 db,
	}
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
