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

// movieRepository is the PostgreSQL-backed implementation of [MovieRepository].
// The genre of a movie is stored as a snapshot in genre_id and genre_name.
type movieRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewMovieRepository(db *DB, logger *logger.Logger) MovieRepository {
	logger.Debug().Msg("creating movie repository")
	return &movieRepository{
		db:     db,
		logger: logger,
	}
}

func (r *movieRepository) List(ctx context.Context) ([]models.Movie, error) {
	log := r.logger.FromContext(ctx)

	query, args, err := buildListMoviesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.List").Msg("failed to query movies")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	movies, err := scanAll(rows, scanMovie)
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.List").Msg("failed to scan movies")
		return nil, err
	}

	return movies, nil
}

func (r *movieRepository) GetByID(ctx context.Context, id string) (models.Movie, error) {
	query, args, err := buildGetMovieQuery(id)
	if err != nil {
		return models.Movie{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	movie, err := scanMovie(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Movie{}, r.failed(ctx, "GetByID", id, err)
	}

	return movie, nil
}

func (r *movieRepository) Create(ctx context.Context, movie models.Movie) (models.Movie, error) {
	query, args, err := buildInsertMovieQuery(movie)
	if err != nil {
		return models.Movie{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanMovie(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Movie{}, r.failed(ctx, "Create", movie.ID, err)
	}

	return created, nil
}

func (r *movieRepository) Update(ctx context.Context, movie models.Movie) (models.Movie, error) {
	query, args, err := buildUpdateMovieQuery(movie)
	if err != nil {
		return models.Movie{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanMovie(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Movie{}, r.failed(ctx, "Update", movie.ID, err)
	}

	return updated, nil
}

func (r *movieRepository) Delete(ctx context.Context, id string) (models.Movie, error) {
	query, args, err := buildDeleteMovieQuery(id)
	if err != nil {
		return models.Movie{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleted, err := scanMovie(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Movie{}, r.failed(ctx, "Delete", id, err)
	}

	return deleted, nil
}

// IncrementStock adds delta to number_in_stock. It returns [ErrNotFound]
// when the movie no longer exists.
func (r *movieRepository) IncrementStock(ctx context.Context, movieID string, delta int) error {
	log := r.logger.FromContext(ctx)

	query, args, err := buildIncrementStockQuery(movieID, delta)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*movieRepository.IncrementStock").
			Str("movie_id", movieID).
			Int("delta", delta).
			Msg("failed to update movie stock")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "*movieRepository.IncrementStock").
			Str("movie_id", movieID).
			Msg("movie not found while updating stock")
		return ErrNotFound
	}

	return nil
}

func (r *movieRepository) failed(ctx context.Context, op, id string, err error) error {
	err = rowError(err)
	if !errors.Is(err, ErrNotFound) {
		r.logger.FromContext(ctx).Err(err).
			Str("func", "*movieRepository."+op).
			Str("movie_id", id).
			Msg("movie query failed")
	}
	return err
}
