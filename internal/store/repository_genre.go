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

// genreRepository is the PostgreSQL-backed implementation of [GenreRepository].
type genreRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewGenreRepository(db *DB, logger *logger.Logger) GenreRepository {
	logger.Debug().Msg("creating genre repository")
	return &genreRepository{
		db:     db,
		logger: logger,
	}
}

// List returns all genres sorted by name.
func (r *genreRepository) List(ctx context.Context) ([]models.Genre, error) {
	log := r.logger.FromContext(ctx)

	query, args, err := buildListGenresQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*genreRepository.List").Msg("failed to query genres")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	genres, err := scanAll(rows, scanGenre)
	if err != nil {
		log.Err(err).Str("func", "*genreRepository.List").Msg("failed to scan genres")
		return nil, err
	}

	return genres, nil
}

func (r *genreRepository) GetByID(ctx context.Context, id string) (models.Genre, error) {
	query, args, err := buildGetGenreQuery(id)
	if err != nil {
		return models.Genre{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	genre, err := scanGenre(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Genre{}, r.failed(ctx, "GetByID", id, err)
	}

	return genre, nil
}

func (r *genreRepository) Create(ctx context.Context, genre models.Genre) (models.Genre, error) {
	query, args, err := buildInsertGenreQuery(genre)
	if err != nil {
		return models.Genre{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanGenre(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Genre{}, r.failed(ctx, "Create", genre.ID, err)
	}

	return created, nil
}

func (r *genreRepository) Update(ctx context.Context, genre models.Genre) (models.Genre, error) {
	query, args, err := buildUpdateGenreQuery(genre)
	if err != nil {
		return models.Genre{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanGenre(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Genre{}, r.failed(ctx, "Update", genre.ID, err)
	}

	return updated, nil
}

// Delete removes the genre and returns it as it was before deletion.
func (r *genreRepository) Delete(ctx context.Context, id string) (models.Genre, error) {
	query, args, err := buildDeleteGenreQuery(id)
	if err != nil {
		return models.Genre{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleted, err := scanGenre(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Genre{}, r.failed(ctx, "Delete", id, err)
	}

	return deleted, nil
}

func (r *genreRepository) failed(ctx context.Context, op, id string, err error) error {
	err = rowError(err)
	if !errors.Is(err, ErrNotFound) {
		r.logger.FromContext(ctx).Err(err).
			Str("func", "*genreRepository."+op).
			Str("genre_id", id).
			Msg("genre query failed")
	}
	return err
}
