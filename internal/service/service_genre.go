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

type genreService struct {
	genreRepository store.GenreRepository
	ids             *utils.UUIDGenerator

	logger *logger.Logger
}

func NewGenreService(genreRepository store.GenreRepository, logger *logger.Logger) GenreService {
	return &genreService{
		genreRepository: genreRepository,
		ids:             utils.NewUUIDGenerator(),
		logger:          logger,
	}
}

func (s *genreService) List(ctx context.Context) ([]models.Genre, error) {
	genres, err := s.genreRepository.List(ctx)
	if err != nil {
		return nil, storeError(err, ErrGenreNotFound)
	}

	return genres, nil
}

func (s *genreService) Get(ctx context.Context, id string) (models.Genre, error) {
	genre, err := s.genreRepository.GetByID(ctx, id)
	if err != nil {
		return models.Genre{}, storeError(err, ErrGenreNotFound)
	}

	return genre, nil
}

// Create assigns a new ID to genre and stores it.
func (s *genreService) Create(ctx context.Context, genre models.Genre) (models.Genre, error) {
	genre.ID = s.ids.Generate()

	created, err := s.genreRepository.Create(ctx, genre)
	if err != nil {
		return models.Genre{}, storeError(err, ErrGenreNotFound)
	}

	s.logger.FromContext(ctx).Info().Str("genre_id", created.ID).Msg("genre created")
	return created, nil
}

func (s *genreService) Update(ctx context.Context, genre models.Genre) (models.Genre, error) {
	updated, err := s.genreRepository.Update(ctx, genre)
	if err != nil {
		return models.Genre{}, storeError(err, ErrGenreNotFound)
	}

	return updated, nil
}

func (s *genreService) Delete(ctx context.Context, id string) (models.Genre, error) {
	deleted, err := s.genreRepository.Delete(ctx, id)
	if err != nil {
		return models.Genre{}, storeError(err, ErrGenreNotFound)
	}

	s.logger.FromContext(ctx).Info().Str("genre_id", id).Msg("genre deleted")
	return deleted, nil
}
