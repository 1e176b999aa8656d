// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/internal/store"
	"github.com/MKhiriev/vidly/internal/utils"
	"github.com/MKhiriev/vidly/models"
)

// movieService stores movies together with a snapshot of their genre.
type movieService struct {
	movieRepository store.MovieRepository
	genreRepository store.GenreRepository
	ids             *utils.UUIDGenerator

	logger *logger.Logger
}

func NewMovieService(movieRepository store.MovieRepository, genreRepository store.GenreRepository, logger *logger.Logger) MovieService {
	return &movieService{
		movieRepository: movieRepository,
		genreRepository: genreRepository,
		ids:             utils.NewUUIDGenerator(),
		logger:          logger,
	}
}

func (s *movieService) List(ctx context.Context) ([]models.Movie, error) {
	movies, err := s.movieRepository.List(ctx)
	if err != nil {
		return nil, storeError(err, ErrMovieNotFound)
	}

	return movies, nil
}

func (s *movieService) Get(ctx context.Context, id string) (models.Movie, error) {
	movie, err := s.movieRepository.GetByID(ctx, id)
	if err != nil {
		return models.Movie{}, storeError(err, ErrMovieNotFound)
	}

	return movie, nil
}

// Create resolves input.GenreID and stores the movie with the genre embedded.
// An unknown genre yields [ErrInvalidGenre].
func (s *movieService) Create(ctx context.Context, input models.MovieInput) (models.Movie, error) {
	movie, err := s.fromInput(ctx, input)
	if err != nil {
		return models.Movie{}, err
	}
	movie.ID = s.ids.Generate()

	created, err := s.movieRepository.Create(ctx, movie)
	if err != nil {
		return models.Movie{}, storeError(err, ErrMovieNotFound)
	}

	s.logger.FromContext(ctx).Info().
		Str("movie_id", created.ID).
		Str("genre_id", created.Genre.ID).
		Msg("movie created")
	return created, nil
}

// Update replaces every field of the movie. The genre snapshot is refreshed
// from input.GenreID.
func (s *movieService) Update(ctx context.Context, id string, input models.MovieInput) (models.Movie, error) {
	movie, err := s.fromInput(ctx, input)
	if err != nil {
		return models.Movie{}, err
	}
	movie.ID = id

	updated, err := s.movieRepository.Update(ctx, movie)
	if err != nil {
		return models.Movie{}, storeError(err, ErrMovieNotFound)
	}

	return updated, nil
}

func (s *movieService) Delete(ctx context.Context, id string) (models.Movie, error) {
	deleted, err := s.movieRepository.Delete(ctx, id)
	if err != nil {
		return models.Movie{}, storeError(err, ErrMovieNotFound)
	}

	s.logger.FromContext(ctx).Info().Str("movie_id", id).Msg("movie deleted")
	return deleted, nil
}

func (s *movieService) fromInput(ctx context.Context, input models.MovieInput) (models.Movie, error) {
	genre, err := s.genreRepository.GetByID(ctx, input.GenreID)
	if errors.Is(err, store.ErrNotFound) {
		s.logger.FromContext(ctx).Debug().Str("genre_id", input.GenreID).Msg("genre of the movie does not exist")
		return models.Movie{}, ErrInvalidGenre
	}
	if err != nil {
		return models.Movie{}, storeError(err, ErrInvalidGenre)
	}

	movie := models.Movie{
		Title: strings.TrimSpace(input.Title),
		Genre: genre,
	}
	if input.NumberInStock != nil {
		movie.NumberInStock = *input.NumberInStock
	}
	if input.DailyRentalRate != nil {
		movie.DailyRentalRate = *input.DailyRentalRate
	}

	return movie, nil
}
