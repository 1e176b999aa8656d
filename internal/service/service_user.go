// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/vidly/internal/config"
	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/internal/store"
	"github.com/MKhiriev/vidly/internal/utils"
	"github.com/MKhiriev/vidly/models"
)

type userService struct {
	userRepository store.UserRepository
	authService    AuthService
	passwordCost   int
	ids            *utils.UUIDGenerator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, authService AuthService, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		authService:    authService,
		passwordCost:   cfg.PasswordCost,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// Register hashes the password, stores the user and issues a token for it.
// The returned user carries no credentials.
func (s *userService) Register(ctx context.Context, user models.User) (models.User, models.Token, error) {
	log := s.logger.FromContext(ctx)

	hash, err := utils.HashPassword(user.Password, s.passwordCost)
	if err != nil {
		log.Err(err).Msg("failed to hash password")
		return models.User{}, models.Token{}, err
	}

	user.ID = s.ids.Generate()
	user.Email = strings.ToLower(user.Email)
	user.PasswordHash = hash
	user.Password = ""
	user.IsAdmin = false

	created, err := s.userRepository.Create(ctx, user)
	if errors.Is(err, store.ErrUserAlreadyExists) {
		return models.User{}, models.Token{}, ErrUserAlreadyRegistered
	}
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}

	token, err := s.authService.CreateToken(ctx, created)
	if err != nil {
		log.Err(err).Str("user_id", created.ID).Msg("user is registered but token creation failed")
		return models.User{}, models.Token{}, err
	}

	log.Info().Str("user_id", created.ID).Msg("user registered")
	return created.Public(), token, nil
}

// Me returns the user the caller is authenticated as.
func (s *userService) Me(ctx context.Context, userID string) (models.User, error) {
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, storeError(err, ErrUserNotFound)
	}

	return user.Public(), nil
}
