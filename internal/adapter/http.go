// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/vidly/internal/config"
	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/models"
	"github.com/go-resty/resty/v2"
)

const authTokenHeader = "x-auth-token"

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the resty client with the resolved
// base URL and request timeout. A token from adapterCfg is stored right away.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	a := &httpServerAdapter{client: client, logger: logger}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs the user to /api/users and stores the token from the
// x-auth-token response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	var registered models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&registered).
		Post("/api/users")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.SetToken(resp.Header().Get(authTokenHeader))
	return registered, nil
}

// Login POSTs credentials to /api/auth. The response body is the raw token.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/auth")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(string(resp.Body()))
	h.logger.Debug().Msg("logged in")
	return h.Token(), nil
}

func (h *httpServerAdapter) ListGenres(ctx context.Context) ([]models.Genre, error) {
	var genres []models.Genre

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&genres).
		Get("/api/genres")
	if err != nil {
		return nil, fmt.Errorf("list genres request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return genres, nil
}

func (h *httpServerAdapter) ListMovies(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&movies).
		Get("/api/movies")
	if err != nil {
		return nil, fmt.Errorf("list movies request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return movies, nil
}

func (h *httpServerAdapter) CreateRental(ctx context.Context, request models.RentalRequest) (models.Rental, error) {
	return h.postRental(ctx, "/api/rentals", request)
}

func (h *httpServerAdapter) ReturnRental(ctx context.Context, request models.ReturnRequest) (models.Rental, error) {
	return h.postRental(ctx, "/api/returns", request)
}

func (h *httpServerAdapter) postRental(ctx context.Context, path string, request models.RentalRequest) (models.Rental, error) {
	var rental models.Rental

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&rental).
		Post(path)
	if err != nil {
		return models.Rental{}, fmt.Errorf("POST %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Rental{}, err
	}

	return rental, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader(authTokenHeader, token)
	}
	return req
}
