// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/vidly/internal/app"
	"github.com/MKhiriev/vidly/internal/config"
	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCustomerID = "9a3c2d41-1b8e-4f5a-a6d2-7e9b0c1f4d22"
	testMovieID    = "e27f8c16-5d3b-4a9e-8f01-2b6c4d9a7e33"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── NewHTTPServerAdapter ────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:3000", want: "http://localhost:3000"},
		{raw: " https://vidly.example.com/ ", want: "https://vidly.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_StoresConfiguredToken(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "localhost:3000", Token: " abc "}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "abc", a.Token())
}

// ── Login / Register ────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth", r.URL.Path)

		var credentials models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&credentials))
		assert.Equal(t, "user@example.com", credentials.Email)

		w.Write([]byte("signed.jwt.token"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), models.Credentials{Email: "user@example.com", Password: "12345"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", token)
	assert.Equal(t, "signed.jwt.token", a.Token())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, app.MsgInvalidEmailOrPassword, http.StatusBadRequest)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{})

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, a.Token())
}

func TestRegister_StoresHeaderToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users", r.URL.Path)
		w.Header().Set(authTokenHeader, "issued")
		writeJSON(t, w, models.User{ID: "u1", Name: "User Name", Email: "user@example.com"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	user, err := a.Register(context.Background(), models.User{Name: "User Name", Email: "user@example.com", Password: "12345"})

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "issued", a.Token())
}

// ── Catalogue ───────────────────────────────────────────────────────────────

func TestListGenres(t *testing.T) {
	genres := []models.Genre{{ID: "1", Name: "Comedy"}, {ID: "2", Name: "Drama"}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/genres", r.URL.Path)
		assert.Empty(t, r.Header.Get(authTokenHeader))
		writeJSON(t, w, genres)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListGenres(context.Background())

	require.NoError(t, err)
	assert.Equal(t, genres, got)
}

func TestListMovies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.Movie{{ID: testMovieID, Title: "Movie Title", NumberInStock: 3}})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListMovies(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].NumberInStock)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("v1.2.3"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", got)
}

// ── Rentals ─────────────────────────────────────────────────────────────────

func TestCreateRental_SendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rentals", r.URL.Path)
		assert.Equal(t, "token", r.Header.Get(authTokenHeader))

		var request models.RentalRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, testCustomerID, request.CustomerID)
		assert.Equal(t, testMovieID, request.MovieID)

		writeJSON(t, w, models.Rental{ID: "r1", Movie: models.MovieSnapshot{ID: testMovieID}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("token")

	rental, err := a.CreateRental(context.Background(), models.RentalRequest{CustomerID: testCustomerID, MovieID: testMovieID})

	require.NoError(t, err)
	assert.Equal(t, "r1", rental.ID)
	assert.Nil(t, rental.DateReturned)
}

func TestReturnRental_Success(t *testing.T) {
	returned := time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC)
	fee := 14.0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/returns", r.URL.Path)
		writeJSON(t, w, models.Rental{ID: "r1", DateReturned: &returned, RentalFee: &fee})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("token")

	rental, err := a.ReturnRental(context.Background(), models.ReturnRequest{CustomerID: testCustomerID, MovieID: testMovieID})

	require.NoError(t, err)
	require.NotNil(t, rental.RentalFee)
	assert.Equal(t, 14.0, *rental.RentalFee)
	assert.True(t, returned.Equal(*rental.DateReturned))
}

func TestReturnRental_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantErrs []error
	}{
		{name: "never rented", status: http.StatusNotFound, body: app.MsgRentalNotFound, wantErrs: []error{ErrNotFound, ErrRentalNotFound}},
		{name: "already returned", status: http.StatusBadRequest, body: app.MsgReturnAlreadyProcessed, wantErrs: []error{ErrBadRequest, ErrReturnAlreadyProcessed}},
		{name: "no token", status: http.StatusUnauthorized, body: app.MsgNoTokenProvided, wantErrs: []error{ErrUnauthorized}},
		{name: "validation", status: http.StatusBadRequest, body: `"movieId" is required`, wantErrs: []error{ErrBadRequest}},
		{name: "server failure", status: http.StatusInternalServerError, body: app.MsgSomethingFailed, wantErrs: []error{ErrInternalServerError}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, tt.body, tt.status)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).ReturnRental(context.Background(), models.ReturnRequest{})

			require.Error(t, err)
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListGenres(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
