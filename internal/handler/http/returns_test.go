// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/vidly/internal/app"
	"github.com/MKhiriev/vidly/internal/service"
	"github.com/MKhiriev/vidly/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testCustomerID = "9a3c2d41-1b8e-4f5a-a6d2-7e9b0c1f4d22"
	testMovieID    = "e27f8c16-5d3b-4a9e-8f01-2b6c4d9a7e33"
	returnBody     = `{"customerId":"` + testCustomerID + `","movieId":"` + testMovieID + `"}`
)

func closedRental() models.Rental {
	dateOut := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	returned := dateOut.Add(7 * 24 * time.Hour)
	fee := 14.0

	return models.Rental{
		ID:           "5f1d9b2e-0c7a-4e3d-b8a4-6c2e1f0d9b44",
		Customer:     models.CustomerSnapshot{ID: testCustomerID, Name: "Customer Name", Phone: "12345"},
		Movie:        models.MovieSnapshot{ID: testMovieID, Title: "Movie Title", DailyRentalRate: 2},
		DateOut:      dateOut,
		DateReturned: &returned,
		RentalFee:    &fee,
	}
}

func TestSettleReturn(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		body       string
		setup      func(m *testMocks)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no token",
			body:       returnBody,
			setup:      func(m *testMocks) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   app.MsgNoTokenProvided,
		},
		{
			name:  "malformed JSON",
			token: userToken,
			body:  `{"customerId":`,
			setup: func(m *testMocks) {
				m.expectToken(userToken, false)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name:  "missing movieId",
			token: userToken,
			body:  `{"customerId":"` + testCustomerID + `"}`,
			setup: func(m *testMocks) {
				m.expectToken(userToken, false)
				m.returns.EXPECT().
					SettleReturn(gomock.Any(), models.ReturnRequest{CustomerID: testCustomerID}).
					Return(models.Rental{}, &service.ValidationError{Err: errors.New(`"movieId" is required`)})
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"movieId" is required`,
		},
		{
			name:  "no rental for the pair",
			token: userToken,
			body:  returnBody,
			setup: func(m *testMocks) {
				m.expectToken(userToken, false)
				m.returns.EXPECT().
					SettleReturn(gomock.Any(), gomock.Any()).
					Return(models.Rental{}, service.ErrRentalNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   app.MsgRentalNotFound,
		},
		{
			name:  "return already processed",
			token: userToken,
			body:  returnBody,
			setup: func(m *testMocks) {
				m.expectToken(userToken, false)
				m.returns.EXPECT().
					SettleReturn(gomock.Any(), gomock.Any()).
					Return(models.Rental{}, service.ErrRentalAlreadyProcessed)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgReturnAlreadyProcessed,
		},
		{
			name:  "store failure",
			token: userToken,
			body:  returnBody,
			setup: func(m *testMocks) {
				m.expectToken(userToken, false)
				m.returns.EXPECT().
					SettleReturn(gomock.Any(), gomock.Any()).
					Return(models.Rental{}, errors.Join(service.ErrStoreFailure, errors.New("connection reset")))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgSomethingFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router := newTestRouter(t)
			tt.setup(m)

			rr := doRequest(router, http.MethodPost, "/api/returns", tt.body, tt.token)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestSettleReturn_Success(t *testing.T) {
	m, router := newTestRouter(t)
	m.expectToken(userToken, false)

	rental := closedRental()
	m.returns.EXPECT().
		SettleReturn(gomock.Any(), models.ReturnRequest{CustomerID: testCustomerID, MovieID: testMovieID}).
		Return(rental, nil)

	rr := doRequest(router, http.MethodPost, "/api/returns", returnBody, userToken)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	for _, key := range []string{"customer", "movie", "dateOut", "dateReturned", "rentalFee"} {
		assert.Contains(t, body, key)
	}
	assert.Equal(t, 14.0, body["rentalFee"])

	var got models.Rental
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, rental.Customer, got.Customer)
	assert.Equal(t, rental.Movie, got.Movie)
	assert.True(t, rental.DateReturned.Equal(*got.DateReturned))
}
