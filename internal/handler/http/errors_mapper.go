// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/vidly/internal/app"
	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/internal/service"
	"github.com/MKhiriev/vidly/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrGenreNotFound:    {http.StatusNotFound, app.MsgGenreNotFound},
	service.ErrCustomerNotFound: {http.StatusNotFound, app.MsgCustomerNotFound},
	service.ErrMovieNotFound:    {http.StatusNotFound, app.MsgMovieNotFound},
	service.ErrUserNotFound:     {http.StatusNotFound, app.MsgUserNotFound},
	service.ErrRentalNotFound:   {http.StatusNotFound, app.MsgRentalNotFound},

	service.ErrRentalAlreadyProcessed: {http.StatusBadRequest, app.MsgReturnAlreadyProcessed},
	service.ErrInvalidGenre:           {http.StatusBadRequest, app.MsgInvalidGenre},
	service.ErrInvalidCustomer:        {http.StatusBadRequest, app.MsgInvalidCustomer},
	service.ErrInvalidMovie:           {http.StatusBadRequest, app.MsgInvalidMovie},
	service.ErrMovieNotInStock:        {http.StatusBadRequest, app.MsgMovieNotInStock},
	service.ErrUserAlreadyRegistered:  {http.StatusBadRequest, app.MsgUserAlreadyRegistered},
	service.ErrInvalidCredentials:     {http.StatusBadRequest, app.MsgInvalidEmailOrPassword},

	service.ErrTokenIsExpiredOrInvalid: {http.StatusBadRequest, app.MsgInvalidToken},
	ErrNoUserInContext:                 {http.StatusUnauthorized, app.MsgNoTokenProvided},
}

// responseFromError resolves the status and body for err. Validation errors
// carry their own message; unknown errors map to 500.
func responseFromError(err error) errorResponse {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return errorResponse{http.StatusBadRequest, validationErr.Error()}
	}

	for target, response := range errorStatusMap {
		if errors.Is(err, target) {
			return response
		}
	}

	return errorResponse{http.StatusInternalServerError, app.MsgSomethingFailed}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	response := responseFromError(err)

	log := logger.FromRequest(r)
	if response.status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", response.status).Msg("request rejected")
	}

	utils.WriteText(w, response.message, response.status)
}
