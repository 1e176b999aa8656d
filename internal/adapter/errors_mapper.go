// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/vidly/internal/app"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

var messageErrors = map[string]error{
	app.MsgInvalidToken:           ErrInvalidToken,
	app.MsgInvalidEmailOrPassword: ErrInvalidCredentials,
	app.MsgUserAlreadyRegistered:  ErrUserAlreadyRegistered,
	app.MsgRentalNotFound:         ErrRentalNotFound,
	app.MsgReturnAlreadyProcessed: ErrReturnAlreadyProcessed,
	app.MsgInvalidCustomer:        ErrInvalidCustomer,
	app.MsgInvalidMovie:           ErrInvalidMovie,
	app.MsgMovieNotInStock:        ErrMovieNotInStock,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	statusErr, ok := statusErrors[resp.StatusCode()]
	if !ok {
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}

	if messageErr, ok := messageErrors[body]; ok {
		return fmt.Errorf("%w: %w", statusErr, messageErr)
	}

	return fmt.Errorf("%w: %s", statusErr, body)
}
