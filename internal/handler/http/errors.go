// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// token of a request. Callers can match against them with [errors.Is].
var (
	// ErrNoTokenProvided is returned when the request carries neither an
	// "x-auth-token" nor an "Authorization" header.
	ErrNoTokenProvided = errors.New("no token provided")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoUserInContext is returned by handlers behind the auth middleware
	// when the request context carries no authenticated user.
	ErrNoUserInContext = errors.New("no authenticated user in context")
)
