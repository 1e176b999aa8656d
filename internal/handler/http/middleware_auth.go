// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/vidly/internal/app"
	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/internal/utils"
)

const authTokenHeader = "x-auth-token"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The token is read from the "x-auth-token" header, falling back to
// "Authorization: Bearer <token>". It is validated via
// [service.AuthService.ParseToken] and, on success, stored in the request
// context with [utils.WithUser] before delegating to the next handler.
//
// Requests are rejected with:
//   - 401 "Access denied. No token provided." when no token is present.
//   - 400 "Invalid token." when the header is malformed or the token does
//     not validate.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := tokenFromRequest(r)
		if errors.Is(err, ErrNoTokenProvided) {
			log.Debug().Msg("request without token")
			utils.WriteText(w, app.MsgNoTokenProvided, http.StatusUnauthorized)
			return
		}
		if err != nil {
			log.Debug().Err(err).Msg("malformed authorization header")
			utils.WriteText(w, app.MsgInvalidToken, http.StatusBadRequest)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			utils.WriteText(w, app.MsgInvalidToken, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, token)))
	})
}

// admin lets through users whose token carries isAdmin. It must be mounted
// after auth.
func (h *Handler) admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := utils.GetUserFromContext(r.Context())
		if !ok || !token.IsAdmin {
			logger.FromRequest(r).Debug().Str("user_id", token.UserID).Msg("admin route denied")
			utils.WriteText(w, app.MsgAccessDenied, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// tokenFromRequest extracts the raw token of r.
//
// It returns the following sentinel errors:
//   - [ErrNoTokenProvided] if neither header is set.
//   - [ErrInvalidAuthorizationHeader] if "Authorization" is not a bearer token.
func tokenFromRequest(r *http.Request) (string, error) {
	if token := r.Header.Get(authTokenHeader); token != "" {
		return token, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoTokenProvided
	}

	token, err := utils.ParseBearerToken(authHeader)
	if err != nil || token == "" {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}
