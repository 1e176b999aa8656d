// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the application:
// context keys, JSON response writing, JWT tokens, password hashing and UUID
// generation.
package utils

import (
	"context"

	"github.com/MKhiriev/vidly/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the authenticated user's token is stored.
var UserCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying the authenticated token.
func WithUser(ctx context.Context, token models.Token) context.Context {
	return context.WithValue(ctx, UserCtxKey, token)
}

// GetUserFromContext retrieves the authenticated token stored by WithUser.
//
//	token, ok := utils.GetUserFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(UserCtxKey).(models.Token)
	return token, ok
}

// GetUserIDFromContext is a shortcut returning only the user ID.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	token, ok := GetUserFromContext(ctx)
	if !ok || token.UserID == "" {
		return "", false
	}
	return token.UserID, true
}
