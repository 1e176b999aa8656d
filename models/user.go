// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the server-assigned UUID of the user.
	ID string `json:"_id"`

	// Name is the display name of the user, 5..50 characters.
	Name string `json:"name"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Password carries the plain-text password on input only.
	// It is never written to responses.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	// IsAdmin grants access to destructive endpoints.
	IsAdmin bool `json:"isAdmin,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public strips credential fields from the user.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}

// Credentials is the body of POST /api/auth.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
