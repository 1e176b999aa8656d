// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// vidly server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place keeps the wording consistent across the API and the client
// adapter that matches on them.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidDataProvided = "Invalid request body."

	// MsgSomethingFailed is returned when an unexpected server-side failure
	// occurs that the client cannot resolve.
	MsgSomethingFailed = "Something failed."

	// MsgNoTokenProvided is returned when a protected route is called without
	// an x-auth-token or Authorization header.
	MsgNoTokenProvided = "Access denied. No token provided."

	// MsgInvalidToken is returned when the supplied token is malformed,
	// expired or signed with a different key.
	MsgInvalidToken = "Invalid token."

	// MsgAccessDenied is returned when an authenticated non-admin user calls
	// an admin-only route.
	MsgAccessDenied = "Access denied."

	MsgGenreNotFound    = "The genre with the given ID was not found."
	MsgCustomerNotFound = "The customer with the given ID was not found."
	MsgMovieNotFound    = "The movie with the given ID was not found."
	MsgUserNotFound     = "The user with the given ID was not found."

	// MsgRentalNotFound is returned both for an unknown rental ID and for a
	// return of a (customer, movie) pair that was never rented.
	MsgRentalNotFound = "Rental not found."

	// MsgReturnAlreadyProcessed is returned when the matched rental already
	// has a return date.
	MsgReturnAlreadyProcessed = "Return already processed."

	MsgInvalidGenre    = "Invalid genre."
	MsgInvalidCustomer = "Invalid customer."
	MsgInvalidMovie    = "Invalid movie."
	MsgMovieNotInStock = "Movie not in stock."

	MsgUserAlreadyRegistered = "User already registered."

	// MsgInvalidEmailOrPassword is returned for both an unknown email and a
	// wrong password.
	MsgInvalidEmailOrPassword = "Invalid email or password."

	// MsgTooManyRequests is returned by the per-client rate limiter.
	MsgTooManyRequests = "Too many requests."

	// MsgTooManyLoginAttempts is returned by the login limiter.
	MsgTooManyLoginAttempts = "Too many login attempts. Try again later."

	// MsgDatabaseUnavailable is returned by the health endpoint when the
	// database ping fails.
	MsgDatabaseUnavailable = "Database is unavailable."
)
