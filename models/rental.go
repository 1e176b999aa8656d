// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CustomerSnapshot is the denormalized copy of a customer stored inside a
// rental at checkout time. It is never re-read from the customers table.
type CustomerSnapshot struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	IsGold bool   `json:"isGold"`
}

// MovieSnapshot is the denormalized copy of a movie stored inside a rental at
// checkout time. DailyRentalRate is the rate the fee is computed with, even if
// the movie is repriced afterwards.
type MovieSnapshot struct {
	ID              string  `json:"_id"`
	Title           string  `json:"title"`
	DailyRentalRate float64 `json:"dailyRentalRate"`
}

// Rental is a single checkout of a movie by a customer.
//
// A rental is open while DateReturned is nil. Settlement sets DateReturned and
// RentalFee exactly once.
type Rental struct {
	// ID is the server-assigned UUID of the rental.
	ID string `json:"_id"`

	// Customer is the renting customer as it was at checkout.
	Customer CustomerSnapshot `json:"customer"`

	// Movie is the rented movie as it was at checkout.
	Movie MovieSnapshot `json:"movie"`

	// DateOut is the checkout timestamp.
	DateOut time.Time `json:"dateOut"`

	// DateReturned is the settlement timestamp; nil while the rental is open.
	DateReturned *time.Time `json:"dateReturned"`

	// RentalFee is the settled fee; nil while the rental is open.
	RentalFee *float64 `json:"rentalFee"`
}

// TableName returns the name of the database table
// associated with the Rental model.
func (r Rental) TableName() string {
	return "rentals"
}

// IsOpen reports whether the rental has not been returned yet.
func (r Rental) IsOpen() bool {
	return r.DateReturned == nil
}

// RentalRequest is the body of both POST /api/rentals and POST /api/returns.
type RentalRequest struct {
	CustomerID string `json:"customerId"`
	MovieID    string `json:"movieId"`
}

// ReturnRequest identifies the rental to settle by its business key.
type ReturnRequest = RentalRequest
