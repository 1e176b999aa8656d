// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Movie is a title available for rent.
//
// Genre is a snapshot of the genre taken when the movie was created or last
// updated; renaming the genre later does not change it.
type Movie struct {
	ID              string  `json:"_id"`
	Title           string  `json:"title"`
	Genre           Genre   `json:"genre"`
	NumberInStock   int     `json:"numberInStock"`
	DailyRentalRate float64 `json:"dailyRentalRate"`
}

// TableName returns the name of the database table
// associated with the Movie model.
func (m Movie) TableName() string {
	return "movies"
}

// Snapshot returns a value copy of the movie fields embedded into rentals.
func (m Movie) Snapshot() MovieSnapshot {
	return MovieSnapshot{
		ID:              m.ID,
		Title:           m.Title,
		DailyRentalRate: m.DailyRentalRate,
	}
}

// MovieInput is the request body accepted by movie create and update endpoints.
//
// Pointer fields distinguish a missing value from an explicit zero so that
// validation can report required fields.
type MovieInput struct {
	Title           string   `json:"title"`
	GenreID         string   `json:"genreId"`
	NumberInStock   *int     `json:"numberInStock"`
	DailyRentalRate *float64 `json:"dailyRentalRate"`
}
