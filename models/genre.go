// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Genre is a movie category.
type Genre struct {
	// ID is the server-assigned UUID of the genre.
	ID string `json:"_id"`

	// Name is the display name of the genre, 3..30 characters.
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Genre model.
func (g Genre) TableName() string {
	return "genres"
}
