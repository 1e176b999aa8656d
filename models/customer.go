// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Customer is a person who rents movies.
type Customer struct {
	// ID is the server-assigned UUID of the customer.
	ID string `json:"_id"`

	// Name is the full name of the customer, 5..50 characters.
	Name string `json:"name"`

	// Phone is the contact phone number, 5..50 characters.
	Phone string `json:"phone"`

	// IsGold marks customers enrolled into the gold membership program.
	IsGold bool `json:"isGold"`
}

// TableName returns the name of the database table
// associated with the Customer model.
func (c Customer) TableName() string {
	return "customers"
}

// Snapshot returns a value copy of the customer fields embedded into rentals.
func (c Customer) Snapshot() CustomerSnapshot {
	return CustomerSnapshot{
		ID:     c.ID,
		Name:   c.Name,
		Phone:  c.Phone,
		IsGold: c.IsGold,
	}
}
