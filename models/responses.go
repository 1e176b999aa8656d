// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}

// OverdueRental is a read-only projection produced by the overdue scan:
// an open rental and the fee accrued so far.
type OverdueRental struct {
	Rental     Rental  `json:"rental"`
	DaysOut    int     `json:"daysOut"`
	AccruedFee float64 `json:"accruedFee"`
}
