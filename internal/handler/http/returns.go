// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/internal/utils"
	"github.com/MKhiriev/vidly/models"
)

// settleReturn handles POST /api/returns.
//
// Responses:
//   - 200 with the closed rental.
//   - 400 if the body is invalid or the return was already processed.
//   - 404 if the (customer, movie) pair was never rented.
func (h *Handler) settleReturn(w http.ResponseWriter, r *http.Request) {
	var request models.ReturnRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	rental, err := h.services.ReturnService.SettleReturn(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	event := logger.FromRequest(r).Info().Str("rental_id", rental.ID)
	if rental.RentalFee != nil {
		event = event.Float64("rental_fee", *rental.RentalFee)
	}
	event.Msg("rental returned")

	utils.WriteJSON(w, rental, http.StatusOK)
}
