// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/internal/utils"
	"github.com/MKhiriev/vidly/models"
)

func (h *Handler) listRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.services.RentalService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, rentals, http.StatusOK)
}

func (h *Handler) getRental(w http.ResponseWriter, r *http.Request) {
	rental, err := h.services.RentalService.Get(r.Context(), idParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, rental, http.StatusOK)
}

func (h *Handler) createRental(w http.ResponseWriter, r *http.Request) {
	var request models.RentalRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	rental, err := h.services.RentalService.Create(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Str("rental_id", rental.ID).
		Str("customer_id", rental.Customer.ID).
		Str("movie_id", rental.Movie.ID).
		Msg("movie rented")

	utils.WriteJSON(w, rental, http.StatusOK)
}
