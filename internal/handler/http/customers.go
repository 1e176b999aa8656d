// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vidly/internal/utils"
	"github.com/MKhiriev/vidly/models"
)

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.services.CustomerService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, customers, http.StatusOK)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.services.CustomerService.Get(r.Context(), idParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, customer, http.StatusOK)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var customer models.Customer
	if !decodeJSON(w, r, &customer) {
		return
	}

	created, err := h.services.CustomerService.Create(r.Context(), customer)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var customer models.Customer
	if !decodeJSON(w, r, &customer) {
		return
	}
	customer.ID = idParam(r)

	updated, err := h.services.CustomerService.Update(r.Context(), customer)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.services.CustomerService.Delete(r.Context(), idParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, deleted, http.StatusOK)
}
