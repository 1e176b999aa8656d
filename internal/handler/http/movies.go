// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vidly/internal/utils"
	"github.com/MKhiriev/vidly/models"
)

func (h *Handler) listMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.services.MovieService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, movies, http.StatusOK)
}

func (h *Handler) getMovie(w http.ResponseWriter, r *http.Request) {
	movie, err := h.services.MovieService.Get(r.Context(), idParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, movie, http.StatusOK)
}

func (h *Handler) createMovie(w http.ResponseWriter, r *http.Request) {
	var input models.MovieInput
	if !decodeJSON(w, r, &input) {
		return
	}

	movie, err := h.services.MovieService.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, movie, http.StatusOK)
}

func (h *Handler) updateMovie(w http.ResponseWriter, r *http.Request) {
	var input models.MovieInput
	if !decodeJSON(w, r, &input) {
		return
	}

	movie, err := h.services.MovieService.Update(r.Context(), idParam(r), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, movie, http.StatusOK)
}

func (h *Handler) deleteMovie(w http.ResponseWriter, r *http.Request) {
	movie, err := h.services.MovieService.Delete(r.Context(), idParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, movie, http.StatusOK)
}
