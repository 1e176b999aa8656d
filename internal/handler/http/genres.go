// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vidly/internal/utils"
	"github.com/MKhiriev/vidly/models"
)

func (h *Handler) listGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.services.GenreService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, genres, http.StatusOK)
}

func (h *Handler) getGenre(w http.ResponseWriter, r *http.Request) {
	genre, err := h.services.GenreService.Get(r.Context(), idParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, genre, http.StatusOK)
}

func (h *Handler) createGenre(w http.ResponseWriter, r *http.Request) {
	var genre models.Genre
	if !decodeJSON(w, r, &genre) {
		return
	}

	created, err := h.services.GenreService.Create(r.Context(), genre)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) updateGenre(w http.ResponseWriter, r *http.Request) {
	var genre models.Genre
	if !decodeJSON(w, r, &genre) {
		return
	}
	genre.ID = idParam(r)

	updated, err := h.services.GenreService.Update(r.Context(), genre)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteGenre(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.services.GenreService.Delete(r.Context(), idParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, deleted, http.StatusOK)
}
