// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vidly/internal/utils"
	"github.com/MKhiriev/vidly/models"
)

// register handles POST /api/users. The issued token is sent in the
// x-auth-token header.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if !decodeJSON(w, r, &user) {
		return
	}

	registered, token, err := h.services.UserService.Register(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set(authTokenHeader, token.SignedString)
	utils.WriteJSON(w, registered, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	user, err := h.services.UserService.Me(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
