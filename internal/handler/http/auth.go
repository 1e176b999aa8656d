// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/internal/utils"
	"github.com/MKhiriev/vidly/models"
)

// login handles POST /api/auth and answers with the raw token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if !decodeJSON(w, r, &credentials) {
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", token.UserID).Msg("user successfully logged in")

	utils.WriteText(w, token.SignedString, http.StatusOK)
}
