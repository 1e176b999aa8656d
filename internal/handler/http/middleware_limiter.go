// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"math"
	"net/http"
	"strconv"

	"github.com/MKhiriev/vidly/internal/app"
	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/internal/utils"
	"github.com/tomasen/realip"
)

// withRateLimit rejects clients that exhausted their token bucket with 429.
// Clients are keyed by the IP reported by realip (X-Real-Ip,
// X-Forwarded-For, then RemoteAddr).
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.requestLimiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := realip.FromRequest(r)

		if !h.requestLimiter.Allow(ip) {
			logger.FromRequest(r).Warn().Str("ip", ip).Msg("rate limit exceeded")
			utils.WriteText(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLoginLimit counts login attempts per client IP. Limiter failures are
// logged and the attempt is let through.
func (h *Handler) withLoginLimit(next http.Handler) http.Handler {
	if h.loginLimiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ip := realip.FromRequest(r)

		allowed, retryAfter, err := h.loginLimiter.Allow(r.Context(), ip)
		if err != nil {
			log.Err(err).Str("ip", ip).Msg("login limiter failed")
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			log.Warn().Str("ip", ip).Dur("retry_after", retryAfter).Msg("too many login attempts")
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			utils.WriteText(w, app.MsgTooManyLoginAttempts, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
