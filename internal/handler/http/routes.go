// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withRateLimit)
	router.Use(middleware.Compress(5), withGzipRequest)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/health", h.health)

	router.Route("/api/genres", func(r chi.Router) {
		r.Get("/", h.listGenres)
		r.Get("/{id}", h.getGenre)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.createGenre)
			r.Put("/{id}", h.updateGenre)
			r.With(h.admin).Delete("/{id}", h.deleteGenre)
		})
	})

	router.Route("/api/customers", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.listCustomers)
		r.Get("/{id}", h.getCustomer)
		r.Post("/", h.createCustomer)
		r.Put("/{id}", h.updateCustomer)
		r.With(h.admin).Delete("/{id}", h.deleteCustomer)
	})

	router.Route("/api/movies", func(r chi.Router) {
		r.Get("/", h.listMovies)
		r.Get("/{id}", h.getMovie)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.createMovie)
			r.Put("/{id}", h.updateMovie)
			r.With(h.admin).Delete("/{id}", h.deleteMovie)
		})
	})

	router.Route("/api/rentals", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.listRentals)
		r.Get("/{id}", h.getRental)
		r.Post("/", h.createRental)
	})

	router.With(h.auth).Post("/api/returns", h.settleReturn)

	router.Post("/api/users", h.register)
	router.With(h.auth).Get("/api/users/me", h.me)
	router.With(h.withLoginLimit).Post("/api/auth", h.login)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
