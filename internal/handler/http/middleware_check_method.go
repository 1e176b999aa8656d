// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

var routeMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
}

// CheckHTTPMethod returns a handler intended to be registered as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Instead of chi's default 405 it responds with 404 Not Found, the status the
// API uses for any unknown route. The methods that the requested path does
// accept are listed in the Allow header.
//
// The lookup walks every route registered on router, mounted subrouters
// included, and compares each full pattern against the request path segment
// by segment. A {param} segment matches any single non-empty segment and a
// trailing * matches the rest of the path.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(router, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		http.NotFound(w, r)
	}
}

// allowedMethods lists, in routeMethods order, the methods routed for path.
func allowedMethods(routes chi.Routes, path string) []string {
	found := make(map[string]bool)
	_ = chi.Walk(routes, func(method, pattern string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if patternMatches(pattern, path) {
			found[method] = true
		}
		return nil
	})

	var allowed []string
	for _, method := range routeMethods {
		if found[method] {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

func patternMatches(pattern, path string) bool {
	patternSegments := splitPath(pattern)
	pathSegments := splitPath(path)

	for i, segment := range patternSegments {
		if segment == "*" {
			return true
		}
		if i >= len(pathSegments) {
			return false
		}
		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
			if pathSegments[i] == "" {
				return false
			}
			continue
		}
		if segment != pathSegments[i] {
			return false
		}
	}

	return len(patternSegments) == len(pathSegments)
}

// splitPath splits p on "/" ignoring leading and trailing slashes.
func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
