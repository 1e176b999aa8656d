package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInit_PublicRoutes(t *testing.T) {
	m, router := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1")
	m.genres.EXPECT().List(gomock.Any()).Return(nil, nil)
	m.movies.EXPECT().List(gomock.Any()).Return(nil, nil)

	for _, path := range []string{"/api/version", "/api/genres", "/api/movies"} {
		rr := doRequest(router, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}
}

func TestInit_ProtectedRoutes(t *testing.T) {
	_, router := newTestRouter(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/genres"},
		{http.MethodPut, "/api/genres/1"},
		{http.MethodDelete, "/api/genres/1"},
		{http.MethodGet, "/api/customers"},
		{http.MethodPost, "/api/movies"},
		{http.MethodDelete, "/api/movies/1"},
		{http.MethodPost, "/api/rentals"},
		{http.MethodGet, "/api/rentals/1"},
		{http.MethodPost, "/api/returns"},
		{http.MethodGet, "/api/users/me"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rr := doRequest(router, route.method, route.path, "", "")
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	m, router := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1")

	rr := doRequest(router, http.MethodGet, "/api/version", "", "")

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_RateLimited(t *testing.T) {
	_, router := newTestRouter(t, WithRequestLimiter(&fakeRequestLimiter{allow: false}))

	rr := doRequest(router, http.MethodGet, "/api/genres", "", "")

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

func TestInit_WrongMethodIsNotFound(t *testing.T) {
	_, router := newTestRouter(t)

	rr := doRequest(router, http.MethodPatch, "/api/returns", "", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "POST", rr.Header().Get("Allow"))
}

func TestInit_WrongMethodOnCollection(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		token     string
		wantAllow string
	}{
		{name: "DELETE on genres", method: http.MethodDelete, path: "/api/genres", wantAllow: "GET, POST"},
		{name: "PUT on movies", method: http.MethodPut, path: "/api/movies", wantAllow: "GET, POST"},
		{name: "DELETE on rentals", method: http.MethodDelete, path: "/api/rentals", token: userToken, wantAllow: "GET, POST"},
		{name: "PUT on rental", method: http.MethodPut, path: "/api/rentals/1", token: userToken, wantAllow: "GET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router := newTestRouter(t)
			if tt.token != "" {
				m.expectToken(tt.token, false)
			}

			rr := doRequest(router, tt.method, tt.path, "", tt.token)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Allow"))
		})
	}
}

func TestInit_RequestTimeoutSetsDeadline(t *testing.T) {
	m, router := newTestRouter(t, WithRequestTimeout(time.Minute))
	m.appInfo.EXPECT().Health(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return nil
	})

	rr := doRequest(router, http.MethodGet, "/api/health", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
}
