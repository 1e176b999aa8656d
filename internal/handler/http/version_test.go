package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/vidly/internal/app"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	for _, version := range []string{"v1.0.0", "v2.3.4-beta", ""} {
		t.Run(version, func(t *testing.T) {
			m, router := newTestRouter(t)
			m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(version)

			rr := doRequest(router, http.MethodGet, "/api/version", "", "")

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
			assert.Equal(t, version, rr.Body.String())
		})
	}
}

func TestHealth(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		m, router := newTestRouter(t)
		m.appInfo.EXPECT().Health(gomock.Any()).Return(nil)

		rr := doRequest(router, http.MethodGet, "/api/health", "", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		m, router := newTestRouter(t)
		m.appInfo.EXPECT().Health(gomock.Any()).Return(errors.New("dial tcp: connection refused"))

		rr := doRequest(router, http.MethodGet, "/api/health", "", "")

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, app.MsgDatabaseUnavailable, rr.Body.String())
	})
}
