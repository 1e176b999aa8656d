package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/vidly/internal/app"
	"github.com/MKhiriev/vidly/internal/service"
	"github.com/MKhiriev/vidly/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const registerBody = `{"name":"User Name","email":"user@example.com","password":"12345"}`

func TestRegister(t *testing.T) {
	t.Run("sets the token header", func(t *testing.T) {
		m, router := newTestRouter(t)
		m.users.EXPECT().
			Register(gomock.Any(), models.User{Name: "User Name", Email: "user@example.com", Password: "12345"}).
			Return(
				models.User{ID: testUserID, Name: "User Name", Email: "user@example.com"},
				models.Token{SignedString: "signed", UserID: testUserID},
				nil,
			)

		rr := doRequest(router, http.MethodPost, "/api/users", registerBody, "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "signed", rr.Header().Get(authTokenHeader))

		var body map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, testUserID, body["_id"])
		assert.NotContains(t, body, "password")
	})

	t.Run("already registered", func(t *testing.T) {
		m, router := newTestRouter(t)
		m.users.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(models.User{}, models.Token{}, service.ErrUserAlreadyRegistered)

		rr := doRequest(router, http.MethodPost, "/api/users", registerBody, "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, app.MsgUserAlreadyRegistered, rr.Body.String())
		assert.Empty(t, rr.Header().Get(authTokenHeader))
	})
}

func TestMe(t *testing.T) {
	t.Run("returns the current user", func(t *testing.T) {
		m, router := newTestRouter(t)
		m.expectToken(userToken, false)
		m.users.EXPECT().
			Me(gomock.Any(), testUserID).
			Return(models.User{ID: testUserID, Name: "User Name", Email: "user@example.com"}, nil)

		rr := doRequest(router, http.MethodGet, "/api/users/me", "", userToken)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "user@example.com")
	})

	t.Run("requires token", func(t *testing.T) {
		_, router := newTestRouter(t)

		rr := doRequest(router, http.MethodGet, "/api/users/me", "", "")

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
