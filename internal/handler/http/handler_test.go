package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/internal/mock"
	"github.com/MKhiriev/vidly/internal/service"
	"github.com/MKhiriev/vidly/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUserID  = "4c5e1b7e-3f0a-4b7e-9c52-0d1f3b9e2a11"
	userToken   = "user-token"
	adminToken  = "admin-token"
	testGenreID = "0b0f6e9a-6d44-4a53-9d1c-5d2c8a9f1e01"
)

// testMocks holds one gomock service per Services field.
type testMocks struct {
	genres    *mock.MockGenreService
	customers *mock.MockCustomerService
	movies    *mock.MockMovieService
	rentals   *mock.MockRentalService
	returns   *mock.MockReturnService
	users     *mock.MockUserService
	auth      *mock.MockAuthService
	appInfo   *mock.MockAppInfoService
}

func newTestMocks(ctrl *gomock.Controller) (*testMocks, *service.Services) {
	m := &testMocks{
		genres:    mock.NewMockGenreService(ctrl),
		customers: mock.NewMockCustomerService(ctrl),
		movies:    mock.NewMockMovieService(ctrl),
		rentals:   mock.NewMockRentalService(ctrl),
		returns:   mock.NewMockReturnService(ctrl),
		users:     mock.NewMockUserService(ctrl),
		auth:      mock.NewMockAuthService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
	}

	return m, &service.Services{
		GenreService:    m.genres,
		CustomerService: m.customers,
		MovieService:    m.movies,
		RentalService:   m.rentals,
		ReturnService:   m.returns,
		UserService:     m.users,
		AuthService:     m.auth,
		AppInfoService:  m.appInfo,
	}
}

// expectToken makes the auth mock accept token for testUserID.
func (m *testMocks) expectToken(token string, isAdmin bool) {
	m.auth.EXPECT().
		ParseToken(gomock.Any(), token).
		Return(models.Token{SignedString: token, UserID: testUserID, IsAdmin: isAdmin}, nil)
}

func newTestRouter(t *testing.T, opts ...Option) (*testMocks, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m, services := newTestMocks(ctrl)
	return m, NewHandler(services, logger.Nop(), opts...).Init()
}

func doRequest(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(authTokenHeader, token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Nil(t, h.requestLimiter)
	assert.Nil(t, h.loginLimiter)
	assert.Zero(t, h.requestTimeout)
}

func TestNewHandler_AppliesOptions(t *testing.T) {
	requests := &fakeRequestLimiter{allow: true}
	logins := &fakeLoginLimiter{allowed: true}

	h := NewHandler(&service.Services{}, logger.Nop(),
		WithRequestLimiter(requests),
		WithLoginLimiter(logins),
		WithRequestTimeout(5*time.Second),
	)

	assert.Equal(t, requests, h.requestLimiter)
	assert.Equal(t, logins, h.loginLimiter)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}
