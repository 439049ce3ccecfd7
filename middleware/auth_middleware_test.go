package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"quill/domain"
	"quill/mocks"
)

func sessionUser(email string) *domain.UserContext {
	return &domain.UserContext{
		UserID:    "user-1",
		Email:     email,
		Name:      "User",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func echoHandler(c echo.Context) error {
	user, err := domain.GetUserFromContext(c.Request().Context())
	if err != nil {
		return c.String(http.StatusOK, "anonymous")
	}
	return c.String(http.StatusOK, user.Email)
}

func TestSessionMiddleware_CookieToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSessions := mocks.NewMockSessionServicePort(ctrl)
	mockSessions.EXPECT().Validate("valid-token").Return(sessionUser("a@example.com"), nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "valid-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := SessionMiddleware(mockSessions)(echoHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, "a@example.com", rec.Body.String())
}

func TestSessionMiddleware_BearerToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSessions := mocks.NewMockSessionServicePort(ctrl)
	mockSessions.EXPECT().Validate("bearer-token").Return(sessionUser("b@example.com"), nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer bearer-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := SessionMiddleware(mockSessions)(echoHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, "b@example.com", rec.Body.String())
}

func TestSessionMiddleware_InvalidTokenIsAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSessions := mocks.NewMockSessionServicePort(ctrl)
	mockSessions.EXPECT().Validate("bad-token").Return(nil, errors.New("invalid"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "bad-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := SessionMiddleware(mockSessions)(echoHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, "anonymous", rec.Body.String())
}

func TestRequireAuth_RejectsAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireAuth()(echoHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_PassesAuthenticated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(domain.SetUserContext(req.Context(), sessionUser("a@example.com")))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireAuth()(echoHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		wantStatus int
	}{
		{name: "configured admin", email: "root@example.com", wantStatus: http.StatusOK},
		{name: "email contains admin", email: "admin@other.com", wantStatus: http.StatusOK},
		{name: "regular user", email: "user@example.com", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(domain.SetUserContext(req.Context(), sessionUser(tt.email)))
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := RequireAdmin("root@example.com")(echoHandler)
			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireAdmin_Anonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireAdmin("root@example.com")(echoHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
