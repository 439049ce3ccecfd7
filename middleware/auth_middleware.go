package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"quill/domain"
	"quill/port/session_port"
	"quill/utils/errors"
)

// SessionCookieName is the cookie carrying the session token. A Bearer
// token in the Authorization header works too.
const SessionCookieName = "quill_session"

// SessionMiddleware resolves the session token, if any, and attaches
// the user context to the request. Unauthenticated requests pass
// through untouched; route-level guards decide whether that is allowed.
func SessionMiddleware(sessions session_port.SessionServicePort) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return next(c)
			}

			user, err := sessions.Validate(token)
			if err != nil {
				// 無効トークンは未認証と同じ扱い
				return next(c)
			}

			ctx := domain.SetUserContext(c.Request().Context(), user)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// RequireAuth rejects requests without a valid session.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, err := domain.GetUserFromContext(c.Request().Context()); err != nil {
				appErr := errors.UnauthorizedError("authentication required")
				return c.JSON(http.StatusUnauthorized, appErr.ToHTTPResponse())
			}
			return next(c)
		}
	}
}

// RequireAdmin rejects sessions that fail the admin predicate.
func RequireAdmin(adminEmail string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := domain.GetUserFromContext(c.Request().Context())
			if err != nil {
				appErr := errors.UnauthorizedError("authentication required")
				return c.JSON(http.StatusUnauthorized, appErr.ToHTTPResponse())
			}
			if !user.IsAdmin(adminEmail) {
				appErr := errors.ForbiddenError("admin access required")
				return c.JSON(http.StatusForbidden, appErr.ToHTTPResponse())
			}
			return next(c)
		}
	}
}

func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
