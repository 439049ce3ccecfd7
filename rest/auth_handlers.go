package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"quill/di"
	custommiddleware "quill/middleware"
	"quill/usecase/auth_usecase"
)

func registerAuthRoutes(api *echo.Group, container *di.ApplicationComponents) {
	auth := api.Group("/auth")
	auth.POST("/register", handleRegister(container))
	auth.POST("/login", handleLogin(container))
	auth.POST("/logout", handleLogout())
}

func handleRegister(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload RegisterPayload
		if err := c.Bind(&payload); err != nil {
			return handleValidationError(c, "invalid request body", "body", "")
		}

		session, err := container.AuthUsecase.Register(c.Request().Context(), payload.Email, payload.Name, payload.Password)
		if err != nil {
			return handleError(c, err, "register")
		}

		setSessionCookie(c, session)
		return c.JSON(http.StatusCreated, sessionResponse(session))
	}
}

func handleLogin(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload LoginPayload
		if err := c.Bind(&payload); err != nil {
			return handleValidationError(c, "invalid request body", "body", "")
		}

		session, err := container.AuthUsecase.Login(c.Request().Context(), payload.Email, payload.Password)
		if err != nil {
			return handleError(c, err, "login")
		}

		setSessionCookie(c, session)
		return c.JSON(http.StatusOK, sessionResponse(session))
	}
}

func handleLogout() echo.HandlerFunc {
	return func(c echo.Context) error {
		c.SetCookie(&http.Cookie{
			Name:     custommiddleware.SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return c.NoContent(http.StatusNoContent)
	}
}

func setSessionCookie(c echo.Context, session *auth_usecase.Session) {
	c.SetCookie(&http.Cookie{
		Name:     custommiddleware.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func sessionResponse(session *auth_usecase.Session) SessionResponse {
	return SessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
		User:      session.User,
	}
}
