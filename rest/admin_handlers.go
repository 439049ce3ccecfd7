package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"quill/config"
	"quill/di"
	custommiddleware "quill/middleware"
)

func registerAdminRoutes(api *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	admin := api.Group("/admin", custommiddleware.RequireAdmin(cfg.Admin.Email))
	admin.GET("/users", handleAdminUsers(container))
	admin.GET("/stats", handleAdminStats(container))
	admin.POST("/send-email", handleAdminSendEmail(container))
}

func handleAdminUsers(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := container.AdminUsecase.ListUsers(c.Request().Context())
		if err != nil {
			return handleError(c, err, "admin_users")
		}
		return c.JSON(http.StatusOK, users)
	}
}

func handleAdminStats(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats, err := container.AdminUsecase.Stats(c.Request().Context())
		if err != nil {
			return handleError(c, err, "admin_stats")
		}
		return c.JSON(http.StatusOK, stats)
	}
}

func handleAdminSendEmail(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload SendEmailPayload
		if err := c.Bind(&payload); err != nil {
			return handleValidationError(c, "invalid request body", "body", "")
		}

		sent, err := container.AdminUsecase.SendEmail(c.Request().Context(), payload.To, payload.Subject, payload.Body)
		if err != nil {
			return handleError(c, err, "admin_send_email")
		}
		return c.JSON(http.StatusOK, sent)
	}
}
