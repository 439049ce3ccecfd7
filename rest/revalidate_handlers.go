package rest

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"quill/config"
	"quill/di"
	"quill/utils/errors"
)

// 秘密未指定時に無効化されるデフォルトパス
var defaultRevalidatePaths = []string{"/", "/blog", "/tags", "/categories"}

func registerRevalidateRoutes(api *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	api.POST("/revalidate", handleRevalidate(container, cfg))
	api.GET("/revalidate", handleRevalidateProbe())
}

// handleRevalidate clears the aggregation caches. The shared secret in
// the body must match REVALIDATION_SECRET.
func handleRevalidate(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload RevalidatePayload
		if err := c.Bind(&payload); err != nil {
			return handleValidationError(c, "invalid request body", "body", "")
		}

		if cfg.Auth.RevalidationSecret == "" ||
			subtle.ConstantTimeCompare([]byte(payload.Secret), []byte(cfg.Auth.RevalidationSecret)) != 1 {
			appErr := errors.UnauthorizedError("invalid revalidation secret")
			return c.JSON(http.StatusUnauthorized, appErr.ToHTTPResponse())
		}

		container.FetchPostsUsecase.Invalidate()

		paths := payload.Paths
		if len(paths) == 0 {
			paths = defaultRevalidatePaths
		}
		return c.JSON(http.StatusOK, RevalidateResponse{
			Revalidated: true,
			Paths:       paths,
			Tags:        payload.Tags,
		})
	}
}

// GET is a liveness probe for the revalidation webhook.
func handleRevalidateProbe() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	}
}
