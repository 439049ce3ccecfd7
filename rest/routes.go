package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"quill/config"
	"quill/di"
	custommiddleware "quill/middleware"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// 1. Request ID middleware first - すべてのリクエストにIDを付与
	e.Use(custommiddleware.RequestIDMiddleware())

	// 2. Recovery middleware early - パニックを早期に捕捉
	e.Use(middleware.Recover())

	// 3. Security headers
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
	}))

	// 4. CORS - フロントエンドからのクロスオリジン制御
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:4173"},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// 5. Session resolution - 以降のハンドラでユーザーコンテキストが使える
	e.Use(custommiddleware.SessionMiddleware(container.SessionService))

	// 6. Logging middleware - 処理内容をログに記録
	e.Use(custommiddleware.LoggingMiddleware(container.Logger))

	// 7. Compression last
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/v1/health" || c.Path() == "/metrics"
		},
	}))

	api := e.Group("/api")

	registerPostRoutes(api, container, cfg)
	registerArticleRoutes(api, container)
	registerAuthRoutes(api, container)
	registerUserRoutes(api, container)
	registerAdminRoutes(api, container, cfg)
	registerRevalidateRoutes(api, container, cfg)

	e.GET("/v1/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
