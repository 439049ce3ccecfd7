package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"quill/di"
	"quill/domain"
	custommiddleware "quill/middleware"
)

func registerArticleRoutes(api *echo.Group, container *di.ApplicationComponents) {
	// 公開記事はセッションなしでも読める
	api.GET("/articles/:id", handleGetArticle(container))

	articles := api.Group("/articles", custommiddleware.RequireAuth())
	articles.GET("", handleListArticles(container))
	articles.POST("", handleCreateArticle(container))
	articles.PUT("/:id", handleUpdateArticle(container))
	articles.DELETE("/:id", handleArchiveArticle(container))
}

func handleListArticles(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return handleError(c, domain.ErrUnauthorized, "list_articles")
		}

		articles, err := container.ListArticlesUsecase.Execute(c.Request().Context(), user, c.QueryParam("author"))
		if err != nil {
			return handleError(c, err, "list_articles")
		}
		return c.JSON(http.StatusOK, articles)
	}
}

func handleCreateArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return handleError(c, domain.ErrUnauthorized, "create_article")
		}

		var payload ArticlePayload
		if err := c.Bind(&payload); err != nil {
			return handleValidationError(c, "invalid request body", "body", "")
		}

		draft := domain.ArticleDraft{
			Title:       payload.Title,
			Description: payload.Description,
			Content:     payload.Content,
			Tags:        payload.Tags,
			Category:    payload.Category,
			CoverImage:  payload.CoverImage,
			Status:      payload.Status,
			Featured:    payload.Featured,
		}

		post, err := container.CreateArticleUsecase.Execute(c.Request().Context(), user, draft)
		if err != nil {
			return handleError(c, err, "create_article")
		}
		return c.JSON(http.StatusCreated, post)
	}
}

func handleGetArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		// 未認証でも公開記事は読める
		user, _ := currentUser(c)

		post, err := container.GetArticleUsecase.Execute(c.Request().Context(), user, c.Param("id"))
		if err != nil {
			return handleError(c, err, "get_article")
		}
		return c.JSON(http.StatusOK, post)
	}
}

func handleUpdateArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return handleError(c, domain.ErrUnauthorized, "update_article")
		}

		var payload ArticleUpdatePayload
		if err := c.Bind(&payload); err != nil {
			return handleValidationError(c, "invalid request body", "body", "")
		}

		update := domain.ArticleUpdate{
			Title:       payload.Title,
			Description: payload.Description,
			Content:     payload.Content,
			Tags:        payload.Tags,
			Category:    payload.Category,
			CoverImage:  payload.CoverImage,
			Status:      payload.Status,
			Featured:    payload.Featured,
			Published:   payload.Published,
		}

		post, err := container.UpdateArticleUsecase.Execute(c.Request().Context(), user, c.Param("id"), update)
		if err != nil {
			return handleError(c, err, "update_article")
		}
		return c.JSON(http.StatusOK, post)
	}
}

func handleArchiveArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return handleError(c, domain.ErrUnauthorized, "archive_article")
		}

		if err := container.ArchiveArticleUsecase.Execute(c.Request().Context(), user, c.Param("id")); err != nil {
			return handleError(c, err, "archive_article")
		}
		return c.NoContent(http.StatusNoContent)
	}
}
