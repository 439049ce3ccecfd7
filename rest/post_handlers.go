package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"quill/config"
	"quill/di"
)

const defaultRelatedLimit = 3

func registerPostRoutes(api *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	posts := api.Group("/posts")
	posts.GET("", handleListPosts(container, cfg))
	posts.GET("/featured", handleFeaturedPosts(container))
	posts.GET("/:slug", handleGetPost(container))
	posts.GET("/:slug/related", handleRelatedPosts(container))

	api.GET("/tags", handleListTags(container))
	api.GET("/tags/:tag/posts", handlePostsByTag(container))
	api.GET("/categories", handleListCategories(container))
	api.GET("/categories/:category/posts", handlePostsByCategory(container))

	api.GET("/search", handleSearch(container))
}

func handleListPosts(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Cache-Control",
			fmt.Sprintf("public, max-age=%d", int(cfg.Cache.BlogTTL.Seconds())))

		posts, err := container.FetchPostsUsecase.ListAll(c.Request().Context())
		if err != nil {
			return handleError(c, err, "list_posts")
		}
		return c.JSON(http.StatusOK, posts)
	}
}

func handleFeaturedPosts(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		posts, err := container.FetchPostsUsecase.Featured(c.Request().Context())
		if err != nil {
			return handleError(c, err, "featured_posts")
		}
		return c.JSON(http.StatusOK, posts)
	}
}

func handleGetPost(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		post, err := container.FetchPostsUsecase.GetBySlug(c.Request().Context(), c.Param("slug"))
		if err != nil {
			return handleError(c, err, "get_post")
		}
		return c.JSON(http.StatusOK, post)
	}
}

func handleRelatedPosts(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit := defaultRelatedLimit
		if raw := c.QueryParam("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				return handleValidationError(c, "invalid limit parameter", "limit", raw)
			}
			limit = parsed
		}

		posts, err := container.FetchPostsUsecase.Related(c.Request().Context(), c.Param("slug"), limit)
		if err != nil {
			return handleError(c, err, "related_posts")
		}
		return c.JSON(http.StatusOK, posts)
	}
}

func handleListTags(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		tags, err := container.FetchPostsUsecase.AllTags(c.Request().Context())
		if err != nil {
			return handleError(c, err, "list_tags")
		}
		return c.JSON(http.StatusOK, TagListResponse{Tags: tags})
	}
}

func handlePostsByTag(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		posts, err := container.FetchPostsUsecase.ByTag(c.Request().Context(), c.Param("tag"))
		if err != nil {
			return handleError(c, err, "posts_by_tag")
		}
		return c.JSON(http.StatusOK, posts)
	}
}

func handleListCategories(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		categories, err := container.FetchPostsUsecase.AllCategories(c.Request().Context())
		if err != nil {
			return handleError(c, err, "list_categories")
		}
		return c.JSON(http.StatusOK, CategoryListResponse{Categories: categories})
	}
}

func handlePostsByCategory(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		posts, err := container.FetchPostsUsecase.ByCategory(c.Request().Context(), c.Param("category"))
		if err != nil {
			return handleError(c, err, "posts_by_category")
		}
		return c.JSON(http.StatusOK, posts)
	}
}

func handleSearch(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit := 0
		if raw := c.QueryParam("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				return handleValidationError(c, "invalid limit parameter", "limit", raw)
			}
			limit = parsed
		}

		posts, err := container.SearchPostsUsecase.Execute(c.Request().Context(), c.QueryParam("q"), limit)
		if err != nil {
			return handleError(c, err, "search_posts")
		}
		return c.JSON(http.StatusOK, posts)
	}
}
