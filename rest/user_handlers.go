package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"quill/di"
	"quill/domain"
	custommiddleware "quill/middleware"
)

func registerUserRoutes(api *echo.Group, container *di.ApplicationComponents) {
	user := api.Group("/user", custommiddleware.RequireAuth())
	user.GET("/database", handleGetCollection(container))
	user.POST("/database", handleEnsureCollection(container))
}

// GET returns the caller's collection id without creating one.
func handleGetCollection(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return handleError(c, domain.ErrUnauthorized, "get_collection")
		}

		collectionID, err := container.ProvisionUsecase.GetCollectionID(c.Request().Context(), user.Email)
		if err != nil {
			return handleError(c, err, "get_collection")
		}
		return c.JSON(http.StatusOK, CollectionResponse{
			CollectionID: collectionID,
			Provisioned:  collectionID != "",
		})
	}
}

// POST provisions the caller's collection if it does not exist yet.
func handleEnsureCollection(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return handleError(c, domain.ErrUnauthorized, "ensure_collection")
		}

		collectionID, err := container.ProvisionUsecase.EnsureCollection(c.Request().Context(), user.Email, user.Name)
		if err != nil {
			return handleError(c, err, "ensure_collection")
		}
		return c.JSON(http.StatusOK, CollectionResponse{
			CollectionID: collectionID,
			Provisioned:  true,
		})
	}
}
