package rest

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"quill/domain"
	"quill/utils/errors"
	"quill/utils/logger"
)

// handleError maps an error onto the wire. AppErrors carry their own
// status; domain sentinels are translated; anything else is a 500.
func handleError(c echo.Context, err error, operation string) error {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		switch {
		case stderrors.Is(err, domain.ErrPostNotFound), stderrors.Is(err, domain.ErrArticleNotFound):
			appErr = errors.NotFoundError("not found", nil)
		case stderrors.Is(err, domain.ErrUnauthorized):
			appErr = errors.UnauthorizedError("unauthorized")
		case stderrors.Is(err, domain.ErrForbidden):
			appErr = errors.ForbiddenError("forbidden")
		case stderrors.Is(err, domain.ErrRemoteNotConfigured):
			appErr = errors.NotConfiguredError("remote workspace is not configured")
		default:
			appErr = errors.UnknownError("internal server error", err, nil)
		}
	}

	errors.LogError(logger.Logger, err, operation)
	return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
}

func handleValidationError(c echo.Context, message, field, value string) error {
	appErr := errors.ValidationError(message, map[string]interface{}{
		"field": field,
		"value": value,
	})
	return c.JSON(http.StatusBadRequest, appErr.ToHTTPResponse())
}

// currentUser pulls the authenticated session from the request context.
func currentUser(c echo.Context) (*domain.UserContext, error) {
	return domain.GetUserFromContext(c.Request().Context())
}
