package rest

import (
	"hud/utils/errors"
	"hud/utils/logger"

	"github.com/labstack/echo/v4"
)

// handleError logs the failure and maps it onto an HTTP error payload.
func handleError(c echo.Context, err error, operation string) error {
	appErr := errors.AsAppError(err)

	logger.Logger.Error("handler error",
		"operation", operation,
		"error_code", string(appErr.Code),
		"error", err,
	)

	return c.JSON(appErr.HTTPStatusCode(), ErrorResponse{
		Status:  "error",
		Message: appErr.Message,
	})
}
