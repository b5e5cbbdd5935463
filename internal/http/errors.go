package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-manager.com/task-manager/internal/data_models"
	apperrors "task-manager.com/task-manager/internal/errors"
)

// ErrorHandler renders every error as {"error": ..., "details": ...}.
// Errors that are not part of the API's error set are logged and reported
// as a bare 500.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := errorResponse(err)
		switch {
		case status == http.StatusInternalServerError:
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"error", err,
			)
		case apperrors.IsValidation(err):
			logger.DebugContext(c.Request().Context(), "request rejected",
				"method", c.Request().Method,
				"path", c.Path(),
				"invalid_fields", len(body.Details),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.Error("failed to write error response", "error", err)
		}
	}
}

func errorResponse(err error) (int, dto.ErrorResponse) {
	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode, dto.ErrorResponse{Error: appErr.Message, Details: appErr.Details}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = fmt.Sprint(httpErr.Message)
		}
		return httpErr.Code, dto.ErrorResponse{Error: msg}
	}

	return http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"}
}
