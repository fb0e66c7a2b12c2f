package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"courierdispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	internalErrorMessage = "internal server error"
	upstreamErrorMessage = "payment provider unavailable"
)

// statusOf maps the typed application errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUpstreamFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError replies with the mapped status. Unclassified and upstream errors
// are logged and answered with a fixed message.
func writeError(ctx echo.Context, logger *slog.Logger, err error) error {
	code := statusOf(err)
	message := err.Error()
	switch code {
	case http.StatusInternalServerError:
		message = internalErrorMessage
	case http.StatusBadGateway:
		message = upstreamErrorMessage
	default:
		return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
	}
	logger.ErrorContext(ctx.Request().Context(), "request failed",
		"method", ctx.Request().Method,
		"path", ctx.Path(),
		"status", code,
		"error", err,
	)
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

func badRequestError(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, message)
}

// HTTPErrorHandler renders errors that escape the handlers, such as binding
// failures and unknown routes, in the ErrorResponse shape.
func HTTPErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := internalErrorMessage
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
