package middleware

import (
	"log/slog"
	"net/http"

	"hotelhrm/internal/delivery/api/response"
	deliverycontext "hotelhrm/internal/delivery/context"
	domainerrors "hotelhrm/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const internalErrorMessage = "Internal server error, please try again later"

// echoErrorCodes names the framework-level failures that never reach a handler.
var echoErrorCodes = map[int]string{
	http.StatusNotFound:              "ROUTE_NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
	http.StatusUnsupportedMediaType:  "UNSUPPORTED_MEDIA_TYPE",
}

// ErrorMiddleware renders every handler error as the JSON error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Domain errors keep
// their code; framework errors get a code by status; anything else is a 500
// whose cause is logged but not returned.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if appErr, ok := asAppError(err); ok {
		status := appErr.HTTPCode()
		if status >= http.StatusInternalServerError {
			m.log(c).Error("request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
			_ = response.Error(c, status, appErr.ErrorCode(), internalErrorMessage, nil)

			return
		}

		var details any
		if d := appErr.Details(); d != "" {
			details = d
		}
		_ = response.Error(c, status, appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code, ok := echoErrorCodes[httpErr.Code]
		if !ok {
			code = "HTTP_ERROR"
		}
		message, _ := httpErr.Message.(string)
		_ = response.Error(c, httpErr.Code, code, message, nil)

		return
	}

	m.log(c).Error("unhandled error",
		slog.Any("error", err),
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
	)
	_ = response.InternalServerError(c, "INTERNAL_ERROR", internalErrorMessage)
}

func asAppError(err error) (domainerrors.AppError, bool) {
	var appErr domainerrors.AppError
	ok := errors.As(err, &appErr)

	return appErr, ok
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}
