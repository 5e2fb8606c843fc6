package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/errors"
)

// All handlers send errors through SendError and SendSystemError so every
// failure carries the standard envelope and trace ID. Do not use
// echo.NewHTTPError or raw c.JSON for errors.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError sends a generic 500 response and logs the internal error.
// The underlying error never reaches the client.
func SendSystemError(c echo.Context, logger zerolog.Logger, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)

	logger.Error().
		Err(internal).
		Str("trace_id", traceID).
		Str("path", c.Request().URL.Path).
		Str("method", c.Request().Method).
		Msg("request failed")

	return c.JSON(http.StatusInternalServerError, errorResponse)
}
