package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/umd-esiea/umd-api/internal/api/metrics"
	"github.com/umd-esiea/umd-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string `json:"message"`
	Debug   string `json:"debug,omitempty"`
}

// errorKinds maps domain sentinels to status codes and metric labels, in
// match order.
var errorKinds = []struct {
	err   error
	code  int
	label string
}{
	{domain.ErrInvalidInput, http.StatusBadRequest, "bad_request"},
	{domain.ErrConflict, http.StatusConflict, "conflict"},
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
	// unknown account and wrong password are indistinguishable to the caller
	{domain.ErrInvalidCredentials, http.StatusNotFound, "invalid_credentials"},
	{domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error kinds to their HTTP status codes.
//   - Logs unexpected errors without leaking them, except as "debug" in development.
//   - Renders a consistent JSON envelope: {"message": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger, development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c, development)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, development bool) (int, errorResponse) {
	// Echo's own errors (bind failures, unknown routes, gateway rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		metrics.ErrorsTotal.WithLabelValues("http").Inc()
		return he.Code, errorResponse{Message: fmt.Sprintf("%v", he.Message)}
	}

	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			metrics.ErrorsTotal.WithLabelValues(k.label).Inc()
			return k.code, errorResponse{Message: publicMessage(err, k.err)}
		}
	}

	metrics.ErrorsTotal.WithLabelValues("internal").Inc()
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	resp := errorResponse{Message: "internal server error"}
	if development {
		resp.Debug = err.Error()
	}
	return http.StatusInternalServerError, resp
}

// publicMessage prefers the ResourceError text over the wrapping chain so
// internal operation names never reach the client.
func publicMessage(err, kind error) string {
	var re *domain.ResourceError
	if errors.As(err, &re) {
		return re.Error()
	}
	return kind.Error()
}
