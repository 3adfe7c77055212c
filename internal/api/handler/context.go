package handler

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/umd-esiea/umd-api/internal/api/middleware"
	"github.com/umd-esiea/umd-api/internal/core/domain"
)

// ctxIdentity returns the caller stored by the Auth middleware. Its absence
// means the route was mounted outside the gateway, which is a 401 rather than
// a panic further down.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// bindAndValidate decodes the request body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}

// jsonName reports fields by their JSON name in validation messages.
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}
