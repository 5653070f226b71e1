// Package handler contains the HTTP handlers of the catalog API.
package handler

import (
	"net/http"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/delivery/http/response"
	"catalog/internal/delivery/http/validator"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"}, "Service is healthy")
}

// PageQuery is the zero-based paging shared by every list endpoint.
type PageQuery struct {
	Page int `query:"page" validate:"min=0"`
	Size int `query:"size" validate:"min=0"`
}

func (q PageQuery) request() usecase.PageRequest {
	return usecase.PageRequest{Page: q.Page, Size: q.Size}
}

// bind decodes the request into req and runs its validate tags. It writes the
// error response itself and reports false when the handler must stop.
func bind(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}
	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, validator.Describe(err))
	}

	return true, nil
}

// actor returns the caller stored by AuthMiddleware.Authenticate.
func actor(c echo.Context) (usecase.Actor, error) {
	caller, ok := deliverycontext.GetActor(c)
	if !ok || caller.ID == "" {
		return usecase.Actor{}, domainerrors.ErrUnauthorized
	}

	return caller, nil
}

func noContent(c echo.Context, message string) error {
	return response.Success(c, http.StatusOK, nil, message)
}
