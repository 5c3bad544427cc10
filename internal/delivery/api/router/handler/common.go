// Package handler contains the HTTP handlers of the marketplace API.
package handler

import (
	"net/http"

	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// principal returns the authenticated caller or ErrUnauthorized.
func principal(c echo.Context) (deliverycontext.Principal, error) {
	p, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return deliverycontext.Principal{}, domainerrors.ErrUnauthorized
	}

	return p, nil
}

// uuidParam parses a path parameter as a UUID.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetailsf("%s must be a UUID", name)
	}

	return id, nil
}

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge {
			return err
		}

		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return errors.WithStack(c.Validate(req))
}

// pageQuery reads page, elementsPerPage, filter and sortBy from the query string.
func pageQuery(c echo.Context) (usecase.PageInput, error) {
	var in usecase.PageInput
	err := echo.QueryParamsBinder(c).
		Int("page", &in.Page).
		Int("elementsPerPage", &in.ElementsPerPage).
		String("filter", &in.Filter).
		String("sortBy", &in.SortBy).
		BindError()
	if err != nil {
		return usecase.PageInput{}, domainerrors.ErrValidationFailed.WithDetails("page and elementsPerPage must be integers")
	}

	return in, nil
}

// dateRangeQuery reads the from and to query parameters.
func dateRangeQuery(c echo.Context) usecase.DateRangeInput {
	return usecase.DateRangeInput{
		From: c.QueryParam("from"),
		To:   c.QueryParam("to"),
	}
}

// optionalUUIDQuery parses a query parameter when present.
func optionalUUIDQuery(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetailsf("%s must be a UUID", name)
	}

	return &id, nil
}
