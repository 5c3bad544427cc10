// Package response writes the JSON envelope every API endpoint answers with.
package response

import (
	"net/http"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every response. Data holds the payload on success
// and an ErrorData on failure.
type Envelope struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	RequestID string `json:"requestId,omitempty"`
}

// ErrorData is the payload of a failed request.
type ErrorData struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g. "VALIDATION_FAILED"
	Details string `json:"details,omitempty"` // Only for 4xx errors other than 401/403
}

// PageData is the JSON shape of a paged listing.
type PageData[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}

// NewPageData converts a page while mapping its content to response DTOs.
func NewPageData[T, R any](page *entity.Page[T], fn func(T) R) PageData[R] {
	mapped := entity.MapPage(page, fn)

	return PageData[R]{
		Content:       mapped.Content,
		PageNumber:    mapped.PageNumber,
		TotalPages:    mapped.TotalPages,
		TotalElements: mapped.TotalElements,
	}
}

// Success returns a successful response.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Envelope{
		Status:    statusCode,
		Message:   message,
		Data:      data,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// OK is Success with status 200.
func OK(c echo.Context, data any, message string) error {
	return Success(c, http.StatusOK, data, message)
}

// Created is Success with status 201.
func Created(c echo.Context, data any, message string) error {
	return Success(c, http.StatusCreated, data, message)
}

// Error returns an error response.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	// Details are not exposed for server errors or authentication/authorization failures
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = ""
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Envelope{
		Status:  statusCode,
		Message: message,
		Data: ErrorData{
			Code:    errorCode,
			Details: details,
		},
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string, details string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, "")
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
