package errors

import (
	"fmt"
	"net/http"

	"marketplace/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetailsf formats the detail text.
func (e *BaseError) WithDetailsf(format string, args ...any) *BaseError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// define builds a predefined error with no details.
func define(httpCode int, errorCode, message string) *BaseError {
	return NewBaseError(httpCode, errorCode, message, "")
}

// Predefined errors, grouped by area.
var (
	// User and account errors
	ErrUserNotFound           = define(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrEmailAlreadyRegistered = define(http.StatusConflict, "EMAIL_ALREADY_REGISTERED", "Email is already registered")
	ErrInvalidRole            = define(http.StatusBadRequest, "INVALID_ROLE", "Role cannot be registered")
	ErrUserCreationFailed     = define(http.StatusInternalServerError, "USER_CREATION_FAILED", "Failed to create user")
	ErrUserUpdateFailed       = define(http.StatusInternalServerError, "USER_UPDATE_FAILED", "Failed to update user")
	ErrCannotChangeOwnAccess  = define(http.StatusBadRequest, "CANNOT_CHANGE_OWN_ACCESS", "Admins cannot change their own access")
	ErrNotDeliveryPartner     = define(http.StatusBadRequest, "NOT_DELIVERY_PARTNER", "User is not a delivery partner")

	// Authentication errors
	ErrInvalidCredentials  = define(http.StatusBadRequest, "INVALID_CREDENTIALS", "Incorrect email or password")
	ErrAccountLocked       = define(http.StatusForbidden, "ACCOUNT_LOCKED", "Account is locked")
	ErrWrongOldPassword    = define(http.StatusBadRequest, "WRONG_OLD_PASSWORD", "Old password is incorrect")
	ErrRefreshTokenInvalid = define(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "Refresh token is invalid or expired")
	ErrPasswordHashFailed  = define(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Failed to process password")
	ErrPasswordStrength    = define(http.StatusBadRequest, "PASSWORD_STRENGTH", "Password does not meet strength requirements")
	ErrUnauthorized        = define(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")

	// Catalog errors
	ErrProductNotFound   = define(http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
	ErrStoreNotFound     = define(http.StatusNotFound, "STORE_NOT_FOUND", "Store not found")
	ErrInvalidCategory   = define(http.StatusBadRequest, "INVALID_CATEGORY", "Unknown product category")
	ErrInsufficientStock = define(http.StatusConflict, "INSUFFICIENT_STOCK", "Not enough stock for product")

	// Order errors
	ErrOrderNotFound           = define(http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
	ErrInvalidStatusTransition = define(http.StatusConflict, "INVALID_STATUS_TRANSITION", "Order cannot move to the requested status")
	ErrMixedStoreOrder         = define(http.StatusBadRequest, "MIXED_STORE_ORDER", "All products of an order must come from one store")
	ErrOrderCodeExhausted      = define(http.StatusServiceUnavailable, "ORDER_CODE_EXHAUSTED", "Could not allocate a unique order code")

	// Promotion errors
	ErrPromotionSetNotFound     = define(http.StatusNotFound, "PROMOTION_SET_NOT_FOUND", "Promotion set not found")
	ErrPromotionItemNotFound    = define(http.StatusNotFound, "PROMOTION_ITEM_NOT_FOUND", "Promotion item not found")
	ErrNoAvailableItem          = define(http.StatusNotFound, "NO_AVAILABLE_ITEM", "No unused item left in this promotion")
	ErrInsufficientInventory    = define(http.StatusConflict, "INSUFFICIENT_INVENTORY", "Not enough unused items to remove")
	ErrPromotionNotActive       = define(http.StatusBadRequest, "PROMOTION_NOT_ACTIVE", "Promotion is not active")
	ErrPromotionAlreadyClaimed  = define(http.StatusConflict, "PROMOTION_ALREADY_CLAIMED", "You already hold an item of this promotion")
	ErrPromotionItemUnavailable = define(http.StatusConflict, "PROMOTION_ITEM_UNAVAILABLE", "Promotion item cannot be redeemed")
	ErrInvalidPromotion         = define(http.StatusBadRequest, "INVALID_PROMOTION", "Promotion settings are invalid")

	// Review and feedback errors
	ErrReviewNotFound      = define(http.StatusNotFound, "REVIEW_NOT_FOUND", "Review not found")
	ErrReviewAlreadyExists = define(http.StatusConflict, "REVIEW_ALREADY_EXISTS", "You have already reviewed this product")
	ErrFeedbackNotFound    = define(http.StatusNotFound, "FEEDBACK_NOT_FOUND", "Feedback not found")

	// Notification and device errors
	ErrNotificationNotFound  = define(http.StatusNotFound, "NOTIFICATION_NOT_FOUND", "Notification not found")
	ErrDeviceNotFound        = define(http.StatusNotFound, "DEVICE_NOT_FOUND", "Device not found")
	ErrSearchHistoryNotFound = define(http.StatusNotFound, "SEARCH_HISTORY_NOT_FOUND", "Search history entry not found")

	// Validation errors
	ErrValidationFailed = define(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrInvalidSortField = define(http.StatusBadRequest, "INVALID_SORT_FIELD", "Unsupported sort field")
	ErrInvalidDate      = define(http.StatusBadRequest, "INVALID_DATE", "Dates must use the YYYY-MM-DD format")

	// General errors
	ErrTransactionFailed = define(http.StatusInternalServerError, "TRANSACTION_FAILED", "Database transaction failed")
	ErrInternalError     = define(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	ErrForbidden         = define(http.StatusForbidden, "FORBIDDEN", "Access denied")
	ErrNotFound          = define(http.StatusNotFound, "NOT_FOUND", "Resource not found")
	ErrConflict          = define(http.StatusConflict, "CONFLICT", "Resource conflict")
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
