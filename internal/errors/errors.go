// Package errors provides custom error types for the Budgety API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Refresh token errors.
var (
	ErrRefreshTokenNotFound = &AppError{Code: "REFRESH_TOKEN_NOT_FOUND", Message: "Refresh token not found", StatusCode: http.StatusNotFound}
	ErrTokenRevoked         = &AppError{Code: "TOKEN_REVOKED", Message: "Refresh token has been revoked", StatusCode: http.StatusConflict}
	ErrTokenAlreadyRevoked  = &AppError{Code: "TOKEN_ALREADY_REVOKED", Message: "Token has already been revoked", StatusCode: http.StatusConflict}
)

// Budget period errors.
var (
	ErrBudgetPeriodNotFound = &AppError{Code: "BUDGET_PERIOD_NOT_FOUND", Message: "Budget period not found", StatusCode: http.StatusNotFound}
	ErrDuplicatePeriod      = &AppError{Code: "DUPLICATE_PERIOD", Message: "That budget period has already been registered", StatusCode: http.StatusConflict}
	ErrActivePeriodExists   = &AppError{Code: "ACTIVE_PERIOD_EXISTS", Message: "Deactivate the current active budget period first before activating this period", StatusCode: http.StatusConflict}
	ErrInvalidDate          = &AppError{Code: "INVALID_DATE", Message: "Provided invalid month - year", StatusCode: http.StatusBadRequest}
)

// Category errors.
var (
	ErrCategoryNotFound = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
)

// Budgeted category errors.
var (
	ErrBudgetedCategoryNotFound = &AppError{Code: "BUDGETED_CATEGORY_NOT_FOUND", Message: "Budgeted category not found", StatusCode: http.StatusNotFound}
)

// Expense and earning errors.
var (
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
	ErrEarningNotFound = &AppError{Code: "EARNING_NOT_FOUND", Message: "Earning not found", StatusCode: http.StatusNotFound}
)
