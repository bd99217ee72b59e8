// Package errors defines the application error taxonomy shared by the
// usecase and delivery layers.
package errors

import (
	"net/http"

	"tastebook/internal/errors"
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

// Predefined error types
var (
	// NotFound: a referenced entity is absent.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrRecipeNotFound = NewBaseError(
		http.StatusNotFound,
		"RECIPE_NOT_FOUND",
		"recipe not found",
		"",
	)

	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"review not found",
		"",
	)

	// Unauthorized: bad/missing credential or a deleted account.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"name or password is incorrect",
		"",
	)

	ErrAccountDeleted = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_DELETED",
		"account has been deleted",
		"",
	)

	// Forbidden: ownership violations.
	ErrNotRecipeOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_RECIPE_OWNER",
		"only the recipe owner may perform this operation",
		"",
	)

	ErrNotReviewAuthor = NewBaseError(
		http.StatusForbidden,
		"NOT_REVIEW_AUTHOR",
		"only the review author may perform this operation",
		"",
	)

	ErrSelfLike = NewBaseError(
		http.StatusForbidden,
		"SELF_LIKE",
		"cannot like your own review",
		"",
	)

	// InvalidInput: validation failures detected before any write.
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"input validation failed",
		"",
	)

	ErrInvalidRating = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RATING",
		"rating must be between 1 and 5",
		"",
	)

	ErrInvalidPagination = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAGINATION",
		"page must be >= 1 and size must be >= 1",
		"",
	)

	ErrSelfFollow = NewBaseError(
		http.StatusBadRequest,
		"SELF_FOLLOW",
		"cannot follow yourself",
		"",
	)

	ErrFolloweeNotFollowable = NewBaseError(
		http.StatusBadRequest,
		"FOLLOWEE_NOT_FOLLOWABLE",
		"followee does not exist or is deleted",
		"",
	)

	// Conflict: duplicate unique values.
	ErrNameTaken = NewBaseError(
		http.StatusConflict,
		"NAME_TAKEN",
		"display name is already registered",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected storage failure as an internal
// error, preserving the original cause in the details.
func NewDatabaseExecuteError(cause error, message string) *BaseError {
	details := ""
	if cause != nil {
		details = cause.Error()
	}

	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		details,
	)
}
