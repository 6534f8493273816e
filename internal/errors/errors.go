package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when a resource id has no matching record.
	ErrNotFound = errors.New("resource not found")
	// ErrEmailTaken is returned when registering an already used email.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountInactive is returned when an inactive user authenticates.
	ErrAccountInactive = errors.New("account is inactive")
	// ErrInvalidToken is returned for any token failure. The cause
	// (expired vs tampered) is deliberately not surfaced.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrUserGone is returned when a valid token references a deleted user.
	ErrUserGone = errors.New("user no longer exists")
	// ErrRoleNameTaken is returned when a role name collides.
	ErrRoleNameTaken = errors.New("a role with this name already exists")
	// ErrSystemRole is returned on attempts to mutate or delete a system role.
	ErrSystemRole = errors.New("system roles cannot be modified or deleted")
	// ErrInvalidRole is returned when an identity's role has no Role record.
	ErrInvalidRole = errors.New("invalid user role")
	// ErrSelfDelete is returned when a user tries to delete their own account.
	ErrSelfDelete = errors.New("you cannot delete your own account")
	// ErrCategoryNameTaken is returned when a category name collides.
	ErrCategoryNameTaken = errors.New("a category with this name already exists")
)

// ErrorResponse is the uniform JSON error body.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HTTPError carries an HTTP status alongside a message.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// MapToHTTP maps domain errors to HTTP errors. Unknown errors become a
// generic 500 so internals never leak into responses.
func MapToHTTP(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrRoleNameTaken),
		errors.Is(err, ErrCategoryNameTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrUserGone):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrAccountInactive),
		errors.Is(err, ErrSystemRole),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrSelfDelete):
		return NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
