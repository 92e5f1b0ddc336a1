package apperrors

import (
	"net/http"
)

// Predefined domain errors. Messages follow the public API contract: the
// client always receives {"message": <Message>}.

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so a
	// caller cannot probe which accounts exist.
	ErrInvalidCredentials = New(
		CodeInvalidCredentials,
		"auth",
		"Invalid credentials",
		http.StatusBadRequest,
	)

	// ErrEmailAlreadyExists is returned on registration with a taken email.
	ErrEmailAlreadyExists = New(
		CodeAlreadyExists,
		"auth",
		"User already exists with this email",
		http.StatusBadRequest,
	)

	// ErrUserInactive means the identity is valid but the account has not
	// been activated yet.
	ErrUserInactive = New(
		CodeForbidden,
		"auth",
		"User is not active",
		http.StatusForbidden,
	)

	// ErrAccessDenied is the ownership/role policy rejection.
	ErrAccessDenied = New(
		CodeForbidden,
		"policy",
		"Access denied",
		http.StatusForbidden,
	)

	ErrUserNotFound = New(
		CodeNotFound,
		"users",
		"User not found",
		http.StatusNotFound,
	)

	ErrAdNotFound = New(
		CodeNotFound,
		"ads",
		"Ad not found",
		http.StatusNotFound,
	)

	ErrInvalidAdID = New(
		CodeValidationFailed,
		"ads",
		"Invalid ad ID",
		http.StatusBadRequest,
	)

	ErrInvalidUserID = New(
		CodeValidationFailed,
		"users",
		"Invalid user ID",
		http.StatusBadRequest,
	)
)

// DatabaseError wraps a persistence failure. The underlying error is logged
// at the boundary, never sent to the client verbatim.
func DatabaseError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "system", "Internal server error", http.StatusInternalServerError)
}
