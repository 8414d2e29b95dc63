package domain

import "errors"

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrMembershipNotFound = errors.New("membership not found")
	ErrPackageNotFound    = errors.New("subscription package not found")
	ErrFoodNotFound       = errors.New("food not found")

	ErrUnknownField  = errors.New("unknown field")
	ErrReadOnlyField = errors.New("field is read-only")
	ErrInvalidValue  = errors.New("invalid value")

	ErrConflict = errors.New("document was modified concurrently")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrForbidden          = errors.New("access forbidden")
)
