package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")

	ErrPostNotFound     = errors.New("post not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")

	// ErrNotOwner signals an ownership mismatch on a mutation. The HTTP layer
	// maps it to 401 rather than 403 to stay wire-compatible with existing
	// clients; role failures keep 403.
	ErrNotOwner = errors.New("not authorized to modify this resource")

	// ErrTooManyAttempts signals the login rate limiter tripped.
	ErrTooManyAttempts = errors.New("too many login attempts")
)
