package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here so error
// handling in handlers stays predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrNameRequired       = errors.New("name is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
)

// ===== Token Errors =====
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// ===== Tip Errors =====
var (
	ErrTipNotFound      = errors.New("tip not found")
	ErrTitleRequired    = errors.New("title is required")
	ErrBodyRequired     = errors.New("body is required")
	ErrCategoryRequired = errors.New("category is required")
	ErrContentRequired  = errors.New("content is required")
)
