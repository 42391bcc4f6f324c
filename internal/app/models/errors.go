package models

import "errors"

// Domain specific errors for tracking and reward computation.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmptyUserName       = errors.New("user name cannot be empty")
	ErrInvalidCoordinate   = errors.New("coordinate out of valid range")
	ErrProviderUnavailable = errors.New("external provider unavailable")
)
