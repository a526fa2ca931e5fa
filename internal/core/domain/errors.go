package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrForbidden            = errors.New("access forbidden")
	ErrProjectNotFound      = errors.New("project not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrSessionNotFound      = errors.New("session not found")
)
