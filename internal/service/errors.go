package service

import "errors"

// Caller-recoverable errors. Handlers map each sentinel to a fixed status
// code and message; anything unmatched becomes a 500.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidID     = errors.New("invalid id")
	ErrNameRequired  = errors.New("name required")
	ErrDuplicateName = errors.New("folder name already exists")

	ErrTitleRequired  = errors.New("title required")
	ErrFolderNotFound = errors.New("folder not found")

	ErrUsernameRequired   = errors.New("username required")
	ErrPasswordRequired   = errors.New("password required")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrUserExists         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
