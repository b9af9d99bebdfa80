package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrResultNotFound     = errors.New("quiz result not found")
	ErrEntryNotFound      = errors.New("entry not found")
	ErrGoalNotFound       = errors.New("goal not found")
	ErrPermissionDenied   = errors.New("permission denied")
)
