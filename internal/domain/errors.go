package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrUnknownUser       = errors.New("unknown user")
	ErrBadCredentials    = errors.New("bad credentials")
	ErrNoSession         = errors.New("no active session")
	ErrQuestionNotFound  = errors.New("question not found")
	ErrInvalidInput      = errors.New("invalid input")
)
