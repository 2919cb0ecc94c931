package session

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrEmptyIdentity    = errors.New("identity must not be empty")
)
