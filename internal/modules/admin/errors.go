package admin

import "errors"

var (
	ErrNotFound     = errors.New("entity not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("duplicate within uniqueness scope")
	ErrUnauthorized = errors.New("invalid credentials")
)
