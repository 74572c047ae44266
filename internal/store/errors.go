package store

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidID       = errors.New("invalid account id")
)
