package models

import "errors"

// Collection and session errors
var (
	ErrNotFound     = errors.New("schema not found")
	ErrInvalidState = errors.New("invalid state")
)
