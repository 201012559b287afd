package domain

import "errors"

var (
	ErrInvalidProfile = errors.New("invalid profile")
	ErrInvalidTask    = errors.New("invalid task")
)
