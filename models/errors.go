package models

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrDuplicateInteraction = errors.New("interaction already recorded")
	ErrAlreadyMatched       = errors.New("match already exists")
	ErrProfileNotFound      = errors.New("candidate profile not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrNotFound             = errors.New("not found")
)
