package domain_interaction

import "errors"

var (
	ErrInvalidStatus = errors.New("invalid library status")
	ErrInvalidScore  = errors.New("review score must be between 1 and 5")
	ErrEmptyReview   = errors.New("review needs a score or a body")
)
