package directory

import "errors"

var (
	ErrTrainerNotFound = errors.New("trainer not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrInternal        = errors.New("internal error")
)
