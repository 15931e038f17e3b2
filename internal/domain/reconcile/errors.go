package reconcile

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid attendance engine configuration")
	ErrEmptyRoster          = errors.New("roster is empty")
)
