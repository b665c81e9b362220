package scheduler

import "errors"

// ErrInvalidArgument is returned for inputs outside the fixed option sets
var ErrInvalidArgument = errors.New("invalid argument")
