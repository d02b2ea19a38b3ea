package core

import "errors"

// Common errors.
var (
	ErrNotWatchable = errors.New("backend does not support watching")
)
