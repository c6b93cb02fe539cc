package database

import "errors"

// ErrNotConnected is returned by a Driver used before Connect succeeded.
var ErrNotConnected = errors.New("not connected")
