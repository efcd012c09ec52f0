package session

import "errors"

// ErrNotFound is returned for operations addressed to an unknown session id.
var ErrNotFound = errors.New("session not found")
