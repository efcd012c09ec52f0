package match

import "errors"

var (
	// ErrInvalidMove is returned by Play when the human's token does not
	// parse. No state is changed.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidPlayer is returned by Play when the requested AI kind is not
	// registered.
	ErrInvalidPlayer = errors.New("invalid player kind")
)
