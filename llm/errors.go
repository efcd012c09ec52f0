package llm

import "errors"

var (
	ErrMissingAPIKey = errors.New("api key not configured")
	ErrEmptyResponse = errors.New("completion returned no choices")
)
