package domain

import "errors"

var (
	ErrInvalidBirthDate    = errors.New("birth date must be formatted as YYYY-MM-DD")
	ErrSearchNotConfigured = errors.New("search API key not configured")
	ErrUpstreamSearch      = errors.New("upstream search failure")
	ErrLLMNotConfigured    = errors.New("LLM API key not configured")
	ErrUpstreamLLM         = errors.New("upstream LLM failure")
	ErrEmptyCompletion     = errors.New("LLM returned no content")
)
