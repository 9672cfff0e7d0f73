package llm

import "errors"

var (
	// ErrUnavailable indicates the completion endpoint is unreachable.
	ErrUnavailable = errors.New("completion endpoint unavailable")

	// ErrTimeout indicates the completion request exceeded the configured
	// timeout.
	ErrTimeout = errors.New("completion request timed out")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("completion retry attempts exhausted")

	// ErrEmptyCompletion indicates the provider returned no choices or
	// non-text content.
	ErrEmptyCompletion = errors.New("provider returned an empty completion")
)
