package holiday

import "errors"

var (
	// ErrUnavailable indicates the holiday API could not be reached.
	ErrUnavailable = errors.New("holiday api unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("holiday api request timed out")

	// ErrInvalidResponse indicates the response body could not be decoded
	// into holidays.
	ErrInvalidResponse = errors.New("invalid holiday api response")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("holiday api retry attempts exhausted")
)
