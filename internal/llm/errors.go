package llm

import "errors"

var (
	// ErrBackendUnavailable indicates the backend could not be reached.
	ErrBackendUnavailable = errors.New("llm backend unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the response could not be parsed into the
	// expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)

func isTimeout(err error) bool       { return errors.Is(err, ErrTimeout) }
func isUnavailable(err error) bool   { return errors.Is(err, ErrBackendUnavailable) }
func isInvalidOutput(err error) bool { return errors.Is(err, ErrInvalidOutput) }
