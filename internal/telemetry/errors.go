package telemetry

import "errors"

var (
	// ErrUnavailable indicates no project snapshot exists at the
	// configured location.
	ErrUnavailable = errors.New("project telemetry unavailable")

	// ErrTimeout indicates the snapshot read exceeded the configured
	// timeout.
	ErrTimeout = errors.New("telemetry read timed out")

	// ErrMalformed indicates the snapshot exists but could not be parsed
	// into a project state.
	ErrMalformed = errors.New("malformed telemetry snapshot")
)
