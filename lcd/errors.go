package lcd

import "errors"

var (
	// ErrTimeout is returned when the controller does not acknowledge a request
	// within the configured poll budget.
	ErrTimeout = errors.New("lcd: request not acknowledged")

	// ErrTooManyParams is returned for commands that would overflow the
	// parameter registers.
	ErrTooManyParams = errors.New("lcd: too many parameters")

	// ErrParamCount is returned when a declared parameter count exceeds the
	// parameters supplied.
	ErrParamCount = errors.New("lcd: parameter count exceeds parameters")
)
