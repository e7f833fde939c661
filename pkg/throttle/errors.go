package throttle

import "errors"

var (
	// ErrInvalidRate is returned when the rate is not a positive count
	ErrInvalidRate = errors.New("rate must be greater than zero")

	// ErrInvalidTimeUnit is returned when the time unit is not a positive duration
	ErrInvalidTimeUnit = errors.New("time unit must be greater than zero")

	// ErrIntervalTooSmall is returned when time_unit / rate rounds down to zero
	ErrIntervalTooSmall = errors.New("dispatch interval rounds down to zero")

	// ErrNilFunc is returned when scheduling a nil callback
	ErrNilFunc = errors.New("task callback cannot be nil")
)
