package series

import "errors"

var (
	ErrInvalidWindow    = errors.New("window size must be a positive integer")
	ErrEmptyInput       = errors.New("input series is empty")
	ErrInvalidData      = errors.New("input series contains invalid data")
	ErrInvalidThreshold = errors.New("threshold must be a non-negative number")
	ErrDegenerateSeries = errors.New("series has zero standard deviation")
)
