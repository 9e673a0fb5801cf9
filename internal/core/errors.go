package core

import "errors"

var (
	// ErrInvalidDimension is returned for non-positive rows, cols, width or height.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidIterationBudget is returned when maxIter is not positive.
	ErrInvalidIterationBudget = errors.New("invalid iteration budget")
	// ErrInvalidViewWindow is returned when a view window has max <= min on an axis.
	ErrInvalidViewWindow = errors.New("invalid view window")
)
