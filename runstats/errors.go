package runstats

import "errors"

var (
	// ErrInsufficientData is returned by statistic queries that require
	// more observations than have been pushed so far.
	ErrInsufficientData = errors.New("too few observations for the requested statistic")

	// ErrDegenerateInput is returned when a statistic's denominator
	// collapses to zero because every relevant observation is identical.
	ErrDegenerateInput = errors.New("statistic undefined for zero variance input")
)
