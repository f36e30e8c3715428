package report

import "errors"

var (
	// ErrUnknownReport indicates a report name outside the catalog.
	ErrUnknownReport = errors.New("unknown report")

	// ErrInvalidRange indicates a non-positive day count or an end date
	// earlier than the start date.
	ErrInvalidRange = errors.New("invalid date range")
)
