package internals

import "errors"

// Statistics computation fails fast on malformed input instead of producing
// silently wrong aggregates. Callers match these with errors.Is.
var (
	ErrInvalidBaseline  = errors.New("baseline has zero total miles")
	ErrInvalidTripTotal = errors.New("trips have zero total miles")
	ErrMissingBaseline  = errors.New("user has no baseline")
	ErrNegativeDistance = errors.New("trip has negative distance")
)
