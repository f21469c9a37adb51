package common

import "errors"

// The error set is open: new sentinel values may be added for new
// distribution families or validation failures, so callers should match
// with errors.Is and treat any unknown error as a failed computation.
var (
	ErrorInvalidValue = errors.New("invalid value")

	// paired samples (or bin ranges and counts) have different lengths
	ErrorLengthMismatch = errors.New("lengths of samples are different")

	ErrorSignificanceInvalid = errors.New("significance must be between 0.0 and 1.0")

	// freedom degrees cannot initialize the test distribution
	ErrorFreedomDegreesInvalid = errors.New("freedom degrees led to fail in initialization of the distribution")

	// estimated parameters cannot construct a valid distribution
	ErrorDistributionParametersInvalid = errors.New("distribution parameters are invalid")
)
