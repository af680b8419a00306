package soil

import "errors"

// Sentinel errors for measurement validation. Constructors wrap them with
// the offending values; callers match with errors.Is.
var (
	// ErrInvalidLimits reports Atterberg limits outside their domain
	// (negative values, or a liquid limit not exceeding the plastic limit).
	ErrInvalidLimits = errors.New("invalid atterberg limits")

	// ErrInvalidPSD reports size fractions outside their domain (negative
	// values, or fines and sand summing past 100%).
	ErrInvalidPSD = errors.New("invalid particle size distribution")

	// ErrSizeDistribution reports characteristic diameters that do not
	// describe a usable gradation curve (missing or non-increasing values).
	ErrSizeDistribution = errors.New("inconsistent size distribution")

	// ErrInvalidInput reports scalar classification inputs outside their
	// domain, such as a negative plasticity index or fines content.
	ErrInvalidInput = errors.New("invalid input")
)
