// Package soil holds the measurement value objects shared by the soil
// classifiers: Atterberg limits and the particle size distribution. Values
// are validated once at construction and read-only afterwards; a fresh
// instance is built for every classification call.
package soil

import (
	"fmt"
	"math"
)

// AtterbergLimits carries the plasticity measurements of the fines fraction
// and answers plasticity-chart queries for the classifiers. All values are
// moisture contents in percent.
type AtterbergLimits struct {
	LiquidLimit  float64
	PlasticLimit float64
}

// NewAtterbergLimits validates and builds a limits pair. Both limits must be
// non-negative and the liquid limit must exceed the plastic limit.
func NewAtterbergLimits(liquidLimit, plasticLimit float64) (AtterbergLimits, error) {
	if liquidLimit < 0 || plasticLimit < 0 {
		return AtterbergLimits{}, fmt.Errorf("%w: limits must be non-negative (LL=%.2f, PL=%.2f)",
			ErrInvalidLimits, liquidLimit, plasticLimit)
	}
	if liquidLimit <= plasticLimit {
		return AtterbergLimits{}, fmt.Errorf("%w: liquid limit %.2f must exceed plastic limit %.2f",
			ErrInvalidLimits, liquidLimit, plasticLimit)
	}
	return AtterbergLimits{LiquidLimit: liquidLimit, PlasticLimit: plasticLimit}, nil
}

// PlasticityIndex is the width of the plastic range, LL - PL.
func (a AtterbergLimits) PlasticityIndex() float64 {
	return a.LiquidLimit - a.PlasticLimit
}

// ALine evaluates the empirical chart boundary PI = 0.73(LL - 20) separating
// clay-like from silt-like fine soils.
func (a AtterbergLimits) ALine() float64 {
	return 0.73 * (a.LiquidLimit - 20.0)
}

// AboveALine reports whether the sample plots above the A-line, i.e. behaves
// as a clay rather than a silt.
func (a AtterbergLimits) AboveALine() bool {
	return a.PlasticityIndex() > a.ALine()
}

// InHatchedZone reports whether the sample plots on the A-line within a 1%
// relative tolerance. Samples in this band straddle the clay/silt boundary
// and take a dual symbol.
func (a AtterbergLimits) InHatchedZone() bool {
	pi := a.PlasticityIndex()
	aline := a.ALine()
	return math.Abs(pi-aline) <= 0.01*math.Max(math.Abs(pi), math.Abs(aline))
}

// LiquidityIndex locates a natural moisture content within the plastic
// range: (w - PL) / PI. Values above 1 indicate a soil wetter than its
// liquid limit.
func (a AtterbergLimits) LiquidityIndex(moisture float64) float64 {
	return (moisture - a.PlasticLimit) / a.PlasticityIndex()
}

// ConsistencyIndex is the complementary ratio (LL - w) / PI used by
// consistency estimators.
func (a AtterbergLimits) ConsistencyIndex(moisture float64) float64 {
	return (a.LiquidLimit - moisture) / a.PlasticityIndex()
}
