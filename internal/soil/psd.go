package soil

import "fmt"

// CoarseType labels the dominant coarse fraction of a sample.
type CoarseType string

const (
	Gravel CoarseType = "G"
	Sand   CoarseType = "S"
)

// Grade rates gradation quality.
type Grade string

const (
	WellGraded   Grade = "W"
	PoorlyGraded Grade = "P"
)

// SizeDistribution carries the characteristic particle diameters read off
// the gradation curve, in mm.
type SizeDistribution struct {
	D10 float64
	D30 float64
	D60 float64
}

// CoeffOfUniformity is Cu = D60/D10.
func (s SizeDistribution) CoeffOfUniformity() float64 {
	return s.D60 / s.D10
}

// CoeffOfCurvature is Cc = D30^2 / (D60 * D10).
func (s SizeDistribution) CoeffOfCurvature() float64 {
	return (s.D30 * s.D30) / (s.D60 * s.D10)
}

// PSD describes the particle size distribution of a sample as percent
// fractions. Gravel is always derived from fines and sand so the three
// fractions cannot drift apart. The gradation curve is optional: samples
// without one are a valid ungraded state, not an error.
type PSD struct {
	Fines float64
	Sand  float64

	sizes *SizeDistribution
}

// NewPSD validates and builds an ungraded distribution.
func NewPSD(fines, sand float64) (PSD, error) {
	if fines < 0 || sand < 0 {
		return PSD{}, fmt.Errorf("%w: fractions must be non-negative (fines=%.2f, sand=%.2f)",
			ErrInvalidPSD, fines, sand)
	}
	if fines+sand > 100 {
		return PSD{}, fmt.Errorf("%w: fines %.2f + sand %.2f exceeds 100%%",
			ErrInvalidPSD, fines, sand)
	}
	return PSD{Fines: fines, Sand: sand}, nil
}

// NewGradedPSD builds a distribution with a measured gradation curve. All
// three diameters must be present and strictly increasing; anything else is
// unusable geometry and fails with ErrSizeDistribution.
func NewGradedPSD(fines, sand, d10, d30, d60 float64) (PSD, error) {
	psd, err := NewPSD(fines, sand)
	if err != nil {
		return PSD{}, err
	}
	if d10 <= 0 || d30 <= 0 || d60 <= 0 {
		return PSD{}, fmt.Errorf("%w: diameters must be positive (d10=%.3f, d30=%.3f, d60=%.3f)",
			ErrSizeDistribution, d10, d30, d60)
	}
	if d10 >= d30 || d30 >= d60 {
		return PSD{}, fmt.Errorf("%w: diameters must increase, d10 < d30 < d60 (d10=%.3f, d30=%.3f, d60=%.3f)",
			ErrSizeDistribution, d10, d30, d60)
	}
	psd.sizes = &SizeDistribution{D10: d10, D30: d30, D60: d60}
	return psd, nil
}

// Gravel is the remaining coarse fraction, 100 - fines - sand.
func (p PSD) Gravel() float64 {
	return 100.0 - p.Fines - p.Sand
}

// CoarseMaterialType reports which coarse fraction dominates. An exact tie
// counts as gravel.
func (p PSD) CoarseMaterialType() CoarseType {
	if p.Sand > p.Gravel() {
		return Sand
	}
	return Gravel
}

// HasParticleSizes reports whether a gradation curve was measured.
func (p PSD) HasParticleSizes() bool {
	return p.sizes != nil
}

// Sizes returns the measured diameters; ok is false for ungraded samples.
func (p PSD) Sizes() (SizeDistribution, bool) {
	if p.sizes == nil {
		return SizeDistribution{}, false
	}
	return *p.sizes, true
}

// CoeffOfUniformity is Cu of the measured curve. Call only when
// HasParticleSizes reports true.
func (p PSD) CoeffOfUniformity() float64 {
	return p.sizes.CoeffOfUniformity()
}

// CoeffOfCurvature is Cc of the measured curve. Call only when
// HasParticleSizes reports true.
func (p PSD) CoeffOfCurvature() float64 {
	return p.sizes.CoeffOfCurvature()
}

// Grade rates the curve against the well-graded window for the dominant
// coarse fraction: 1 < Cc < 3 with Cu >= 4 for gravels or Cu >= 6 for
// sands. Call only when HasParticleSizes reports true.
func (p PSD) Grade(coarse CoarseType) Grade {
	cu := p.CoeffOfUniformity()
	cc := p.CoeffOfCurvature()

	minUniformity := 4.0
	if coarse == Sand {
		minUniformity = 6.0
	}
	if cc > 1 && cc < 3 && cu >= minUniformity {
		return WellGraded
	}
	return PoorlyGraded
}
