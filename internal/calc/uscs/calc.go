// Package uscs classifies soils under the Unified Soil Classification
// System from Atterberg limits and the particle size distribution.
package uscs

import (
	"fmt"

	"Stratum/internal/soil"
)

type Input struct {
	LiquidLimit  float64 `json:"liquid_limit"`
	PlasticLimit float64 `json:"plastic_limit"`
	Fines        float64 `json:"fines"`
	Sand         float64 `json:"sand"`
	D10          float64 `json:"d10,omitempty"`
	D30          float64 `json:"d30,omitempty"`
	D60          float64 `json:"d60,omitempty"`
	Organic      bool    `json:"organic"`
}

type Result struct {
	Symbol          string  `json:"symbol"`
	Description     string  `json:"description"`
	PlasticityIndex float64 `json:"plasticity_index"`
	Cu              float64 `json:"cu,omitempty"`
	Cc              float64 `json:"cc,omitempty"`
}

// Calculate validates the measurements and walks the USCS decision chart.
// Classification is total over valid inputs: samples that cannot be fully
// resolved without gradation data come back as ambiguous symbols listing
// every possibility, not as errors.
func Calculate(in Input) (Result, error) {
	limits, err := soil.NewAtterbergLimits(in.LiquidLimit, in.PlasticLimit)
	if err != nil {
		return Result{}, err
	}
	psd, err := newPSD(in)
	if err != nil {
		return Result{}, err
	}

	symbol := classify(limits, psd, in.Organic)
	res := Result{
		Symbol:          symbol,
		Description:     Describe(symbol),
		PlasticityIndex: limits.PlasticityIndex(),
	}
	if psd.HasParticleSizes() {
		res.Cu = psd.CoeffOfUniformity()
		res.Cc = psd.CoeffOfCurvature()
	}
	return res, nil
}

// newPSD treats all-zero diameters as "curve not measured"; anything else
// must form a consistent gradation curve.
func newPSD(in Input) (soil.PSD, error) {
	if in.D10 == 0 && in.D30 == 0 && in.D60 == 0 {
		return soil.NewPSD(in.Fines, in.Sand)
	}
	return soil.NewGradedPSD(in.Fines, in.Sand, in.D10, in.D30, in.D60)
}

// classify routes between the fine and coarse branches. Exactly 50% fines
// counts as coarse-grained.
func classify(limits soil.AtterbergLimits, psd soil.PSD, organic bool) string {
	if psd.Fines > 50 {
		return fineGrained(limits, organic)
	}
	return coarseGrained(limits, psd)
}

// fineGrained judges the sample on the plasticity chart alone.
func fineGrained(limits soil.AtterbergLimits, organic bool) string {
	if limits.LiquidLimit >= 50 {
		// High plasticity.
		if limits.AboveALine() {
			return "CH"
		}
		if organic {
			return "OH"
		}
		return "MH"
	}

	// Low plasticity.
	pi := limits.PlasticityIndex()
	switch {
	case !limits.AboveALine() || pi < 4:
		if organic {
			return "OL"
		}
		return "ML"
	case pi > 7:
		return "CL"
	default:
		// Above the A-line with 4 <= PI <= 7: straddles the boundary.
		return "ML-CL"
	}
}

// coarseGrained combines fines content with the plasticity of the binder
// and, where measured, the gradation curve.
func coarseGrained(limits soil.AtterbergLimits, psd soil.PSD) string {
	coarse := string(psd.CoarseMaterialType())

	switch {
	case psd.Fines > 12:
		switch {
		case limits.InHatchedZone():
			return coarse + "M-" + coarse + "C"
		case limits.AboveALine():
			return coarse + "C"
		default:
			return coarse + "M"
		}

	case psd.Fines >= 5:
		// Dual-symbol zone, 5% to 12% fines inclusive.
		fine := "M"
		if limits.AboveALine() {
			fine = "C"
		}
		if psd.HasParticleSizes() {
			grade := string(psd.Grade(psd.CoarseMaterialType()))
			return coarse + grade + "-" + coarse + fine
		}
		// Without a gradation curve every grade/binder pairing remains
		// possible; reporting all four is the correct outcome here.
		return fmt.Sprintf("%[1]sW-%[1]sM, %[1]sP-%[1]sM, %[1]sW-%[1]sC, %[1]sP-%[1]sC", coarse)

	default:
		// Clean coarse soil, under 5% fines.
		if psd.HasParticleSizes() {
			return coarse + string(psd.Grade(psd.CoarseMaterialType()))
		}
		return coarse + "W or " + coarse + "P"
	}
}
