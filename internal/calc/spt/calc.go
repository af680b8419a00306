// Package spt corrects raw standard penetration test blow counts for
// hammer energy, overburden pressure and dilatancy.
package spt

import (
	"fmt"
	"math"
)

// Method selects the overburden pressure correlation.
type Method string

const (
	MethodGibbsHoltz  Method = "gibbs-holtz"
	MethodBazaraaPeck Method = "bazaraa-peck"
	MethodPeck        Method = "peck"
	MethodLiaoWhitman Method = "liao-whitman"
	MethodSkempton    Method = "skempton"
)

type Input struct {
	Method    Method  `json:"method"`
	RecordedN float64 `json:"recorded_n"`
	// Energy ratio delivered by the hammer as a fraction; the standardized
	// level is 0.6 and is the default.
	HammerEfficiency     float64 `json:"hammer_efficiency"`
	BoreholeDiameterCorr float64 `json:"borehole_diameter_correction"`
	SamplerCorr          float64 `json:"sampler_correction"`
	RodLengthCorr        float64 `json:"rod_length_correction"`
	OverburdenKPa        float64 `json:"effective_overburden_kpa"`
	// Dilatancy applies the Terzaghi-Peck water table correction to the
	// overburden-corrected count.
	Dilatancy bool `json:"dilatancy_correction"`
}

type Result struct {
	N60        float64 `json:"n60"`
	CN         float64 `json:"cn"`
	CorrectedN float64 `json:"corrected_n"`
	DesignN    float64 `json:"design_n"`
	MethodUsed Method  `json:"method_used"`
	Notes      string  `json:"notes"`
}

// Calculate standardizes the recorded count to 60% energy, applies the
// selected overburden correction (capped at a ratio of 2), and optionally
// the dilatancy correction.
func Calculate(in Input) (Result, error) {
	if in.RecordedN <= 0 {
		return Result{}, fmt.Errorf("invalid recorded blow count")
	}
	if in.OverburdenKPa <= 0 {
		return Result{}, fmt.Errorf("invalid effective overburden pressure")
	}
	if in.HammerEfficiency <= 0 {
		in.HammerEfficiency = 0.6
	}
	if in.BoreholeDiameterCorr <= 0 {
		in.BoreholeDiameterCorr = 1.0
	}
	if in.SamplerCorr <= 0 {
		in.SamplerCorr = 1.0
	}
	if in.RodLengthCorr <= 0 {
		in.RodLengthCorr = 1.0
	}
	method := in.Method
	if method == "" {
		method = MethodGibbsHoltz
	}

	n60 := in.RecordedN * in.HammerEfficiency * in.BoreholeDiameterCorr *
		in.SamplerCorr * in.RodLengthCorr / 0.6

	cn, err := correctionFactor(method, in.OverburdenKPa)
	if err != nil {
		return Result{}, err
	}
	// The corrected/standardized ratio should not exceed 2.
	if cn > 2.0 {
		cn = 2.0
	}
	corrected := cn * n60

	design := corrected
	notes := fmt.Sprintf("Overburden correction by %s.", method)
	if in.Dilatancy {
		design = dilatancy(corrected)
		notes += " Terzaghi-Peck dilatancy correction applied."
	}

	return Result{
		N60:        n60,
		CN:         cn,
		CorrectedN: corrected,
		DesignN:    design,
		MethodUsed: method,
		Notes:      notes,
	}, nil
}

// correctionFactor evaluates CN for an effective overburden pressure in
// kPa.
func correctionFactor(method Method, sigma float64) (float64, error) {
	switch method {
	case MethodGibbsHoltz:
		return 350.0 / (sigma + 70.0), nil
	case MethodBazaraaPeck:
		switch {
		case sigma < 71.8:
			return 4.0 / (1.0 + 0.0418*sigma), nil
		case sigma > 71.8:
			return 4.0 / (3.25 + 0.0104*sigma), nil
		default:
			return 1.0, nil
		}
	case MethodPeck:
		return 0.77 * math.Log10(2000.0/sigma), nil
	case MethodLiaoWhitman:
		return math.Sqrt(100.0 / sigma), nil
	case MethodSkempton:
		return 2.0 / (1.0 + 0.01044*sigma), nil
	default:
		return 0, fmt.Errorf("invalid overburden method %q", method)
	}
}

// dilatancy halves the count in excess of 15 for saturated fine soils.
func dilatancy(n float64) float64 {
	if n <= 15 {
		return n
	}
	return 15.0 + 0.5*(n-15.0)
}
