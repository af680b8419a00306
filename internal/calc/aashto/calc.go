// Package aashto classifies soils under the AASHTO highway classification
// system and computes the group index severity score.
package aashto

import (
	"fmt"
	"math"

	"Stratum/internal/soil"
)

type Input struct {
	LiquidLimit float64 `json:"liquid_limit"`
	// PlasticLimit, when positive, takes precedence and the plasticity
	// index is derived as LL - PL. Otherwise PlasticityIndex is used as
	// given.
	PlasticLimit    float64 `json:"plastic_limit,omitempty"`
	PlasticityIndex float64 `json:"plasticity_index,omitempty"`
	Fines           float64 `json:"fines"`
}

type Result struct {
	Symbol           string `json:"symbol"`
	SymbolNoGroupIdx string `json:"symbol_no_group_idx"`
	GroupIndex       int    `json:"group_index"`
	Description      string `json:"description"`
}

// descriptions maps group symbols to their reference wording. Built once at
// startup; never mutated.
var descriptions = map[string]string{
	"A-2-4": "Silty or clayey gravel and sand",
	"A-2-5": "Silty or clayey gravel and sand",
	"A-2-6": "Silty or clayey gravel and sand",
	"A-2-7": "Silty or clayey gravel and sand",
	"A-4":   "Silty soils",
	"A-5":   "Silty soils",
	"A-6":   "Clayey soils",
	"A-7-5": "Clayey soils",
	"A-7-6": "Clayey soils",
}

// Calculate resolves the AASHTO group symbol and group index. The symbol
// carries the "(GI)" suffix; SymbolNoGroupIdx is the bare group for callers
// that asked for the suffix to be left off.
func Calculate(in Input) (Result, error) {
	pi := in.PlasticityIndex
	if in.PlasticLimit > 0 {
		limits, err := soil.NewAtterbergLimits(in.LiquidLimit, in.PlasticLimit)
		if err != nil {
			return Result{}, err
		}
		pi = limits.PlasticityIndex()
	}
	if in.LiquidLimit < 0 || pi < 0 || in.Fines < 0 {
		return Result{}, fmt.Errorf("%w: liquid limit, plasticity index and fines must be non-negative (LL=%.2f, PI=%.2f, fines=%.2f)",
			soil.ErrInvalidInput, in.LiquidLimit, pi, in.Fines)
	}

	symbol := groupSymbol(in.Fines, in.LiquidLimit, pi)
	gi := GroupIndex(in.Fines, in.LiquidLimit, pi)
	return Result{
		Symbol:           fmt.Sprintf("%s(%d)", symbol, gi),
		SymbolNoGroupIdx: symbol,
		GroupIndex:       gi,
		Description:      descriptions[symbol],
	}, nil
}

// groupSymbol walks the AASHTO chart: granular materials at 35% fines or
// less, silt-clay materials above, each split on a liquid limit of 40 and a
// plasticity index of 10.
func groupSymbol(fines, liquidLimit, plasticityIndex float64) string {
	if fines <= 35 {
		if liquidLimit <= 40 {
			if plasticityIndex <= 10 {
				return "A-2-4"
			}
			return "A-2-6"
		}
		if plasticityIndex <= 10 {
			return "A-2-5"
		}
		return "A-2-7"
	}

	if liquidLimit <= 40 {
		if plasticityIndex <= 10 {
			return "A-4"
		}
		return "A-6"
	}
	if plasticityIndex <= 10 {
		return "A-5"
	}
	if plasticityIndex <= liquidLimit-30 {
		return "A-7-5"
	}
	return "A-7-6"
}

// GroupIndex evaluates the clamped group index formula
//
//	GI = (F-35)[0..40] * (0.2 + 0.005*(LL-40)[0..20]) + 0.01*(F-15)[0..40]*(PI-10)[0..20]
//
// rounded to the nearest integer and never below zero.
func GroupIndex(fines, liquidLimit, plasticityIndex float64) int {
	f := clamp(fines-35, 0, 40)
	ll := clamp(liquidLimit-40, 0, 20)
	f2 := clamp(fines-15, 0, 40)
	pi := clamp(plasticityIndex-10, 0, 20)

	gi := f*(0.2+0.005*ll) + 0.01*f2*pi
	if gi < 0 {
		gi = 0
	}
	return int(math.Round(gi))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
