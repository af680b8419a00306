// Package classify is the single entry point for classification requests:
// it selects the USCS or AASHTO engine from a type discriminator and
// flattens the result to the wire shape shared by the web client and the
// Excel add-in.
package classify

import (
	"errors"
	"fmt"
	"strings"

	"Stratum/internal/calc/aashto"
	"Stratum/internal/calc/uscs"
)

// ErrUnsupportedClassification reports an unrecognized classification type
// discriminator.
var ErrUnsupportedClassification = errors.New("unsupported classification type")

type Input struct {
	// Type selects the classification system, matched case-insensitively:
	// "uscs" or "aashto".
	Type            string  `json:"type"`
	LiquidLimit     float64 `json:"liquid_limit"`
	PlasticLimit    float64 `json:"plastic_limit,omitempty"`
	PlasticityIndex float64 `json:"plasticity_index,omitempty"`
	Fines           float64 `json:"fines"`
	Sand            float64 `json:"sand,omitempty"`
	D10             float64 `json:"d10,omitempty"`
	D30             float64 `json:"d30,omitempty"`
	D60             float64 `json:"d60,omitempty"`
	Organic         bool    `json:"organic,omitempty"`
	// OmitGroupIdx leaves the "(GI)" suffix off AASHTO symbols. The zero
	// value keeps the suffix, mirroring the add_group_idx=true default of
	// the query API.
	OmitGroupIdx bool `json:"omit_group_idx,omitempty"`
}

type Result struct {
	Classification string `json:"classification"`
	Description    string `json:"description,omitempty"`
}

func Calculate(in Input) (Result, error) {
	switch strings.ToLower(strings.TrimSpace(in.Type)) {
	case "uscs":
		res, err := uscs.Calculate(uscs.Input{
			LiquidLimit:  in.LiquidLimit,
			PlasticLimit: in.PlasticLimit,
			Fines:        in.Fines,
			Sand:         in.Sand,
			D10:          in.D10,
			D30:          in.D30,
			D60:          in.D60,
			Organic:      in.Organic,
		})
		if err != nil {
			return Result{}, err
		}
		return Result{Classification: res.Symbol, Description: res.Description}, nil

	case "aashto":
		res, err := aashto.Calculate(aashto.Input{
			LiquidLimit:     in.LiquidLimit,
			PlasticLimit:    in.PlasticLimit,
			PlasticityIndex: in.PlasticityIndex,
			Fines:           in.Fines,
		})
		if err != nil {
			return Result{}, err
		}
		symbol := res.Symbol
		if in.OmitGroupIdx {
			symbol = res.SymbolNoGroupIdx
		}
		return Result{Classification: symbol, Description: res.Description}, nil

	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedClassification, in.Type)
	}
}
