package batch

import (
	"fmt"

	aashto "Stratum/internal/calc/aashto"
	uscs "Stratum/internal/calc/uscs"
)

type USCSBatchInput struct {
	Items []uscs.Input `json:"items"`
}

type USCSBatchResult struct {
	Results []uscs.Result `json:"results"`
}

func CalculateUSCS(in USCSBatchInput) (USCSBatchResult, error) {
	if len(in.Items) == 0 {
		return USCSBatchResult{}, fmt.Errorf("no items")
	}
	out := USCSBatchResult{Results: make([]uscs.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := uscs.Calculate(item)
		if err != nil {
			return USCSBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}

type AASHTOBatchInput struct {
	Items []aashto.Input `json:"items"`
}

type AASHTOBatchResult struct {
	Results []aashto.Result `json:"results"`
}

func CalculateAASHTO(in AASHTOBatchInput) (AASHTOBatchResult, error) {
	if len(in.Items) == 0 {
		return AASHTOBatchResult{}, fmt.Errorf("no items")
	}
	out := AASHTOBatchResult{Results: make([]aashto.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := aashto.Calculate(item)
		if err != nil {
			return AASHTOBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
