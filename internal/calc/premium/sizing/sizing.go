package sizing

import (
	"fmt"
	"math"
	"strings"

	bearing "Stratum/internal/calc/bearing"
)

type FootingInput struct {
	Method bearing.Method `json:"method"`
	Shape  bearing.Shape  `json:"shape"`
	// Column load in kN. For strip footings this is the load per metre run.
	LoadKN           float64 `json:"load_kn"`
	LengthM          float64 `json:"length_m,omitempty"`
	DepthM           float64 `json:"depth_m"`
	CohesionKPa      float64 `json:"cohesion_kpa"`
	FrictionAngleDeg float64 `json:"friction_angle_deg"`
	UnitWeightKNM3   float64 `json:"unit_weight_kn_m3"`
	FactorOfSafety   float64 `json:"factor_of_safety"`
}

type FootingResult struct {
	RequiredWidthM float64 `json:"required_width_m"`
	AllowableKPa   float64 `json:"allowable_kpa"`
	AppliedKPa     float64 `json:"applied_kpa"`
	CapacityKN     float64 `json:"capacity_kn"`
	Notes          string  `json:"notes"`
}

const (
	minWidth  = 0.3
	maxWidth  = 10.0
	widthStep = 0.05
)

// Footing scans widths on a 5 cm grid until the allowable pressure over the
// footing area carries the applied load.
func Footing(in FootingInput) (FootingResult, error) {
	if in.LoadKN <= 0 {
		return FootingResult{}, fmt.Errorf("invalid load")
	}
	shape := bearing.Shape(strings.ToLower(strings.TrimSpace(string(in.Shape))))
	for b := minWidth; b <= maxWidth+1e-9; b += widthStep {
		length := in.LengthM
		if shape == bearing.ShapeRectangle && length < b {
			break
		}
		res, err := bearing.Calculate(bearing.Input{
			Method:           in.Method,
			Shape:            shape,
			WidthM:           b,
			LengthM:          length,
			DepthM:           in.DepthM,
			CohesionKPa:      in.CohesionKPa,
			FrictionAngleDeg: in.FrictionAngleDeg,
			UnitWeightKNM3:   in.UnitWeightKNM3,
			FactorOfSafety:   in.FactorOfSafety,
		})
		if err != nil {
			return FootingResult{}, err
		}
		area := footingArea(shape, b, length)
		capacity := res.AllowableKPa * area
		if capacity >= in.LoadKN {
			return FootingResult{
				RequiredWidthM: math.Round(b*100) / 100,
				AllowableKPa:   res.AllowableKPa,
				AppliedKPa:     in.LoadKN / area,
				CapacityKN:     capacity,
				Notes:          "Auto-sized footing (width selected to satisfy bearing).",
			}, nil
		}
	}
	return FootingResult{}, fmt.Errorf("no width up to %.1f m carries the load", maxWidth)
}

func footingArea(shape bearing.Shape, width, length float64) float64 {
	switch shape {
	case bearing.ShapeSquare:
		return width * width
	case bearing.ShapeCircle:
		return math.Pi * width * width / 4.0
	case bearing.ShapeRectangle:
		return width * length
	default:
		// strip, per metre run
		return width
	}
}
