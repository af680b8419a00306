package recommend

import "fmt"

type SoilStateInput struct {
	// Overburden-corrected design blow count.
	DesignN  float64 `json:"design_n"`
	Cohesive bool    `json:"cohesive"`
}

type SoilStateResult struct {
	State            string  `json:"state"`
	FrictionAngleDeg float64 `json:"friction_angle_deg,omitempty"`
	UndrainedKPa     float64 `json:"undrained_strength_kpa,omitempty"`
	Notes            string  `json:"notes"`
}

// SoilState maps a design blow count to the Terzaghi-Peck density or
// consistency term, with a strength estimate to start a design from.
func SoilState(in SoilStateInput) (SoilStateResult, error) {
	if in.DesignN <= 0 {
		return SoilStateResult{}, fmt.Errorf("invalid blow count")
	}
	n := in.DesignN

	if in.Cohesive {
		var state string
		switch {
		case n < 2:
			state = "very soft"
		case n < 4:
			state = "soft"
		case n < 8:
			state = "medium"
		case n < 15:
			state = "stiff"
		case n < 30:
			state = "very stiff"
		default:
			state = "hard"
		}
		return SoilStateResult{
			State:        state,
			UndrainedKPa: 6.0 * n,
			Notes:        "Consistency per Terzaghi-Peck, cu estimated as 6N kPa.",
		}, nil
	}

	var state string
	switch {
	case n < 4:
		state = "very loose"
	case n < 10:
		state = "loose"
	case n < 30:
		state = "medium dense"
	case n < 50:
		state = "dense"
	default:
		state = "very dense"
	}
	// Peck-Hanson-Thornburn fit for the friction angle.
	phi := 27.1 + 0.3*n - 0.00054*n*n
	return SoilStateResult{
		State:            state,
		FrictionAngleDeg: phi,
		Notes:            "Relative density per Terzaghi-Peck, friction angle per Peck-Hanson-Thornburn.",
	}, nil
}
