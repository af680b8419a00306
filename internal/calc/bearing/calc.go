// Package bearing estimates ultimate and allowable bearing capacity of
// shallow foundations with the classical closed-form factor solutions.
package bearing

import (
	"fmt"
	"math"
	"strings"
)

type Method string

const (
	MethodTerzaghi Method = "terzaghi"
	MethodHansen   Method = "hansen"
	MethodVesic    Method = "vesic"
)

type Shape string

const (
	ShapeStrip     Shape = "strip"
	ShapeSquare    Shape = "square"
	ShapeCircle    Shape = "circle"
	ShapeRectangle Shape = "rectangle"
)

type Input struct {
	Method           Method  `json:"method"`
	Shape            Shape   `json:"shape"`
	WidthM           float64 `json:"width_m"`
	LengthM          float64 `json:"length_m"`
	DepthM           float64 `json:"depth_m"`
	CohesionKPa      float64 `json:"cohesion_kpa"`
	FrictionAngleDeg float64 `json:"friction_angle_deg"`
	UnitWeightKNM3   float64 `json:"unit_weight_kn_m3"`
	FactorOfSafety   float64 `json:"factor_of_safety"`
}

type Result struct {
	Nc           float64 `json:"nc"`
	Nq           float64 `json:"nq"`
	Ngamma       float64 `json:"ngamma"`
	ShapeFactorC float64 `json:"shape_factor_c"`
	ShapeFactorQ float64 `json:"shape_factor_q"`
	ShapeFactorG float64 `json:"shape_factor_gamma"`
	UltimateKPa  float64 `json:"ultimate_kpa"`
	AllowableKPa float64 `json:"allowable_kpa"`
	MethodUsed   Method  `json:"method_used"`
	Notes        string  `json:"notes"`
}

// Calculate evaluates qu = c*Nc*sc + gamma*D*Nq*sq + 0.5*gamma*B*Ngamma*sg
// for the selected method and foundation shape, and divides by the factor
// of safety for the allowable pressure.
func Calculate(in Input) (Result, error) {
	if in.WidthM <= 0 || in.DepthM < 0 || in.UnitWeightKNM3 <= 0 || in.CohesionKPa < 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.FrictionAngleDeg < 0 || in.FrictionAngleDeg > 50 {
		return Result{}, fmt.Errorf("invalid friction angle")
	}
	shape, err := parseShape(in.Shape)
	if err != nil {
		return Result{}, err
	}
	if shape == ShapeRectangle && in.LengthM < in.WidthM {
		return Result{}, fmt.Errorf("invalid rectangle: length must be at least width")
	}
	if in.FactorOfSafety <= 0 {
		in.FactorOfSafety = 3.0
	}
	method := in.Method
	if method == "" {
		method = MethodTerzaghi
	}
	if method != MethodTerzaghi && method != MethodHansen && method != MethodVesic {
		return Result{}, fmt.Errorf("invalid method")
	}

	nc, nq, ngamma := factors(method, in.FrictionAngleDeg)
	sc, sq, sg := shapeFactors(method, shape, in.WidthM, in.LengthM, in.FrictionAngleDeg, nc, nq)

	qu := in.CohesionKPa*nc*sc +
		in.UnitWeightKNM3*in.DepthM*nq*sq +
		0.5*in.UnitWeightKNM3*in.WidthM*ngamma*sg

	return Result{
		Nc:           nc,
		Nq:           nq,
		Ngamma:       ngamma,
		ShapeFactorC: sc,
		ShapeFactorQ: sq,
		ShapeFactorG: sg,
		UltimateKPa:  qu,
		AllowableKPa: qu / in.FactorOfSafety,
		MethodUsed:   method,
		Notes:        fmt.Sprintf("Ultimate bearing capacity (%s) with classical shape factors; general shear assumed.", method),
	}, nil
}

func parseShape(s Shape) (Shape, error) {
	switch Shape(strings.ToLower(strings.TrimSpace(string(s)))) {
	case ShapeStrip, "":
		return ShapeStrip, nil
	case ShapeSquare:
		return ShapeSquare, nil
	case ShapeCircle:
		return ShapeCircle, nil
	case ShapeRectangle:
		return ShapeRectangle, nil
	default:
		return "", fmt.Errorf("invalid footing shape %q", s)
	}
}

// factors returns the bearing capacity factors Nc, Nq and Ngamma for the
// friction angle in degrees.
func factors(method Method, phiDeg float64) (nc, nq, ngamma float64) {
	phi := phiDeg * math.Pi / 180.0

	if method == MethodTerzaghi {
		nq = math.Exp((1.5*math.Pi-phi)*math.Tan(phi)) /
			(2 * math.Pow(math.Cos(math.Pi/4+phi/2), 2))
		if phiDeg == 0 {
			nc = 5.7
		} else {
			nc = (nq - 1) / math.Tan(phi)
		}
		ngamma = (nq - 1) * math.Tan(1.4*phi)
		return nc, nq, ngamma
	}

	// Hansen and Vesic share Nq and Nc.
	nq = math.Exp(math.Pi*math.Tan(phi)) * math.Pow(math.Tan(math.Pi/4+phi/2), 2)
	if phiDeg == 0 {
		nc = 5.14
	} else {
		nc = (nq - 1) / math.Tan(phi)
	}
	if method == MethodVesic {
		ngamma = 2 * (nq + 1) * math.Tan(phi)
	} else {
		ngamma = 1.8 * (nq - 1) * math.Tan(phi)
	}
	return nc, nq, ngamma
}

// shapeFactors returns sc, sq and sgamma. Terzaghi's solution has no
// surcharge shape factor; Vesic's factors depend on the width ratio and the
// friction angle.
func shapeFactors(method Method, shape Shape, b, l, phiDeg, nc, nq float64) (sc, sq, sg float64) {
	ratio := widthRatio(shape, b, l)

	switch method {
	case MethodTerzaghi:
		switch shape {
		case ShapeSquare:
			return 1.3, 1.0, 0.8
		case ShapeCircle:
			return 1.3, 1.0, 0.6
		case ShapeRectangle:
			return 1 + 0.3*ratio, 1.0, 1 - 0.2*ratio
		default:
			return 1.0, 1.0, 1.0
		}

	case MethodHansen:
		switch shape {
		case ShapeSquare:
			return 1.3, 1.2, 0.8
		case ShapeCircle:
			return 1.3, 1.2, 0.6
		case ShapeRectangle:
			return 1 + 0.2*ratio, 1 + 0.2*ratio, 1 - 0.4*ratio
		default:
			return 1.0, 1.0, 1.0
		}

	default: // Vesic
		phi := phiDeg * math.Pi / 180.0
		sc = 1 + ratio*(nq/nc)
		sq = 1 + ratio*math.Tan(phi)
		sg = 1 - 0.4*ratio
		if sg < 0.6 {
			sg = 0.6
		}
		return sc, sq, sg
	}
}

// widthRatio is B/L: zero for strip footings, one for squares and circles.
func widthRatio(shape Shape, b, l float64) float64 {
	switch shape {
	case ShapeSquare, ShapeCircle:
		return 1.0
	case ShapeRectangle:
		return b / l
	default:
		return 0.0
	}
}
