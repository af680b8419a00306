package bearing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCalculate_TerzaghiUndrained checks the exact phi = 0 factors: Nc must
// be 5.7, Nq 1 and Ngamma 0.
func TestCalculate_TerzaghiUndrained(t *testing.T) {
	res, err := Calculate(Input{
		Method:         MethodTerzaghi,
		Shape:          "strip",
		WidthM:         1,
		DepthM:         1,
		CohesionKPa:    25,
		UnitWeightKNM3: 18,
	})
	require.NoError(t, err)

	assert.InDelta(t, 5.7, res.Nc, 1e-9)
	assert.InDelta(t, 1.0, res.Nq, 1e-9)
	assert.InDelta(t, 0.0, res.Ngamma, 1e-9)
	// qu = 25*5.7 + 18*1*1 = 160.5, FS defaults to 3.
	assert.InDelta(t, 160.5, res.UltimateKPa, 1e-6)
	assert.InDelta(t, 53.5, res.AllowableKPa, 1e-6)
	assert.Equal(t, MethodTerzaghi, res.MethodUsed)
}

func TestCalculate_TerzaghiStrip(t *testing.T) {
	res, err := Calculate(Input{
		Method:           MethodTerzaghi,
		Shape:            "strip",
		WidthM:           1.5,
		DepthM:           1.5,
		CohesionKPa:      20,
		FrictionAngleDeg: 20,
		UnitWeightKNM3:   18,
		FactorOfSafety:   3,
	})
	require.NoError(t, err)

	assert.InDelta(t, 7.439, res.Nq, 0.01)
	assert.InDelta(t, 17.69, res.Nc, 0.01)
	assert.InDelta(t, 3.42, res.Ngamma, 0.01)
	assert.InDelta(t, 600.9, res.UltimateKPa, 0.5)
	assert.InDelta(t, 200.3, res.AllowableKPa, 0.2)
}

func TestCalculate_HansenFactors(t *testing.T) {
	res, err := Calculate(Input{
		Method:           MethodHansen,
		Shape:            "strip",
		WidthM:           2,
		DepthM:           1,
		CohesionKPa:      10,
		FrictionAngleDeg: 30,
		UnitWeightKNM3:   18,
	})
	require.NoError(t, err)

	assert.InDelta(t, 18.40, res.Nq, 0.01)
	assert.InDelta(t, 30.14, res.Nc, 0.01)
	assert.InDelta(t, 18.08, res.Ngamma, 0.01)
}

func TestCalculate_VesicFactors(t *testing.T) {
	res, err := Calculate(Input{
		Method:           MethodVesic,
		Shape:            "strip",
		WidthM:           2,
		DepthM:           1,
		CohesionKPa:      10,
		FrictionAngleDeg: 30,
		UnitWeightKNM3:   18,
	})
	require.NoError(t, err)

	// Nq and Nc match Hansen; Ngamma is the 2(Nq+1)tan(phi) fit.
	assert.InDelta(t, 18.40, res.Nq, 0.01)
	assert.InDelta(t, 30.14, res.Nc, 0.01)
	assert.InDelta(t, 22.40, res.Ngamma, 0.01)
}

// TestCalculate_HansenUndrained pins Nc = 5.14 for the Prandtl solution at
// phi = 0.
func TestCalculate_HansenUndrained(t *testing.T) {
	res, err := Calculate(Input{
		Method:         MethodHansen,
		Shape:          "strip",
		WidthM:         1,
		DepthM:         0,
		CohesionKPa:    50,
		UnitWeightKNM3: 18,
	})
	require.NoError(t, err)
	assert.InDelta(t, 5.14, res.Nc, 1e-9)
	assert.InDelta(t, 257.0, res.UltimateKPa, 1e-6)
}

func TestCalculate_SquareShapeFactors(t *testing.T) {
	res, err := Calculate(Input{
		Method:         MethodTerzaghi,
		Shape:          "square",
		WidthM:         1.5,
		DepthM:         1,
		CohesionKPa:    25,
		UnitWeightKNM3: 18,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1.3, res.ShapeFactorC, 1e-9)
	assert.InDelta(t, 0.8, res.ShapeFactorG, 1e-9)
	// qu = 25*5.7*1.3 + 18*1*1 = 203.25.
	assert.InDelta(t, 203.25, res.UltimateKPa, 1e-6)
	assert.InDelta(t, 67.75, res.AllowableKPa, 1e-6)
}

func TestCalculate_RectangleRatio(t *testing.T) {
	res, err := Calculate(Input{
		Method:           MethodTerzaghi,
		Shape:            "rectangle",
		WidthM:           1,
		LengthM:          2,
		DepthM:           1,
		CohesionKPa:      20,
		FrictionAngleDeg: 10,
		UnitWeightKNM3:   18,
	})
	require.NoError(t, err)

	// B/L = 0.5: sc = 1.15, sgamma = 0.9.
	assert.InDelta(t, 1.15, res.ShapeFactorC, 1e-9)
	assert.InDelta(t, 0.9, res.ShapeFactorG, 1e-9)
}

func TestCalculate_VesicShapeFactors(t *testing.T) {
	res, err := Calculate(Input{
		Method:           MethodVesic,
		Shape:            "square",
		WidthM:           2,
		DepthM:           1,
		CohesionKPa:      10,
		FrictionAngleDeg: 30,
		UnitWeightKNM3:   18,
	})
	require.NoError(t, err)

	// sc = 1 + Nq/Nc, sq = 1 + tan(phi), sgamma = 0.6.
	assert.InDelta(t, 1+res.Nq/res.Nc, res.ShapeFactorC, 1e-9)
	assert.InDelta(t, 1.5774, res.ShapeFactorQ, 1e-4)
	assert.InDelta(t, 0.6, res.ShapeFactorG, 1e-9)
}

func TestCalculate_ShapeCaseInsensitive(t *testing.T) {
	res, err := Calculate(Input{
		Method:         MethodTerzaghi,
		Shape:          " Square ",
		WidthM:         1,
		DepthM:         1,
		CohesionKPa:    25,
		UnitWeightKNM3: 18,
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.3, res.ShapeFactorC, 1e-9)
}

func TestCalculate_Defaults(t *testing.T) {
	// Empty method falls back to Terzaghi, empty shape to strip, FS to 3.
	res, err := Calculate(Input{
		WidthM:         1,
		DepthM:         1,
		CohesionKPa:    25,
		UnitWeightKNM3: 18,
	})
	require.NoError(t, err)
	assert.Equal(t, MethodTerzaghi, res.MethodUsed)
	assert.InDelta(t, res.UltimateKPa/3, res.AllowableKPa, 1e-9)
}

func TestCalculate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"zero width", Input{Shape: "strip", DepthM: 1, CohesionKPa: 10, UnitWeightKNM3: 18}},
		{"negative depth", Input{Shape: "strip", WidthM: 1, DepthM: -1, CohesionKPa: 10, UnitWeightKNM3: 18}},
		{"zero unit weight", Input{Shape: "strip", WidthM: 1, DepthM: 1, CohesionKPa: 10}},
		{"friction angle too high", Input{Shape: "strip", WidthM: 1, DepthM: 1, CohesionKPa: 10, UnitWeightKNM3: 18, FrictionAngleDeg: 55}},
		{"unknown shape", Input{Shape: "hex", WidthM: 1, DepthM: 1, CohesionKPa: 10, UnitWeightKNM3: 18}},
		{"unknown method", Input{Method: "meyerhof", Shape: "strip", WidthM: 1, DepthM: 1, CohesionKPa: 10, UnitWeightKNM3: 18}},
		{"rectangle shorter than wide", Input{Shape: "rectangle", WidthM: 2, LengthM: 1, DepthM: 1, CohesionKPa: 10, UnitWeightKNM3: 18}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.in)
			assert.Error(t, err)
		})
	}
}
