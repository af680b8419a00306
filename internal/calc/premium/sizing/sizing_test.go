package sizing

import (
	"testing"

	bearing "Stratum/internal/calc/bearing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFooting_Square sizes a square pad on undrained clay. qa = 67.75 kPa,
// so 200 kN needs 2.95 m2 and the 5 cm grid lands on 1.75 m.
func TestFooting_Square(t *testing.T) {
	res, err := Footing(FootingInput{
		Method:         bearing.MethodTerzaghi,
		Shape:          bearing.ShapeSquare,
		LoadKN:         200,
		DepthM:         1,
		CohesionKPa:    25,
		UnitWeightKNM3: 18,
		FactorOfSafety: 3,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1.75, res.RequiredWidthM, 1e-9)
	assert.InDelta(t, 67.75, res.AllowableKPa, 1e-6)
	assert.GreaterOrEqual(t, res.CapacityKN, 200.0)
	assert.LessOrEqual(t, res.AppliedKPa, res.AllowableKPa)
}

// TestFooting_ShapeCaseInsensitive checks a mixed-case shape picks the same
// width as the canonical constant instead of falling back to a strip area.
func TestFooting_ShapeCaseInsensitive(t *testing.T) {
	in := FootingInput{
		Method:         bearing.MethodTerzaghi,
		Shape:          " Square ",
		LoadKN:         200,
		DepthM:         1,
		CohesionKPa:    25,
		UnitWeightKNM3: 18,
		FactorOfSafety: 3,
	}
	res, err := Footing(in)
	require.NoError(t, err)

	in.Shape = bearing.ShapeSquare
	canonical, err := Footing(in)
	require.NoError(t, err)

	assert.Equal(t, canonical.RequiredWidthM, res.RequiredWidthM)
	assert.InDelta(t, 1.75, res.RequiredWidthM, 1e-9)
}

func TestFooting_StripPerMetre(t *testing.T) {
	res, err := Footing(FootingInput{
		Method:         bearing.MethodTerzaghi,
		Shape:          bearing.ShapeStrip,
		LoadKN:         50,
		DepthM:         1,
		CohesionKPa:    25,
		UnitWeightKNM3: 18,
		FactorOfSafety: 3,
	})
	require.NoError(t, err)
	// qa = 53.5 kPa per metre run; 50/53.5 = 0.935 m rounds up the grid.
	assert.InDelta(t, 0.95, res.RequiredWidthM, 1e-9)
}

func TestFooting_LoadTooLarge(t *testing.T) {
	_, err := Footing(FootingInput{
		Method:         bearing.MethodTerzaghi,
		Shape:          bearing.ShapeStrip,
		LoadKN:         1e6,
		DepthM:         0.5,
		CohesionKPa:    10,
		UnitWeightKNM3: 18,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no width")
}

func TestFooting_InvalidLoad(t *testing.T) {
	_, err := Footing(FootingInput{Shape: bearing.ShapeStrip})
	assert.Error(t, err)
}

// TestFooting_RectangleRespectsLength verifies the scan stops at the fixed
// length instead of proposing a footing wider than it is long.
func TestFooting_RectangleRespectsLength(t *testing.T) {
	_, err := Footing(FootingInput{
		Method:         bearing.MethodTerzaghi,
		Shape:          bearing.ShapeRectangle,
		LengthM:        0.5,
		LoadKN:         5000,
		DepthM:         1,
		CohesionKPa:    25,
		UnitWeightKNM3: 18,
	})
	assert.Error(t, err)
}
