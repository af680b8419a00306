package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoilState_Cohesionless(t *testing.T) {
	tests := []struct {
		name  string
		n     float64
		state string
	}{
		{"very loose", 3, "very loose"},
		{"loose", 8, "loose"},
		{"medium dense", 25, "medium dense"},
		{"dense", 40, "dense"},
		{"very dense", 55, "very dense"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := SoilState(SoilStateInput{DesignN: tt.n})
			require.NoError(t, err)
			assert.Equal(t, tt.state, res.State)
			assert.Zero(t, res.UndrainedKPa)
		})
	}
}

func TestSoilState_FrictionAngleEstimate(t *testing.T) {
	res, err := SoilState(SoilStateInput{DesignN: 25})
	require.NoError(t, err)
	// 27.1 + 0.3*25 - 0.00054*625
	assert.InDelta(t, 34.2625, res.FrictionAngleDeg, 1e-6)
}

func TestSoilState_Cohesive(t *testing.T) {
	tests := []struct {
		name  string
		n     float64
		state string
	}{
		{"very soft", 1, "very soft"},
		{"soft", 3, "soft"},
		{"medium", 6, "medium"},
		{"stiff", 10, "stiff"},
		{"very stiff", 20, "very stiff"},
		{"hard", 35, "hard"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := SoilState(SoilStateInput{DesignN: tt.n, Cohesive: true})
			require.NoError(t, err)
			assert.Equal(t, tt.state, res.State)
			assert.InDelta(t, 6*tt.n, res.UndrainedKPa, 1e-9)
			assert.Zero(t, res.FrictionAngleDeg)
		})
	}
}

func TestSoilState_Invalid(t *testing.T) {
	_, err := SoilState(SoilStateInput{})
	assert.Error(t, err)
}
