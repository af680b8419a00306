package soil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPSD_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		fines float64
		sand  float64
	}{
		{"negative fines", -1, 30},
		{"negative sand", 30, -1},
		{"fractions exceed 100", 60, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPSD(tt.fines, tt.sand)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPSD), "expected ErrInvalidPSD, got %v", err)
		})
	}
}

func TestGravelIsDerived(t *testing.T) {
	psd, err := NewPSD(10, 30)
	require.NoError(t, err)
	assert.InDelta(t, 60.0, psd.Gravel(), 1e-9)
}

func TestCoarseMaterialType(t *testing.T) {
	sandy, err := NewPSD(10, 50)
	require.NoError(t, err)
	assert.Equal(t, Sand, sandy.CoarseMaterialType())

	gravelly, err := NewPSD(10, 20)
	require.NoError(t, err)
	assert.Equal(t, Gravel, gravelly.CoarseMaterialType())
}

func TestCoarseMaterialType_TieGoesToGravel(t *testing.T) {
	// 45% sand against 45% gravel.
	psd, err := NewPSD(10, 45)
	require.NoError(t, err)
	assert.Equal(t, Gravel, psd.CoarseMaterialType())
}

func TestNewGradedPSD_Invalid(t *testing.T) {
	tests := []struct {
		name          string
		d10, d30, d60 float64
	}{
		{"missing d10", 0, 0.3, 0.8},
		{"missing d30", 0.1, 0, 0.8},
		{"missing d60", 0.1, 0.3, 0},
		{"non-increasing", 0.3, 0.3, 0.8},
		{"decreasing", 0.8, 0.3, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGradedPSD(10, 50, tt.d10, tt.d30, tt.d60)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSizeDistribution), "expected ErrSizeDistribution, got %v", err)
		})
	}
}

func TestSizes(t *testing.T) {
	ungraded, err := NewPSD(10, 50)
	require.NoError(t, err)
	assert.False(t, ungraded.HasParticleSizes())
	_, ok := ungraded.Sizes()
	assert.False(t, ok)

	graded, err := NewGradedPSD(10, 50, 0.1, 0.3, 0.8)
	require.NoError(t, err)
	assert.True(t, graded.HasParticleSizes())
	sizes, ok := graded.Sizes()
	require.True(t, ok)
	assert.InDelta(t, 8.0, sizes.CoeffOfUniformity(), 1e-9)
	assert.InDelta(t, 1.125, sizes.CoeffOfCurvature(), 1e-9)
}

func TestGrade(t *testing.T) {
	// Cu = 5, Cc = 1.25: enough uniformity for a gravel, not for a sand.
	psd, err := NewGradedPSD(5, 30, 0.2, 0.5, 1.0)
	require.NoError(t, err)
	assert.Equal(t, WellGraded, psd.Grade(Gravel))
	assert.Equal(t, PoorlyGraded, psd.Grade(Sand))

	// Cu = 8, Cc = 1.125: well graded either way.
	wide, err := NewGradedPSD(5, 30, 0.1, 0.3, 0.8)
	require.NoError(t, err)
	assert.Equal(t, WellGraded, wide.Grade(Sand))

	// Cc outside (1, 3) is poorly graded regardless of Cu.
	gap, err := NewGradedPSD(5, 30, 0.1, 0.15, 0.9)
	require.NoError(t, err)
	assert.Equal(t, PoorlyGraded, gap.Grade(Gravel))
}
