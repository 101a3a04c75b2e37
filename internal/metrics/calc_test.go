// ABOUTME: Tests for BMI, category, BMR, ideal weight and gauge math.
// ABOUTME: Pins threshold boundaries and Mifflin-St Jeor reference values.
package metrics

import (
	"errors"
	"math"
	"testing"

	"github.com/harperreed/bmi/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	got, err := BMI(70, 175)
	require.NoError(t, err)
	assert.InDelta(t, 22.86, got, 0.005)
}

func TestBMIRejectsNonPositive(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		height   float64
		contains string
	}{
		{"zero weight", 0, 175, "weight"},
		{"negative weight", -70, 175, "weight"},
		{"zero height", 70, 0, "height"},
		{"infinite height", 70, math.Inf(1), "height"},
		{"NaN weight", math.NaN(), 175, "weight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BMI(tt.weight, tt.height)
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrInvalidInput))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		bmi  float64
		want models.Category
	}{
		{12.0, models.CategoryUnderweight},
		{17.9, models.CategoryUnderweight},
		{18.49, models.CategoryUnderweight},
		{18.5, models.CategoryNormal},
		{22.86, models.CategoryNormal},
		{23.99, models.CategoryNormal},
		{24.0, models.CategoryOverweight},
		{26.99, models.CategoryOverweight},
		{27.0, models.CategoryObese},
		{45.0, models.CategoryObese},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.bmi), "Classify(%g)", tt.bmi)
	}
}

func TestBMR(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		height float64
		age    int
		gender models.Gender
		want   int
	}{
		// 700 + 1093.75 - 150 + 5 = 1648.75
		{"male reference", 70, 175, 30, models.GenderMale, 1649},
		// 600 + 1000 - 125 - 161 = 1314
		{"female reference", 60, 160, 25, models.GenderFemale, 1314},
		// 800 + 1125 - 200 + 5 = 1730
		{"male integer result", 80, 180, 40, models.GenderMale, 1730},
		// 550 + 1031.25 - 250 - 161 = 1170.25
		{"female rounds down", 55, 165, 50, models.GenderFemale, 1170},
		// 500 + 962.5 - 100 - 161 = 1201.5
		{"half rounds up", 50, 154, 20, models.GenderFemale, 1202},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BMR(tt.weight, tt.height, tt.age, tt.gender)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBMRRejects(t *testing.T) {
	_, err := BMR(70, 175, 0, models.GenderMale)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = BMR(70, 175, 30, "")
	assert.ErrorIs(t, err, models.ErrMissingGender)

	_, err = BMR(70, 175, 30, models.Gender("robot"))
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = BMR(-1, 175, 30, models.GenderFemale)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestIdealWeightRange(t *testing.T) {
	tests := []struct {
		height float64
		want   WeightRange
	}{
		{170, WeightRange{Min: 53.5, Max: 69.4}},
		{175, WeightRange{Min: 56.7, Max: 73.5}},
		{160, WeightRange{Min: 47.4, Max: 61.4}},
	}

	for _, tt := range tests {
		got, err := IdealWeightRange(tt.height)
		require.NoError(t, err)
		assert.InDelta(t, tt.want.Min, got.Min, 1e-9, "min for %g cm", tt.height)
		assert.InDelta(t, tt.want.Max, got.Max, 1e-9, "max for %g cm", tt.height)
	}

	_, err := IdealWeightRange(0)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestWeightRangeString(t *testing.T) {
	r := WeightRange{Min: 53.5, Max: 69.4}
	assert.Equal(t, "53.5 - 69.4 kg", r.String())
}

func TestGaugePercent(t *testing.T) {
	tests := []struct {
		bmi  float64
		want float64
	}{
		{0, 0},
		{9.25, 12.5},
		{18.5, 25},
		{21.25, 37.5},
		{24, 50},
		{25.5, 62.5},
		{27, 75},
		{32, 87.5},
		{37, 100},
		{55, 100},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, GaugePercent(tt.bmi), 1e-9, "GaugePercent(%g)", tt.bmi)
	}
}
