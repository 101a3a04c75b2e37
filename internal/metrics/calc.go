// ABOUTME: Pure BMI, BMR, ideal-weight and category calculations.
// ABOUTME: Every function rejects non-positive or non-finite input.
package metrics

import (
	"fmt"
	"math"

	"github.com/harperreed/bmi/internal/models"
)

// WeightRange is a healthy weight interval in kilograms.
type WeightRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// String formats the range the way the result card shows it.
func (r WeightRange) String() string {
	return fmt.Sprintf("%.1f - %.1f kg", r.Min, r.Max)
}

// BMI returns weight / height², with height converted to metres.
func BMI(weightKg, heightCm float64) (float64, error) {
	if err := positive("weight", weightKg); err != nil {
		return 0, err
	}
	if err := positive("height", heightCm); err != nil {
		return 0, err
	}
	h := heightCm / 100
	return weightKg / (h * h), nil
}

// Classify maps a BMI value onto its category. Each threshold belongs to
// the band above it.
func Classify(bmi float64) models.Category {
	switch {
	case bmi < models.UnderweightMax:
		return models.CategoryUnderweight
	case bmi < models.NormalMax:
		return models.CategoryNormal
	case bmi < models.OverweightMax:
		return models.CategoryOverweight
	default:
		return models.CategoryObese
	}
}

// BMR estimates basal metabolic rate in kcal/day with the Mifflin-St Jeor
// equation, rounded half up to the nearest integer.
func BMR(weightKg, heightCm float64, ageYears int, gender models.Gender) (int, error) {
	if err := positive("weight", weightKg); err != nil {
		return 0, err
	}
	if err := positive("height", heightCm); err != nil {
		return 0, err
	}
	if ageYears <= 0 {
		return 0, fmt.Errorf("%w: age must be positive, got %d", models.ErrInvalidInput, ageYears)
	}

	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	switch gender {
	case models.GenderMale:
		base += 5
	case models.GenderFemale:
		base -= 161
	case "":
		return 0, models.ErrMissingGender
	default:
		return 0, fmt.Errorf("%w: unknown gender %q", models.ErrInvalidInput, gender)
	}
	return int(math.Floor(base + 0.5)), nil
}

// IdealWeightRange returns the weights that put heightCm at BMI 18.5 and 24,
// each rounded to one decimal place.
func IdealWeightRange(heightCm float64) (WeightRange, error) {
	if err := positive("height", heightCm); err != nil {
		return WeightRange{}, err
	}
	h := heightCm / 100
	return WeightRange{
		Min: round1(models.UnderweightMax * h * h),
		Max: round1(models.NormalMax * h * h),
	}, nil
}

// GaugePercent places bmi on a 0-100 scale made of four equal quarters, one
// per category. The obese quarter spans BMI 27 to 37 and clamps at 100.
func GaugePercent(bmi float64) float64 {
	switch {
	case bmi <= 0 || math.IsNaN(bmi):
		return 0
	case bmi < models.UnderweightMax:
		return bmi / models.UnderweightMax * 25
	case bmi < models.NormalMax:
		return 25 + (bmi-models.UnderweightMax)/(models.NormalMax-models.UnderweightMax)*25
	case bmi < models.OverweightMax:
		return 50 + (bmi-models.NormalMax)/(models.OverweightMax-models.NormalMax)*25
	default:
		return math.Min(75+(bmi-models.OverweightMax)/10*25, 100)
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a finite number", models.ErrInvalidInput, field)
	}
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %g", models.ErrInvalidInput, field, v)
	}
	return nil
}
