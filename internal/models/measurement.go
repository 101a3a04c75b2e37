// ABOUTME: Measurement model and Gender enum for biometric input.
// ABOUTME: Parses and validates the four form fields before any calculation.
package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidInput marks any rejected measurement value.
	ErrInvalidInput = errors.New("invalid input")
	// ErrMissingGender is returned when no gender was supplied.
	ErrMissingGender = fmt.Errorf("%w: gender is required", ErrInvalidInput)
)

// Gender selects the BMR constant and the recommendation variant.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// AllGenders returns all valid genders.
var AllGenders = []Gender{GenderMale, GenderFemale}

// IsValid reports whether g is one of the known genders.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// ParseGender accepts "male"/"female" and the single-letter forms m/f.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", ErrMissingGender
	case "male", "m":
		return GenderMale, nil
	case "female", "f":
		return GenderFemale, nil
	default:
		return "", fmt.Errorf("%w: unknown gender %q (use male or female)", ErrInvalidInput, s)
	}
}

// Plausible input ranges checked at the boundary.
const (
	MinHeightCm = 50.0
	MaxHeightCm = 250.0
	MinWeightKg = 10.0
	MaxWeightKg = 400.0
	MinAgeYears = 1
	MaxAgeYears = 130
)

// Measurement is one set of user-entered biometrics.
type Measurement struct {
	WeightKg float64 `json:"weight_kg" yaml:"weight_kg"`
	HeightCm float64 `json:"height_cm" yaml:"height_cm"`
	AgeYears int     `json:"age_years" yaml:"age_years"`
	Gender   Gender  `json:"gender" yaml:"gender"`
}

// NewMeasurement builds and validates a Measurement.
func NewMeasurement(gender Gender, heightCm, weightKg float64, ageYears int) (Measurement, error) {
	m := Measurement{
		WeightKg: weightKg,
		HeightCm: heightCm,
		AgeYears: ageYears,
		Gender:   gender,
	}
	if err := m.Validate(); err != nil {
		return Measurement{}, err
	}
	return m, nil
}

// ParseMeasurement converts raw form values into a validated Measurement.
// Any missing, non-numeric or out-of-range field rejects the whole input.
func ParseMeasurement(gender, height, weight, age string) (Measurement, error) {
	g, err := ParseGender(gender)
	if err != nil {
		return Measurement{}, err
	}
	h, err := parsePositive("height", height)
	if err != nil {
		return Measurement{}, err
	}
	w, err := parsePositive("weight", weight)
	if err != nil {
		return Measurement{}, err
	}
	a, err := strconv.Atoi(strings.TrimSpace(age))
	if err != nil {
		if strings.TrimSpace(age) == "" {
			return Measurement{}, fmt.Errorf("%w: age is required", ErrInvalidInput)
		}
		return Measurement{}, fmt.Errorf("%w: age must be a whole number, got %q", ErrInvalidInput, age)
	}
	return NewMeasurement(g, h, w, a)
}

// Validate checks gender and the plausible range of every field.
func (m Measurement) Validate() error {
	if m.Gender == "" {
		return ErrMissingGender
	}
	if !m.Gender.IsValid() {
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, m.Gender)
	}
	if err := checkRange("height", m.HeightCm, MinHeightCm, MaxHeightCm, "cm"); err != nil {
		return err
	}
	if err := checkRange("weight", m.WeightKg, MinWeightKg, MaxWeightKg, "kg"); err != nil {
		return err
	}
	if m.AgeYears < MinAgeYears || m.AgeYears > MaxAgeYears {
		return fmt.Errorf("%w: age must be between %d and %d years, got %d",
			ErrInvalidInput, MinAgeYears, MaxAgeYears, m.AgeYears)
	}
	return nil
}

func parsePositive(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be a number, got %q", ErrInvalidInput, field, s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidInput, field, v)
	}
	return v, nil
}

func checkRange(field string, v, lo, hi float64, unit string) error {
	if math.IsNaN(v) || v <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidInput, field)
	}
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s must be between %g and %g %s, got %g",
			ErrInvalidInput, field, lo, hi, unit, v)
	}
	return nil
}
