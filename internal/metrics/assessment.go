// ABOUTME: Assessment bundles every metric computed from one Measurement.
// ABOUTME: Assess validates first so no partial result is ever produced.
package metrics

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/bmi/internal/models"
)

// Assessment is the full result for one Measurement.
type Assessment struct {
	ID           uuid.UUID          `json:"id" yaml:"id"`
	AssessedAt   time.Time          `json:"assessed_at" yaml:"assessed_at"`
	Measurement  models.Measurement `json:"measurement" yaml:"measurement"`
	BMI          float64            `json:"bmi" yaml:"bmi"`
	Category     models.Category    `json:"category" yaml:"category"`
	BMR          int                `json:"bmr_kcal" yaml:"bmr_kcal"`
	IdealWeight  WeightRange        `json:"ideal_weight_kg" yaml:"ideal_weight_kg"`
	GaugePercent float64            `json:"gauge_percent" yaml:"gauge_percent"`
}

// Assess computes BMI, category, BMR, ideal weight and gauge position.
func Assess(m models.Measurement) (*Assessment, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	bmi, err := BMI(m.WeightKg, m.HeightCm)
	if err != nil {
		return nil, fmt.Errorf("bmi: %w", err)
	}
	bmr, err := BMR(m.WeightKg, m.HeightCm, m.AgeYears, m.Gender)
	if err != nil {
		return nil, fmt.Errorf("bmr: %w", err)
	}
	ideal, err := IdealWeightRange(m.HeightCm)
	if err != nil {
		return nil, fmt.Errorf("ideal weight: %w", err)
	}

	return &Assessment{
		ID:           uuid.New(),
		AssessedAt:   time.Now(),
		Measurement:  m,
		BMI:          bmi,
		Category:     Classify(bmi),
		BMR:          bmr,
		IdealWeight:  ideal,
		GaugePercent: GaugePercent(bmi),
	}, nil
}

// BMIString is the BMI rounded to one decimal for display.
func (a *Assessment) BMIString() string {
	return fmt.Sprintf("%.1f", a.BMI)
}

// BMRString is the BMR with its unit for display.
func (a *Assessment) BMRString() string {
	return fmt.Sprintf("%d kcal", a.BMR)
}

// ShortID returns the first 8 characters of the assessment ID.
func (a *Assessment) ShortID() string {
	return a.ID.String()[:8]
}
