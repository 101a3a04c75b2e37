// ABOUTME: BMI category enum with thresholds and display labels.
// ABOUTME: Thresholds follow the Taiwan Ministry of Health adult standard.
package models

import (
	"fmt"
	"math"
	"strings"
)

// Category is a BMI classification band.
type Category string

const (
	CategoryUnderweight Category = "underweight"
	CategoryNormal      Category = "normal"
	CategoryOverweight  Category = "overweight"
	CategoryObese       Category = "obese"
)

// Upper bounds (exclusive) of each band.
const (
	UnderweightMax = 18.5
	NormalMax      = 24.0
	OverweightMax  = 27.0
)

// AllCategories lists categories from lowest to highest BMI.
var AllCategories = []Category{
	CategoryUnderweight, CategoryNormal, CategoryOverweight, CategoryObese,
}

// CategoryLabels maps categories to their display labels.
var CategoryLabels = map[Category]string{
	CategoryUnderweight: "Underweight",
	CategoryNormal:      "Healthy weight",
	CategoryOverweight:  "Overweight",
	CategoryObese:       "Obese",
}

// Label returns the display label, or the raw value for unknown categories.
func (c Category) Label() string {
	if l, ok := CategoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// IsValid reports whether c is one of the four categories.
func (c Category) IsValid() bool {
	_, ok := CategoryLabels[c]
	return ok
}

// Bounds returns the [min, max) BMI interval for the category.
// Underweight starts at 0 and obese is open-ended (+Inf).
func (c Category) Bounds() (lo, hi float64) {
	switch c {
	case CategoryUnderweight:
		return 0, UnderweightMax
	case CategoryNormal:
		return UnderweightMax, NormalMax
	case CategoryOverweight:
		return NormalMax, OverweightMax
	default:
		return OverweightMax, math.Inf(1)
	}
}

// ParseCategory accepts a category key or its display label.
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, c := range AllCategories {
		if key == string(c) || key == strings.ToLower(c.Label()) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q (use underweight, normal, overweight or obese)", ErrInvalidInput, s)
}
