// ABOUTME: Report pairs an Assessment with its recommendation bundle.
// ABOUTME: Dispatches to text, JSON, YAML or Markdown rendering.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/harperreed/bmi/internal/guide"
	"github.com/harperreed/bmi/internal/metrics"
	"github.com/harperreed/bmi/internal/models"
	"gopkg.in/yaml.v3"
)

// Format selects an output encoding.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// AllFormats lists the supported formats.
var AllFormats = []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown}

// ParseFormat accepts a format name; "md" and "yml" are aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format: %s (use text, json, yaml, or markdown)", s)
	}
}

// Report is everything shown after a calculation.
type Report struct {
	Version        string              `json:"version" yaml:"version"`
	Tool           string              `json:"tool" yaml:"tool"`
	Assessment     *metrics.Assessment `json:"assessment" yaml:"assessment"`
	Label          string              `json:"category_label" yaml:"category_label"`
	Recommendation guide.Record        `json:"recommendation" yaml:"recommendation"`
	DietMethods    []guide.DietMethod  `json:"diet_methods" yaml:"diet_methods"`
	EatingOut      guide.EatingOut     `json:"eating_out" yaml:"eating_out"`
	HabitGroups    []guide.HabitGroup  `json:"habit_groups" yaml:"habit_groups"`
}

// NewReport selects the recommendation for an assessment.
func NewReport(a *metrics.Assessment) (*Report, error) {
	rec, err := guide.Select(a.Category, a.Measurement.Gender)
	if err != nil {
		return nil, fmt.Errorf("select recommendation: %w", err)
	}
	return &Report{
		Version:        "1.0",
		Tool:           "bmi",
		Assessment:     a,
		Label:          a.Category.Label(),
		Recommendation: rec,
		DietMethods:    guide.MethodsFor(rec),
		EatingOut:      guide.EatingOutGuide(),
		HabitGroups:    guide.HabitGroups(),
	}, nil
}

// CategoryBand is one row of the category table. Max is nil for the
// open-ended top band.
type CategoryBand struct {
	Category models.Category `json:"category" yaml:"category"`
	Label    string          `json:"label" yaml:"label"`
	Min      float64         `json:"min" yaml:"min"`
	Max      *float64        `json:"max,omitempty" yaml:"max,omitempty"`
}

// CategoryBands lists every category with its BMI interval.
func CategoryBands() []CategoryBand {
	bands := make([]CategoryBand, 0, len(models.AllCategories))
	for _, c := range models.AllCategories {
		lo, hi := c.Bounds()
		band := CategoryBand{Category: c, Label: c.Label(), Min: lo}
		if !math.IsInf(hi, 1) {
			band.Max = &hi
		}
		bands = append(bands, band)
	}
	return bands
}

// Options tune text and Markdown output.
type Options struct {
	// Brief limits output to the result card.
	Brief bool
}

// Write renders r to w in the given format.
func Write(w io.Writer, r *Report, format Format, opts Options) error {
	switch format {
	case FormatText:
		return WriteText(w, r, opts)
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(r, opts))
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes any value as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteYAML writes any value as YAML.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	return enc.Close()
}
