// ABOUTME: Tests for report rendering in text, JSON, YAML and Markdown.
// ABOUTME: Runs with color disabled so output can be matched literally.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/harperreed/bmi/internal/guide"
	"github.com/harperreed/bmi/internal/metrics"
	"github.com/harperreed/bmi/internal/models"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func testReport(t *testing.T, m models.Measurement) *Report {
	t.Helper()
	a, err := metrics.Assess(m)
	if err != nil {
		t.Fatalf("Assess failed: %v", err)
	}
	r, err := NewReport(a)
	if err != nil {
		t.Fatalf("NewReport failed: %v", err)
	}
	return r
}

func maleNormal() models.Measurement {
	return models.Measurement{WeightKg: 70, HeightCm: 175, AgeYears: 30, Gender: models.GenderMale}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"md", FormatMarkdown, false},
		{"markdown", FormatMarkdown, false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewReportSelectsRecord(t *testing.T) {
	r := testReport(t, models.Measurement{WeightKg: 95, HeightCm: 160, AgeYears: 40, Gender: models.GenderFemale})

	if r.Recommendation.Nutrition.Calories != 1400 {
		t.Errorf("Calories = %d, want 1400", r.Recommendation.Nutrition.Calories)
	}
	if r.Label != "Obese" {
		t.Errorf("Label = %q, want Obese", r.Label)
	}
	if len(r.DietMethods) != 2 {
		t.Errorf("DietMethods = %d, want 2", len(r.DietMethods))
	}
	if len(r.HabitGroups) == 0 {
		t.Error("expected habit groups")
	}
}

func TestWriteTextBrief(t *testing.T) {
	r := testReport(t, maleNormal())

	var buf bytes.Buffer
	if err := Write(&buf, r, FormatText, Options{Brief: true}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"22.9", "Healthy weight", "56.7 - 73.5 kg", "1649 kcal"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Nutrition strategy") {
		t.Error("brief output should not include guidance")
	}
}

func TestWriteTextFull(t *testing.T) {
	r := testReport(t, maleNormal())

	var buf bytes.Buffer
	if err := Write(&buf, r, FormatText, Options{}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Healthy Maintenance Plan",
		"Nutrition strategy",
		"2400 kcal",
		"Healthy Eating Plate",
		"Eating out",
		"For you:",
		"Micro-habits (12)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	r := testReport(t, maleNormal())

	var buf bytes.Buffer
	if err := Write(&buf, r, FormatJSON, Options{}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var decoded struct {
		Tool       string `json:"tool"`
		Assessment struct {
			Category string `json:"category"`
			BMR      int    `json:"bmr_kcal"`
		} `json:"assessment"`
		Recommendation struct {
			Nutrition struct {
				Calories int `json:"calories"`
			} `json:"nutrition"`
		} `json:"recommendation"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Tool != "bmi" {
		t.Errorf("Tool = %q, want bmi", decoded.Tool)
	}
	if decoded.Assessment.Category != "normal" {
		t.Errorf("Category = %q, want normal", decoded.Assessment.Category)
	}
	if decoded.Assessment.BMR != 1649 {
		t.Errorf("BMR = %d, want 1649", decoded.Assessment.BMR)
	}
	if decoded.Recommendation.Nutrition.Calories != 2400 {
		t.Errorf("Calories = %d, want 2400", decoded.Recommendation.Nutrition.Calories)
	}
}

func TestWriteYAML(t *testing.T) {
	r := testReport(t, maleNormal())

	var buf bytes.Buffer
	if err := Write(&buf, r, FormatYAML, Options{}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if decoded["category_label"] != "Healthy weight" {
		t.Errorf("category_label = %v, want Healthy weight", decoded["category_label"])
	}
}

func TestMarkdown(t *testing.T) {
	r := testReport(t, models.Measurement{WeightKg: 80, HeightCm: 175, AgeYears: 35, Gender: models.GenderMale})

	md := Markdown(r, Options{})
	for _, want := range []string{
		"# BMI Report - ",
		"| BMI | 26.1 |",
		"| Category | Overweight |",
		"## Healthy Weight Loss Plan",
		"> **Key reminder**",
		"### 🫒 Mediterranean Diet",
		"- [ ] **Quit sugary drinks**",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}

	brief := Markdown(r, Options{Brief: true})
	if strings.Contains(brief, "Nutrition strategy") {
		t.Error("brief markdown should stop after the result table")
	}
}

func TestRecordMarkdownWithoutMythBuster(t *testing.T) {
	rec, err := guide.Select(models.CategoryNormal, models.GenderFemale)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	md := RecordMarkdown(rec)
	if strings.Contains(md, "> **") {
		t.Error("normal records have no myth buster callout")
	}
	if !strings.Contains(md, "| 1800 kcal | 70 g | 230 g | 55 g |") {
		t.Errorf("daily targets row missing:\n%s", md)
	}
}

func TestGauge(t *testing.T) {
	tests := []struct {
		percent float64
		wantPos int
	}{
		{0, 1},
		{50, 21},
		{99.9, 40},
		{100, 40},
		{-5, 1},
	}

	for _, tt := range tests {
		g := Gauge(tt.percent)
		if len(g) != gaugeWidth+2 {
			t.Fatalf("Gauge(%g) length = %d, want %d", tt.percent, len(g), gaugeWidth+2)
		}
		if idx := strings.IndexByte(g, '^'); idx != tt.wantPos {
			t.Errorf("Gauge(%g) pointer at %d, want %d: %s", tt.percent, idx, tt.wantPos, g)
		}
	}
}

func TestWriteCategoriesText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCategoriesText(&buf); err != nil {
		t.Fatalf("WriteCategoriesText failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"BMI < 18.5", "18.5 <= BMI < 24.0", "24.0 <= BMI < 27.0", "BMI >= 27.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteTextPropagatesError(t *testing.T) {
	r := testReport(t, maleNormal())
	if err := WriteText(failWriter{}, r, Options{}); err == nil {
		t.Error("expected write error")
	}
}

func TestCategoryBands(t *testing.T) {
	bands := CategoryBands()
	if len(bands) != len(models.AllCategories) {
		t.Fatalf("CategoryBands() = %d, want %d", len(bands), len(models.AllCategories))
	}
	if bands[0].Min != 0 || bands[0].Max == nil || *bands[0].Max != models.UnderweightMax {
		t.Errorf("underweight band = %+v", bands[0])
	}
	last := bands[len(bands)-1]
	if last.Category != models.CategoryObese || last.Max != nil {
		t.Errorf("obese band should be open-ended: %+v", last)
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].Min != *bands[i-1].Max {
			t.Errorf("band %s does not start where %s ends", bands[i].Category, bands[i-1].Category)
		}
	}
}
