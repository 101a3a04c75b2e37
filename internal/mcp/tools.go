// ABOUTME: MCP tool implementations for the BMI calculator.
// ABOUTME: calculate_bmi, get_recommendation and classify_bmi.
package mcp

import (
	"context"
	"fmt"
	"math"

	"github.com/harperreed/bmi/internal/guide"
	"github.com/harperreed/bmi/internal/metrics"
	"github.com/harperreed/bmi/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// calculate_bmi
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "calculate_bmi",
		Description: "Calculate BMI, category, BMR and ideal weight range, with a matching diet recommendation",
	}, s.handleCalculateBMI)

	// get_recommendation
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_recommendation",
		Description: "Get the diet recommendation for a BMI category and gender",
	}, s.handleGetRecommendation)

	// classify_bmi
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "classify_bmi",
		Description: "Classify an already-computed BMI value into a category",
	}, s.handleClassifyBMI)
}

// Tool input/output types

type calculateInput struct {
	Gender   string  `json:"gender" jsonschema:"Gender used for BMR and recommendation: male or female"`
	HeightCm float64 `json:"height_cm" jsonschema:"Height in centimeters"`
	WeightKg float64 `json:"weight_kg" jsonschema:"Weight in kilograms"`
	Age      int     `json:"age" jsonschema:"Age in whole years"`
	Brief    bool    `json:"brief,omitempty" jsonschema:"Omit the recommendation and return only the numbers"`
}

type calculateOutput struct {
	ID             string              `json:"id"`
	BMI            float64             `json:"bmi"`
	Category       string              `json:"category"`
	CategoryLabel  string              `json:"category_label"`
	BMRKcal        int                 `json:"bmr_kcal"`
	IdealWeight    metrics.WeightRange `json:"ideal_weight_kg"`
	GaugePercent   float64             `json:"gauge_percent"`
	Recommendation *guide.Record       `json:"recommendation,omitempty"`
	DietMethods    []guide.DietMethod  `json:"diet_methods,omitempty"`
	Message        string              `json:"message"`
}

type recommendationInput struct {
	Category string `json:"category" jsonschema:"BMI category: underweight, normal, overweight or obese"`
	Gender   string `json:"gender" jsonschema:"Gender: male or female"`
}

type recommendationOutput struct {
	Recommendation guide.Record       `json:"recommendation"`
	DietMethods    []guide.DietMethod `json:"diet_methods"`
}

type classifyInput struct {
	BMI float64 `json:"bmi" jsonschema:"BMI value to classify"`
}

type classifyOutput struct {
	BMI           float64 `json:"bmi"`
	Category      string  `json:"category"`
	CategoryLabel string  `json:"category_label"`
	GaugePercent  float64 `json:"gauge_percent"`
}

// Tool handlers

func (s *Server) handleCalculateBMI(ctx context.Context, req *mcp.CallToolRequest, input calculateInput) (*mcp.CallToolResult, calculateOutput, error) {
	s.logger.Debug("tool call", "tool", "calculate_bmi", "gender", input.Gender,
		"height_cm", input.HeightCm, "weight_kg", input.WeightKg, "age", input.Age)

	gender, err := models.ParseGender(input.Gender)
	if err != nil {
		return nil, calculateOutput{}, err
	}
	m, err := models.NewMeasurement(gender, input.HeightCm, input.WeightKg, input.Age)
	if err != nil {
		return nil, calculateOutput{}, err
	}

	a, err := metrics.Assess(m)
	if err != nil {
		return nil, calculateOutput{}, fmt.Errorf("failed to assess: %w", err)
	}

	out := calculateOutput{
		ID:            a.ShortID(),
		BMI:           math.Round(a.BMI*10) / 10,
		Category:      string(a.Category),
		CategoryLabel: a.Category.Label(),
		BMRKcal:       a.BMR,
		IdealWeight:   a.IdealWeight,
		GaugePercent:  a.GaugePercent,
		Message: fmt.Sprintf("BMI %s (%s), ideal weight %s, BMR %s",
			a.BMIString(), a.Category.Label(), a.IdealWeight.String(), a.BMRString()),
	}

	if !input.Brief {
		rec, err := guide.Select(a.Category, gender)
		if err != nil {
			return nil, calculateOutput{}, fmt.Errorf("failed to select recommendation: %w", err)
		}
		out.Recommendation = &rec
		out.DietMethods = guide.MethodsFor(rec)
	}

	return nil, out, nil
}

func (s *Server) handleGetRecommendation(ctx context.Context, req *mcp.CallToolRequest, input recommendationInput) (*mcp.CallToolResult, recommendationOutput, error) {
	s.logger.Debug("tool call", "tool", "get_recommendation", "category", input.Category, "gender", input.Gender)

	cat, err := models.ParseCategory(input.Category)
	if err != nil {
		return nil, recommendationOutput{}, err
	}
	gender, err := models.ParseGender(input.Gender)
	if err != nil {
		return nil, recommendationOutput{}, err
	}

	rec, err := guide.Select(cat, gender)
	if err != nil {
		return nil, recommendationOutput{}, fmt.Errorf("failed to select recommendation: %w", err)
	}

	return nil, recommendationOutput{
		Recommendation: rec,
		DietMethods:    guide.MethodsFor(rec),
	}, nil
}

func (s *Server) handleClassifyBMI(ctx context.Context, req *mcp.CallToolRequest, input classifyInput) (*mcp.CallToolResult, classifyOutput, error) {
	s.logger.Debug("tool call", "tool", "classify_bmi", "bmi", input.BMI)

	if math.IsNaN(input.BMI) || math.IsInf(input.BMI, 0) || input.BMI <= 0 {
		return nil, classifyOutput{}, fmt.Errorf("%w: bmi must be a positive number", models.ErrInvalidInput)
	}

	cat := metrics.Classify(input.BMI)
	return nil, classifyOutput{
		BMI:           input.BMI,
		Category:      string(cat),
		CategoryLabel: cat.Label(),
		GaugePercent:  metrics.GaugePercent(input.BMI),
	}, nil
}
