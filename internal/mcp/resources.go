// ABOUTME: MCP resource implementations for the BMI guide tables.
// ABOUTME: Provides bmi://diet-methods, eating-out, habits and categories.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/bmi/internal/guide"
	"github.com/harperreed/bmi/internal/render"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	uriDietMethods = "bmi://diet-methods"
	uriEatingOut   = "bmi://eating-out"
	uriHabits      = "bmi://habits"
	uriCategories  = "bmi://categories"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriDietMethods,
		Name:        "Diet Methods",
		Description: "Healthy plate, Mediterranean and DASH eating patterns",
		MIMEType:    "application/json",
	}, s.handleDietMethodsResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriEatingOut,
		Name:        "Eating Out Guide",
		Description: "Ordering rules for common dining-out scenes",
		MIMEType:    "application/json",
	}, s.handleEatingOutResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriHabits,
		Name:        "Micro-habits",
		Description: "Checklist of small daily habits, grouped by theme",
		MIMEType:    "application/json",
	}, s.handleHabitsResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriCategories,
		Name:        "BMI Categories",
		Description: "Category thresholds and display labels",
		MIMEType:    "application/json",
	}, s.handleCategoriesResource)
}

// Resource handlers

func (s *Server) handleDietMethodsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(uriDietMethods, map[string]any{
		"diet_methods": guide.DietMethods(),
	})
}

func (s *Server) handleEatingOutResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(uriEatingOut, guide.EatingOutGuide())
}

func (s *Server) handleHabitsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(uriHabits, map[string]any{
		"total":  guide.HabitCount(),
		"groups": guide.HabitGroups(),
	})
}

func (s *Server) handleCategoriesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(uriCategories, map[string]any{"categories": render.CategoryBands()})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
