// ABOUTME: CLI commands for the static reference tables.
// ABOUTME: diets, eating-out, habits and categories in text, JSON or YAML.
package main

import (
	"fmt"
	"io"

	"github.com/harperreed/bmi/internal/guide"
	"github.com/harperreed/bmi/internal/render"
	"github.com/spf13/cobra"
)

var tableFormat string

var dietsCmd = &cobra.Command{
	Use:   "diets",
	Short: "Show recommended diet patterns",
	Long: `Show the healthy plate, Mediterranean and DASH diet patterns.

EXAMPLES:

  bmi diets
  bmi diets --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		methods := guide.DietMethods()
		return writeTable(cmd.OutOrStdout(), map[string]any{"diet_methods": methods}, func(w io.Writer) error {
			return render.WriteDietMethodsText(w, methods)
		})
	},
}

var eatingOutCmd = &cobra.Command{
	Use:   "eating-out",
	Short: "Show the dining-out guide",
	Long: `Show ordering rules for breakfast shops, convenience stores and buffets.

EXAMPLES:

  bmi eating-out
  bmi eating-out -f yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e := guide.EatingOutGuide()
		return writeTable(cmd.OutOrStdout(), e, func(w io.Writer) error {
			return render.WriteEatingOutText(w, e)
		})
	},
}

var habitsCmd = &cobra.Command{
	Use:   "habits",
	Short: "Show the micro-habit checklist",
	Long: `Show small daily habits grouped by theme.

EXAMPLES:

  bmi habits
  bmi habits --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		groups := guide.HabitGroups()
		data := map[string]any{"total": guide.HabitCount(), "groups": groups}
		return writeTable(cmd.OutOrStdout(), data, func(w io.Writer) error {
			return render.WriteHabitsText(w, groups)
		})
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show BMI category thresholds",
	Long: `Show the BMI bands used for classification.

  underweight   BMI < 18.5
  normal        18.5 <= BMI < 24
  overweight    24 <= BMI < 27
  obese         BMI >= 27

EXAMPLES:

  bmi categories
  bmi categories -f json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeTable(cmd.OutOrStdout(), map[string]any{"categories": render.CategoryBands()}, render.WriteCategoriesText)
	},
}

// writeTable renders data as JSON or YAML, or calls text for text output.
func writeTable(w io.Writer, data any, text func(io.Writer) error) error {
	format, err := render.ParseFormat(tableFormat)
	if err != nil {
		return err
	}
	switch format {
	case render.FormatJSON:
		return render.WriteJSON(w, data)
	case render.FormatYAML:
		return render.WriteYAML(w, data)
	case render.FormatText:
		return text(w)
	default:
		return fmt.Errorf("format %s is not supported for reference tables (use text, json, or yaml)", format)
	}
}

func init() {
	for _, c := range []*cobra.Command{dietsCmd, eatingOutCmd, habitsCmd, categoriesCmd} {
		c.Flags().StringVarP(&tableFormat, "format", "f", "text", "output format: text, json, yaml")
		rootCmd.AddCommand(c)
	}
}
