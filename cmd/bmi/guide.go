// ABOUTME: CLI command for showing a recommendation by category and gender.
// ABOUTME: Bypasses calculation for users who already know their category.
package main

import (
	"fmt"
	"io"

	"github.com/harperreed/bmi/internal/guide"
	"github.com/harperreed/bmi/internal/models"
	"github.com/harperreed/bmi/internal/render"
	"github.com/spf13/cobra"
)

var guideFormat string

var guideCmd = &cobra.Command{
	Use:   "guide <category> <gender>",
	Short: "Show the nutrition plan for a category",
	Long: `Show the nutrition plan for a BMI category and gender without calculating.

CATEGORIES:

  underweight   BMI < 18.5
  normal        18.5 <= BMI < 24
  overweight    24 <= BMI < 27
  obese         BMI >= 27

EXAMPLES:

  bmi guide normal female
  bmi guide obese m --format markdown
  bmi guide underweight male -f json`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"underweight", "normal", "overweight", "obese"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := models.ParseCategory(args[0])
		if err != nil {
			return err
		}
		gender, err := models.ParseGender(args[1])
		if err != nil {
			return err
		}
		format, err := render.ParseFormat(guideFormat)
		if err != nil {
			return err
		}

		rec, err := guide.Select(cat, gender)
		if err != nil {
			return err
		}
		logger.Debug("selected record", "category", cat, "gender", gender, "calories", rec.Nutrition.Calories)

		return writeRecord(cmd.OutOrStdout(), rec, format)
	},
}

func writeRecord(w io.Writer, rec guide.Record, format render.Format) error {
	methods := guide.MethodsFor(rec)
	bundle := struct {
		Recommendation guide.Record       `json:"recommendation" yaml:"recommendation"`
		DietMethods    []guide.DietMethod `json:"diet_methods" yaml:"diet_methods"`
	}{rec, methods}

	switch format {
	case render.FormatJSON:
		return render.WriteJSON(w, bundle)
	case render.FormatYAML:
		return render.WriteYAML(w, bundle)
	case render.FormatMarkdown:
		_, err := io.WriteString(w, render.RecordMarkdown(rec))
		return err
	default:
		if err := render.WriteRecordText(w, rec); err != nil {
			return err
		}
		if len(methods) == 0 {
			return nil
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		return render.WriteDietMethodsText(w, methods)
	}
}

func init() {
	guideCmd.Flags().StringVarP(&guideFormat, "format", "f", "text", "output format: text, json, yaml, markdown")
	rootCmd.AddCommand(guideCmd)
}
