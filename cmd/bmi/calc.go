// ABOUTME: CLI command for calculating BMI and showing the matching plan.
// ABOUTME: Validates all inputs before computing; writes to stdout or a file.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/bmi/internal/config"
	"github.com/harperreed/bmi/internal/metrics"
	"github.com/harperreed/bmi/internal/models"
	"github.com/harperreed/bmi/internal/render"
	"github.com/spf13/cobra"
)

var (
	calcGender string
	calcHeight string
	calcWeight string
	calcAge    string
	calcFormat string
	calcOutput string
	calcBrief  bool
)

var calcCmd = &cobra.Command{
	Use:     "calc",
	Aliases: []string{"c"},
	Short:   "Calculate BMI, BMR and ideal weight",
	Long: `Calculate BMI, weight category, ideal weight range and BMR, then show the
nutrition plan for your category and gender.

All four inputs are required. Gender may be omitted when default_gender is
set in config. Invalid or out-of-range values are rejected before anything
is computed.

RANGES:

  --height   50 - 250 cm
  --weight   10 - 400 kg
  --age      1 - 130 years

FORMATS:

  text       Colored result card and plan (default)
  json       Full report as JSON
  yaml       Full report as YAML
  markdown   Markdown document for saving or sharing

EXAMPLES:

  bmi calc --gender male --height 175 --weight 70 --age 30
  bmi calc -g f -H 160 -W 58 -a 25 --brief
  bmi calc -g m -H 180 -W 95 -a 40 --format json
  bmi calc -g m -H 180 -W 95 -a 40 -f markdown -o ~/bmi.md`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		gender := calcGender
		if gender == "" {
			gender = string(cfg.GetDefaultGender())
		}

		m, err := models.ParseMeasurement(gender, calcHeight, calcWeight, calcAge)
		if err != nil {
			return err
		}

		format := cfg.GetFormat()
		if cmd.Flags().Changed("format") {
			format, err = render.ParseFormat(calcFormat)
			if err != nil {
				return err
			}
		}

		a, err := metrics.Assess(m)
		if err != nil {
			return err
		}
		report, err := render.NewReport(a)
		if err != nil {
			return err
		}
		logger.Debug("assessed", "id", a.ShortID(), "bmi", a.BMIString(), "category", a.Category, "bmr", a.BMR)

		opts := render.Options{Brief: calcBrief}

		if calcOutput == "" {
			return render.Write(cmd.OutOrStdout(), report, format, opts)
		}

		path := config.ExpandPath(calcOutput)
		data, err := renderPlain(report, format, opts)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0600); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Wrote %s report to %s", format, path))
		return nil
	},
}

// renderPlain renders without ANSI colors for writing to a file.
func renderPlain(report *render.Report, format render.Format, opts render.Options) ([]byte, error) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	if err := render.Write(&buf, report, format, opts); err != nil {
		return nil, fmt.Errorf("render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func init() {
	calcCmd.Flags().StringVarP(&calcGender, "gender", "g", "", "male or female (default: config default_gender)")
	calcCmd.Flags().StringVarP(&calcHeight, "height", "H", "", "height in cm")
	calcCmd.Flags().StringVarP(&calcWeight, "weight", "W", "", "weight in kg")
	calcCmd.Flags().StringVarP(&calcAge, "age", "a", "", "age in years")
	calcCmd.Flags().StringVarP(&calcFormat, "format", "f", "text", "output format: text, json, yaml, markdown")
	calcCmd.Flags().StringVarP(&calcOutput, "output", "o", "", "output file (default: stdout)")
	calcCmd.Flags().BoolVarP(&calcBrief, "brief", "b", false, "show only the result card")

	rootCmd.AddCommand(calcCmd)
}
