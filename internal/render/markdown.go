// ABOUTME: Markdown rendering of a report for sharing or saving.
// ABOUTME: Result card as a table followed by the guidance sections.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/bmi/internal/guide"
)

// Markdown renders r as a Markdown document.
func Markdown(r *Report, opts Options) string {
	var sb strings.Builder
	a := r.Assessment
	m := a.Measurement

	sb.WriteString(fmt.Sprintf("# BMI Report - %s\n\n", a.AssessedAt.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s  \n", a.AssessedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("ID: %s\n\n", a.ShortID()))

	sb.WriteString("## Input\n\n")
	sb.WriteString("| Gender | Height | Weight | Age |\n")
	sb.WriteString("|--------|--------|--------|-----|\n")
	sb.WriteString(fmt.Sprintf("| %s | %g cm | %g kg | %d |\n\n", m.Gender, m.HeightCm, m.WeightKg, m.AgeYears))

	sb.WriteString("## Result\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| BMI | %s |\n", a.BMIString()))
	sb.WriteString(fmt.Sprintf("| Category | %s |\n", r.Label))
	sb.WriteString(fmt.Sprintf("| Ideal weight | %s |\n", a.IdealWeight.String()))
	sb.WriteString(fmt.Sprintf("| BMR | %s |\n", a.BMRString()))

	if opts.Brief {
		return sb.String()
	}

	sb.WriteString("\n")
	sb.WriteString(RecordMarkdown(r.Recommendation))

	if len(r.DietMethods) > 0 {
		sb.WriteString("\n## Recommended diet patterns\n\n")
		for _, dm := range r.DietMethods {
			sb.WriteString(fmt.Sprintf("### %s %s\n\n", dm.Icon, dm.Name))
			sb.WriteString(fmt.Sprintf("- **Goal:** %s\n", dm.Goal))
			sb.WriteString(fmt.Sprintf("- **Suits:** %s\n", dm.Suitable))
			sb.WriteString(fmt.Sprintf("- **Focus:** %s\n", dm.Focus))
			for _, t := range dm.Tips {
				sb.WriteString(fmt.Sprintf("- %s\n", t))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("## Eating out\n\n")
	sb.WriteString(fmt.Sprintf("> %s\n\n", r.EatingOut.Motto))
	sb.WriteString("| Place | Rule | Order | Avoid |\n")
	sb.WriteString("|-------|------|-------|-------|\n")
	for _, s := range r.EatingOut.Scenes {
		sb.WriteString(fmt.Sprintf("| %s %s | %s | %s | %s |\n", s.Icon, s.Name, s.Rule, s.Recommend, s.Avoid))
	}
	if r.Recommendation.EatingOutTip != "" {
		sb.WriteString(fmt.Sprintf("\n**For you:** %s\n", r.Recommendation.EatingOutTip))
	}

	sb.WriteString("\n## Micro-habits\n\n")
	for _, g := range r.HabitGroups {
		sb.WriteString(fmt.Sprintf("### %s\n\n", g.Name))
		for _, h := range g.Habits {
			sb.WriteString(fmt.Sprintf("- [ ] **%s**: %s\n", h.Title, h.Desc))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// RecordMarkdown renders one recommendation record.
func RecordMarkdown(rec guide.Record) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## %s\n\n", rec.Title))
	sb.WriteString(fmt.Sprintf("*%s*\n\n", rec.Subtitle))
	sb.WriteString(fmt.Sprintf("%s\n\n", rec.Note))

	sb.WriteString("### Nutrition strategy\n\n")
	sb.WriteString("| Nutrient | Target | Why |\n")
	sb.WriteString("|----------|--------|-----|\n")
	sb.WriteString(fmt.Sprintf("| Calories | %s | %s |\n", rec.Strategy.Calories.Target, rec.Strategy.Calories.Desc))
	sb.WriteString(fmt.Sprintf("| Carbs | %s | %s |\n", rec.Strategy.Carbs.Target, rec.Strategy.Carbs.Desc))
	sb.WriteString(fmt.Sprintf("| Protein | %s | %s |\n", rec.Strategy.Protein.Target, rec.Strategy.Protein.Desc))
	sb.WriteString(fmt.Sprintf("| Fat | %s | %s |\n\n", rec.Strategy.Fat.Target, rec.Strategy.Fat.Desc))

	n := rec.Nutrition
	sb.WriteString("### Daily targets\n\n")
	sb.WriteString("| Calories | Protein | Carbs | Fat |\n")
	sb.WriteString("|----------|---------|-------|-----|\n")
	sb.WriteString(fmt.Sprintf("| %d kcal | %d g | %d g | %d g |\n\n", n.Calories, n.ProteinG, n.CarbsG, n.FatG))

	sb.WriteString("### Tips\n\n")
	for _, t := range rec.Tips {
		sb.WriteString(fmt.Sprintf("- %s **%s**: %s\n", t.Icon, t.Title, t.Desc))
	}

	if rec.MythBuster != nil {
		sb.WriteString(fmt.Sprintf("\n> **%s**  \n> %s\n", rec.MythBuster.Title, rec.MythBuster.Content))
	}

	sb.WriteString("\n### Recommended foods\n\n")
	for _, f := range rec.Foods {
		sb.WriteString(fmt.Sprintf("- %s %s\n", f.Icon, f.Name))
	}

	return sb.String()
}
