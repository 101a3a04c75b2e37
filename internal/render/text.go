// ABOUTME: Colored terminal rendering of reports and guide tables.
// ABOUTME: Uses fatih/color; honors color.NoColor for plain output.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/bmi/internal/guide"
	"github.com/harperreed/bmi/internal/models"
)

const gaugeWidth = 40

var (
	faint = color.New(color.Faint)
	bold  = color.New(color.Bold)
)

// CategoryColor returns the color used for a category label.
func CategoryColor(c models.Category) *color.Color {
	switch c {
	case models.CategoryUnderweight:
		return color.New(color.FgBlue, color.Bold)
	case models.CategoryNormal:
		return color.New(color.FgGreen, color.Bold)
	case models.CategoryOverweight:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

// Gauge draws a fixed-width bar with a pointer at percent (0-100).
func Gauge(percent float64) string {
	pos := int(percent / 100 * float64(gaugeWidth))
	if pos < 0 {
		pos = 0
	}
	if pos >= gaugeWidth {
		pos = gaugeWidth - 1
	}
	quarter := gaugeWidth / 4
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < gaugeWidth; i++ {
		switch {
		case i == pos:
			b.WriteByte('^')
		case i > 0 && i%quarter == 0:
			b.WriteByte('|')
		default:
			b.WriteByte('-')
		}
	}
	b.WriteByte(']')
	return b.String()
}

// WriteText renders the result card and, unless brief, the full guidance.
func WriteText(w io.Writer, r *Report, opts Options) error {
	tw := &textWriter{w: w}
	a := r.Assessment

	tw.println(bold.Sprint("Your result"))
	tw.printf("  %-14s %s\n", "BMI", bold.Sprint(a.BMIString()))
	tw.printf("  %-14s %s\n", "Category", CategoryColor(a.Category).Sprint(r.Label))
	tw.printf("  %-14s %s\n", "Ideal weight", a.IdealWeight.String())
	tw.printf("  %-14s %s\n", "BMR", a.BMRString())
	tw.printf("  %-14s %s\n", "", faint.Sprint(Gauge(a.GaugePercent)))
	tw.printf("  %-14s %s\n", "", faint.Sprint(" under     | normal  | over    | obese"))

	if opts.Brief {
		return tw.err
	}

	tw.println()
	writeRecord(tw, r.Recommendation)

	if len(r.DietMethods) > 0 {
		tw.println()
		tw.println(bold.Sprint("Recommended diet patterns"))
		for _, m := range r.DietMethods {
			writeDietMethod(tw, m)
		}
	}

	tw.println()
	writeEatingOut(tw, r.EatingOut, r.Recommendation.EatingOutTip)
	tw.println()
	writeHabits(tw, r.HabitGroups)
	return tw.err
}

// WriteRecordText renders a single recommendation record.
func WriteRecordText(w io.Writer, rec guide.Record) error {
	tw := &textWriter{w: w}
	writeRecord(tw, rec)
	return tw.err
}

// WriteDietMethodsText renders all diet methods.
func WriteDietMethodsText(w io.Writer, methods []guide.DietMethod) error {
	tw := &textWriter{w: w}
	for i, m := range methods {
		if i > 0 {
			tw.println()
		}
		writeDietMethod(tw, m)
	}
	return tw.err
}

// WriteEatingOutText renders the dining-out guide.
func WriteEatingOutText(w io.Writer, e guide.EatingOut) error {
	tw := &textWriter{w: w}
	writeEatingOut(tw, e, "")
	return tw.err
}

// WriteHabitsText renders the micro-habit checklist.
func WriteHabitsText(w io.Writer, groups []guide.HabitGroup) error {
	tw := &textWriter{w: w}
	writeHabits(tw, groups)
	return tw.err
}

// WriteCategoriesText renders the category bands.
func WriteCategoriesText(w io.Writer) error {
	tw := &textWriter{w: w}
	for _, c := range models.AllCategories {
		lo, hi := c.Bounds()
		var band string
		switch c {
		case models.CategoryUnderweight:
			band = fmt.Sprintf("BMI < %.1f", hi)
		case models.CategoryObese:
			band = fmt.Sprintf("BMI >= %.1f", lo)
		default:
			band = fmt.Sprintf("%.1f <= BMI < %.1f", lo, hi)
		}
		tw.printf("%s %s %s\n",
			padRight(string(c), 12),
			CategoryColor(c).Sprint(padRight(c.Label(), 16)),
			faint.Sprint(band))
	}
	return tw.err
}

func writeRecord(tw *textWriter, rec guide.Record) {
	tw.println(bold.Sprint(rec.Title))
	tw.println("  " + rec.Subtitle)
	tw.println("  " + faint.Sprint(rec.Note))

	tw.println()
	tw.println(bold.Sprint("Nutrition strategy"))
	rows := []struct {
		name string
		t    guide.Target
	}{
		{"Calories", rec.Strategy.Calories},
		{"Carbs", rec.Strategy.Carbs},
		{"Protein", rec.Strategy.Protein},
		{"Fat", rec.Strategy.Fat},
	}
	for _, row := range rows {
		tw.printf("  %-10s %-22s %s\n", row.name, row.t.Target, faint.Sprint(row.t.Desc))
	}

	tw.println()
	tw.println(bold.Sprint("Daily targets"))
	n := rec.Nutrition
	tw.printf("  %d kcal   protein %d g   carbs %d g   fat %d g\n",
		n.Calories, n.ProteinG, n.CarbsG, n.FatG)

	tw.println()
	tw.println(bold.Sprint("Tips"))
	for _, tip := range rec.Tips {
		tw.printf("  %s %s\n", tip.Icon, tip.Title)
		tw.printf("     %s\n", faint.Sprint(tip.Desc))
	}

	if rec.MythBuster != nil {
		tw.println()
		tw.printf("%s %s\n", color.YellowString("!"), bold.Sprint(rec.MythBuster.Title))
		tw.println("  " + rec.MythBuster.Content)
	}

	tw.println()
	tw.println(bold.Sprint("Recommended foods"))
	names := make([]string, len(rec.Foods))
	for i, f := range rec.Foods {
		names[i] = f.Icon + " " + f.Name
	}
	tw.println("  " + strings.Join(names, ", "))
}

func writeDietMethod(tw *textWriter, m guide.DietMethod) {
	tw.printf("  %s %s %s\n", m.Icon, bold.Sprint(m.Name), faint.Sprintf("(%s)", m.Key))
	tw.printf("     Goal:     %s\n", m.Goal)
	tw.printf("     Suits:    %s\n", m.Suitable)
	tw.printf("     Focus:    %s\n", m.Focus)
	for _, t := range m.Tips {
		tw.printf("     %s %s\n", color.GreenString("✓"), t)
	}
}

func writeEatingOut(tw *textWriter, e guide.EatingOut, personal string) {
	tw.println(bold.Sprint("Eating out"))
	tw.println("  " + faint.Sprint(e.Motto))
	for _, s := range e.Scenes {
		tw.printf("  %s %s\n", s.Icon, bold.Sprint(s.Name))
		tw.printf("     Rule:      %s\n", s.Rule)
		tw.printf("     %s %s\n", color.GreenString("Order:"), s.Recommend)
		tw.printf("     %s %s\n", color.RedString("Avoid:"), s.Avoid)
	}
	if personal != "" {
		tw.printf("  %s %s\n", color.CyanString("For you:"), personal)
	}
}

func writeHabits(tw *textWriter, groups []guide.HabitGroup) {
	total := 0
	for _, g := range groups {
		total += len(g.Habits)
	}
	tw.println(bold.Sprintf("Micro-habits (%d)", total))
	for _, g := range groups {
		tw.println("  " + g.Name)
		for _, h := range g.Habits {
			tw.printf("    [ ] %2d. %s %s\n", h.ID, h.Title, faint.Sprintf("- %s", h.Desc))
		}
	}
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// textWriter keeps the first write error so rendering code stays linear.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) println(args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintln(t.w, args...)
}
